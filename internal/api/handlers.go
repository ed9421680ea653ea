package api

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hangtime-app/hangtime/internal/availability"
	"github.com/hangtime-app/hangtime/internal/calendars"
	"github.com/hangtime-app/hangtime/internal/friends"
	"github.com/hangtime-app/hangtime/internal/pubsub"
	"github.com/hangtime-app/hangtime/internal/timeline"
	"github.com/hangtime-app/hangtime/pkg/errors"
)

const (
	headerUser = "X-User-Id"
	localUser  = "requester"
)

// authenticate rejects requests without a caller id. Real deployments
// put this behind a gateway that verifies the header.
func (s *server) authenticate(c *fiber.Ctx) error {
	user := c.Get(headerUser)
	if user == "" {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"status":  "ERROR",
			"message": "missing " + headerUser + " header",
		})
	}

	c.Locals(localUser, user)
	return c.Next()
}

func requesterID(c *fiber.Ctx) string {
	id, _ := c.Locals(localUser).(string)
	return id
}

func (s *server) handleBusy(c *fiber.Ctx) error {
	requester := requesterID(c)
	user := c.Query("user_id", requester)

	horizon := time.Now().UTC()
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return s.badRequest(c, "malformed 'from' timestamp")
		}
		horizon = parsed
	}

	busy, err := s.engine.BusyRanges(c.Context(), requester, user, horizon)
	if err != nil {
		return s.availabilityError(c, err)
	}

	return c.JSON(fiber.Map{"user_id": user, "busy": busy})
}

func (s *server) handleGaps(c *fiber.Ctx) error {
	requester := requesterID(c)

	window, err := parseWindow(c)
	if err != nil {
		return s.badRequest(c, err.Error())
	}
	users := queryUsers(c, requester)

	gaps, err := s.engine.FreeGaps(c.Context(), requester, users, window)
	if err != nil {
		return s.availabilityError(c, err)
	}

	return c.JSON(fiber.Map{"gaps": gaps})
}

func (s *server) handleWhoIsFree(c *fiber.Ctx) error {
	requester := requesterID(c)

	window, err := parseWindow(c)
	if err != nil {
		return s.badRequest(c, err.Error())
	}
	users := queryUsers(c, requester)

	free, err := s.engine.WhoIsFree(c.Context(), requester, users, window)
	if err != nil {
		return s.availabilityError(c, err)
	}

	return c.JSON(fiber.Map{"free": free})
}

func (s *server) handleAddManual(c *fiber.Ctx) error {
	requester := requesterID(c)

	var req struct {
		Kind  string    `json:"kind"`
		Start time.Time `json:"start_time"`
		End   time.Time `json:"end_time"`
	}
	if err := c.BodyParser(&req); err != nil {
		return s.badRequest(c, "malformed request body")
	}

	kind, ok := parseKind(req.Kind)
	if !ok {
		return s.badRequest(c, "kind must be 'busy' or 'free'")
	}

	added, err := s.cal.AddManualRange(c.Context(), calendars.ManualRange{
		User:  requester,
		Kind:  kind,
		Start: req.Start,
		End:   req.End,
	})
	if err != nil {
		if errors.Is(err, calendars.ErrInvalidRange) {
			return s.badRequest(c, err.Error())
		}
		return errors.WrapFail(err, "add manual range")
	}

	s.announce(c, requester, pubsub.TopicCalendar)

	return c.Status(http.StatusCreated).JSON(added)
}

func (s *server) handleDeleteManual(c *fiber.Ctx) error {
	requester := requesterID(c)

	id := c.Query("id")
	if id == "" {
		return s.badRequest(c, "missing 'id' query parameter")
	}

	deleted, err := s.cal.DeleteManualRange(c.Context(), requester, id)
	if err != nil {
		return errors.WrapFail(err, "delete manual range")
	}
	if !deleted {
		return s.notFound(c, "no such range")
	}

	s.announce(c, requester, pubsub.TopicCalendar)

	return c.SendStatus(http.StatusNoContent)
}

func (s *server) handleAddRepeating(c *fiber.Ctx) error {
	requester := requesterID(c)

	var req timeline.Repeating
	if err := c.BodyParser(&req); err != nil {
		return s.badRequest(c, "malformed request body")
	}

	added, err := s.cal.AddRepeatingRange(c.Context(), calendars.RepeatingRange{
		User:      requester,
		Repeating: req,
	})
	if err != nil {
		if errors.Is(err, timeline.ErrMalformedRepeat) || errors.Is(err, calendars.ErrInvalidRange) {
			return s.badRequest(c, err.Error())
		}
		return errors.WrapFail(err, "add repeating range")
	}

	s.announce(c, requester, pubsub.TopicCalendar)

	return c.Status(http.StatusCreated).JSON(added)
}

func (s *server) handleDeleteRepeating(c *fiber.Ctx) error {
	requester := requesterID(c)

	id := c.Query("id")
	if id == "" {
		return s.badRequest(c, "missing 'id' query parameter")
	}

	deleted, err := s.cal.DeleteRepeatingRange(c.Context(), requester, id)
	if err != nil {
		return errors.WrapFail(err, "delete repeating range")
	}
	if !deleted {
		return s.notFound(c, "no such range")
	}

	s.announce(c, requester, pubsub.TopicCalendar)

	return c.SendStatus(http.StatusNoContent)
}

func (s *server) handleImport(c *fiber.Ctx) error {
	requester := requesterID(c)

	var req struct {
		URL string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil || req.URL == "" {
		return s.badRequest(c, "missing feed url")
	}

	imported, err := s.feeds.ImportFeed(c.Context(), requester, req.URL)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "import feed"))
		return s.badRequest(c, "feed could not be imported")
	}

	s.announce(c, requester, pubsub.TopicCalendar)

	return c.JSON(fiber.Map{"imported": imported})
}

func (s *server) handleAddCommitment(c *fiber.Ctx) error {
	requester := requesterID(c)

	var req calendars.Commitment
	if err := c.BodyParser(&req); err != nil {
		return s.badRequest(c, "malformed request body")
	}

	if !slices.Contains(req.Attendees, requester) {
		req.Attendees = append(req.Attendees, requester)
	}

	added, err := s.cal.AddCommitment(c.Context(), req)
	if err != nil {
		if errors.Is(err, calendars.ErrInvalidRange) {
			return s.badRequest(c, err.Error())
		}
		return errors.WrapFail(err, "add commitment")
	}

	for _, attendee := range added.Attendees {
		s.announce(c, attendee, pubsub.TopicCommitment)
	}

	return c.Status(http.StatusCreated).JSON(added)
}

func (s *server) handleUpsertUser(c *fiber.Ctx) error {
	requester := requesterID(c)

	var req struct {
		Username string `json:"username"`
		Telegram int64  `json:"telegram"`
	}
	if err := c.BodyParser(&req); err != nil {
		return s.badRequest(c, "malformed request body")
	}

	err := s.users.Upsert(c.Context(), friends.User{
		ID:       requester,
		Username: req.Username,
		Telegram: req.Telegram,
	})
	if err != nil {
		return errors.WrapFail(err, "upsert user")
	}

	return c.SendStatus(http.StatusNoContent)
}

func (s *server) handleAddFriend(c *fiber.Ctx) error {
	requester := requesterID(c)

	var req struct {
		FriendID string `json:"friend_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.FriendID == "" {
		return s.badRequest(c, "missing friend id")
	}
	if req.FriendID == requester {
		return s.badRequest(c, "cannot befriend yourself")
	}

	exists, err := s.users.Exists(c.Context(), req.FriendID)
	if err != nil {
		return errors.WrapFail(err, "check friend exists")
	}
	if !exists {
		return s.notFound(c, "no such user")
	}

	err = s.users.AddFriend(c.Context(), requester, req.FriendID)
	if err != nil {
		return errors.WrapFail(err, "add friend")
	}

	return c.SendStatus(http.StatusNoContent)
}

func parseWindow(c *fiber.Ctx) (timeline.Interval, error) {
	start, err := time.Parse(time.RFC3339, c.Query("start_time"))
	if err != nil {
		return timeline.Interval{}, errors.Error("malformed 'start_time' timestamp")
	}

	end, err := time.Parse(time.RFC3339, c.Query("end_time"))
	if err != nil {
		return timeline.Interval{}, errors.Error("malformed 'end_time' timestamp")
	}

	return timeline.Interval{Start: start, End: end}, nil
}

func queryUsers(c *fiber.Ctx, requester string) []string {
	users := splitIDs(c.Query("user_ids"))
	if len(users) == 0 {
		users = []string{requester}
	}
	return users
}

// announce publishes a schedule-change event. Delivery is best effort,
// a broker outage must not fail the write that already happened.
func (s *server) announce(c *fiber.Ctx, user, topic string) {
	err := s.events.Publish(c.Context(), pubsub.Event{User: user, Topic: topic})
	if err != nil {
		s.log.Warn(errors.WrapFailf(err, "publish %s event for %s", topic, user))
	}
}

func (s *server) availabilityError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, availability.ErrInvalidWindow):
		return s.badRequest(c, err.Error())
	case errors.Is(err, availability.ErrUnknownUser):
		return s.notFound(c, err.Error())
	case errors.Is(err, availability.ErrPermissionDenied):
		return c.Status(http.StatusForbidden).JSON(fiber.Map{
			"status":  "ERROR",
			"message": err.Error(),
		})
	default:
		return err
	}
}

func (s *server) badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{
		"status":  "ERROR",
		"message": msg,
	})
}

func (s *server) notFound(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusNotFound).JSON(fiber.Map{
		"status":  "ERROR",
		"message": msg,
	})
}

func parseKind(raw string) (calendars.RangeKind, bool) {
	switch raw {
	case "busy":
		return calendars.KindBusy, true
	case "free":
		return calendars.KindFree, true
	default:
		return 0, false
	}
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}

	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
