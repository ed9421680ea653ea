package availability

import (
	"context"
	"time"

	"github.com/hangtime-app/hangtime/internal/calendars"
	"github.com/hangtime-app/hangtime/internal/friends"
	"github.com/hangtime-app/hangtime/internal/timeline"
	"github.com/hangtime-app/hangtime/pkg/errors"
	"github.com/hangtime-app/hangtime/pkg/logger"
)

// MaxWindow caps the span a single query may cover.
const MaxWindow = 35 * 24 * time.Hour

// Engine answers free/busy questions over one or many users. It keeps
// no state: every call re-reads source ranges and recomputes, so
// concurrent queries need no locking.
type Engine struct {
	cal   calendars.API
	users friends.API
	log   logger.Logger
}

func NewEngine(log logger.Logger, cal calendars.API, users friends.API) *Engine {
	return &Engine{
		cal:   cal,
		users: users,
		log:   log.With("availability"),
	}
}

// BusyRanges returns user's effective busy schedule from horizon on:
// every busy source merged, free overrides carved out.
func (e *Engine) BusyRanges(ctx context.Context, requester, user string, horizon time.Time) ([]timeline.Interval, error) {
	err := e.checkUser(ctx, requester, user)
	if err != nil {
		return nil, err
	}

	return e.busySet(ctx, user, horizon)
}

// FreeGaps returns the intervals inside the window during which none
// of the given users is busy.
func (e *Engine) FreeGaps(ctx context.Context, requester string, userIDs []string, window timeline.Interval) ([]timeline.Interval, error) {
	err := validateWindow(window)
	if err != nil {
		return nil, err
	}

	var union []timeline.Interval

	for _, user := range userIDs {
		err = e.checkUser(ctx, requester, user)
		if err != nil {
			return nil, err
		}

		busy, err := e.busySet(ctx, user, window.Start)
		if err != nil {
			return nil, err
		}

		union = append(union, busy...)
	}

	timeline.Sort(union)

	return timeline.Gaps(timeline.Merge(union), window), nil
}

// WhoIsFree returns the subset of userIDs with no busy interval
// overlapping the window.
func (e *Engine) WhoIsFree(ctx context.Context, requester string, userIDs []string, window timeline.Interval) ([]string, error) {
	err := validateWindow(window)
	if err != nil {
		return nil, err
	}

	var free []string

	for _, user := range userIDs {
		err = e.checkUser(ctx, requester, user)
		if err != nil {
			return nil, err
		}

		busy, err := e.busySet(ctx, user, window.Start)
		if err != nil {
			return nil, err
		}

		if !anyOverlap(busy, window) {
			free = append(free, user)
		}
	}

	return free, nil
}

// busySet aggregates every busy source for one user, merges overlaps
// and applies manual free overrides. Valid relative to horizon only:
// repeating ranges are expanded from there.
func (e *Engine) busySet(ctx context.Context, user string, horizon time.Time) ([]timeline.Interval, error) {
	manual, err := e.cal.ManualRanges(ctx, user)
	if err != nil {
		return nil, errors.WrapFail(err, "load manual ranges")
	}

	imported, err := e.cal.ImportedRanges(ctx, user)
	if err != nil {
		return nil, errors.WrapFail(err, "load imported ranges")
	}

	commitments, err := e.cal.Commitments(ctx, user)
	if err != nil {
		return nil, errors.WrapFail(err, "load commitments")
	}

	repeating, err := e.cal.RepeatingRanges(ctx, user)
	if err != nil {
		return nil, errors.WrapFail(err, "load repeating ranges")
	}

	var busy, free []timeline.Interval

	for _, r := range manual {
		if r.Kind == calendars.KindFree {
			free = append(free, r.Interval())
			continue
		}
		busy = append(busy, r.Interval())
	}

	for _, r := range imported {
		busy = append(busy, r.Interval())
	}

	for _, c := range commitments {
		busy = append(busy, c.Interval())
	}

	for _, r := range repeating {
		occ, err := r.Expand(horizon)
		if err != nil {
			// Bad template must not sink the whole query.
			e.log.Warn(errors.WrapFailf(err, "expand repeating range %s of %s", r.ID, user))
			continue
		}
		busy = append(busy, occ...)
	}

	timeline.Sort(busy)
	timeline.Sort(free)

	return timeline.CarveFree(free, timeline.Merge(busy)), nil
}

func (e *Engine) checkUser(ctx context.Context, requester, user string) error {
	known, err := e.users.Exists(ctx, user)
	if err != nil {
		return errors.WrapFail(err, "check user existence")
	}
	if !known {
		return errors.Wrapf(ErrUnknownUser, "user %s", user)
	}

	if requester == user {
		return nil
	}

	allowed, err := e.users.Allowed(ctx, requester, user)
	if err != nil {
		return errors.WrapFail(err, "check calendar visibility")
	}
	if !allowed {
		return errors.Wrapf(ErrPermissionDenied, "user %s", user)
	}

	return nil
}

func validateWindow(window timeline.Interval) error {
	if window.End.Before(window.Start) {
		return errors.Wrap(ErrInvalidWindow, "window ends before it starts")
	}

	if window.End.Sub(window.Start) > MaxWindow {
		return errors.Wrap(ErrInvalidWindow, "window longer than 35 days")
	}

	return nil
}

func anyOverlap(busy []timeline.Interval, window timeline.Interval) bool {
	for _, b := range busy {
		if b.Overlaps(window) {
			return true
		}
	}

	return false
}
