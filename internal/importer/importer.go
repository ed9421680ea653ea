package importer

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/hangtime-app/hangtime/internal/calendars"
	"github.com/hangtime-app/hangtime/internal/timeline"
	"github.com/hangtime-app/hangtime/pkg/errors"
	"github.com/hangtime-app/hangtime/pkg/logger"
)

// maxFeedOccurrences caps RRULE expansion per event so a pathological
// feed cannot flood the imported calendar.
const maxFeedOccurrences = 500

type Config struct {
	// Horizon bounds how far ahead of now feed events are imported.
	Horizon time.Duration `yaml:"horizon"`
	Timeout time.Duration `yaml:"timeout"`
}

// Importer turns an ICS feed into a user's imported busy calendar.
// Every import replaces the previous one wholesale with an already
// merged interval list.
type Importer struct {
	cal     calendars.API
	client  *http.Client
	horizon time.Duration
	log     logger.Logger
}

func New(log logger.Logger, cfg Config, cal calendars.API) *Importer {
	return &Importer{
		cal:     cal,
		client:  &http.Client{Timeout: cfg.Timeout},
		horizon: cfg.Horizon,
		log:     log.With("importer"),
	}
}

// ImportFeed fetches url and replaces user's imported calendar with
// the busy ranges found in it. Returns how many merged ranges were
// stored.
func (i *Importer) ImportFeed(ctx context.Context, user, url string) (int, error) {
	body, err := i.fetch(ctx, url)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	window := timeline.Interval{Start: now, End: now.Add(i.horizon)}

	busy, err := extractBusy(body, window)
	if err != nil {
		return 0, err
	}

	ranges := make([]calendars.ImportedRange, 0, len(busy))
	for _, b := range busy {
		ranges = append(ranges, calendars.ImportedRange{
			User:  user,
			Start: b.Start,
			End:   b.End,
		})
	}

	err = i.cal.ReplaceImported(ctx, user, ranges)
	if err != nil {
		return 0, errors.WrapFail(err, "store imported calendar")
	}

	i.log.Infof("imported %d busy ranges for %s", len(ranges), user)
	return len(ranges), nil
}

func (i *Importer) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapFail(err, "build feed request")
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, errors.WrapFail(err, "fetch feed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Failf("fetch feed: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	return body, errors.WrapFail(err, "read feed body")
}

// extractBusy parses an ICS payload and returns the merged busy
// intervals of all events intersecting the window. Recurring events
// are expanded through their RRULE; events the parser chokes on are
// skipped, not fatal.
func extractBusy(body []byte, window timeline.Interval) ([]timeline.Interval, error) {
	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, errors.WrapFail(err, "parse ics payload")
	}

	var busy []timeline.Interval

	for _, ev := range cal.Events() {
		start, err := ev.GetStartAt()
		if err != nil {
			continue
		}

		end, err := ev.GetEndAt()
		if err != nil || !start.Before(end) {
			continue
		}

		rruleProp := ev.GetProperty(ical.ComponentPropertyRrule)
		if rruleProp == nil {
			one := timeline.Interval{Start: start, End: end}
			if one.Overlaps(window) {
				busy = append(busy, one)
			}
			continue
		}

		rule, err := rrule.StrToRRule(rruleProp.Value)
		if err != nil {
			continue
		}
		rule.DTStart(start)

		duration := end.Sub(start)

		occurrences := rule.Between(window.Start, window.End, true)
		if len(occurrences) > maxFeedOccurrences {
			occurrences = occurrences[:maxFeedOccurrences]
		}

		for _, occStart := range occurrences {
			busy = append(busy, timeline.Interval{
				Start: occStart,
				End:   occStart.Add(duration),
			})
		}
	}

	timeline.Sort(busy)

	return timeline.Merge(busy), nil
}
