package timeline

import (
	"time"

	"github.com/hangtime-app/hangtime/pkg/errors"
)

// RepeatForever marks a repeating range with no final occurrence.
const RepeatForever = -1

// MaxOccurrences caps a single expansion. It bounds the work done for
// short-period infinite series; callers wanting more occurrences
// re-query with a later horizon.
const MaxOccurrences = 60

var ErrMalformedRepeat = errors.Error("malformed repeating range")

// Repeating is an occurrence template repeated every IntervalWeeks
// weeks, Count times (or forever when Count == RepeatForever).
// Occurrences are always computed on read, never stored.
type Repeating struct {
	Start         time.Time `json:"start_time" bson:"start"`
	End           time.Time `json:"end_time" bson:"end"`
	IntervalWeeks int       `json:"interval_weeks" bson:"intervalWeeks"`
	Count         int       `json:"repeat_count" bson:"repeatCount"`
}

// Expand returns the occurrences of r whose start is at or after
// horizon, in order, at most MaxOccurrences of them.
func (r Repeating) Expand(horizon time.Time) ([]Interval, error) {
	if r.IntervalWeeks <= 0 || r.Count < RepeatForever || r.Count == 0 {
		return nil, ErrMalformedRepeat
	}

	period := time.Duration(r.IntervalWeeks) * 7 * 24 * time.Hour
	start, end := r.Start, r.End

	if r.Count == RepeatForever {
		// Skip whole periods so we never iterate from a template epoch
		// far in the past.
		if ahead := horizon.Sub(start); ahead > 0 {
			skip := ahead / period
			start = start.Add(skip * period)
			end = end.Add(skip * period)
		}

		var out []Interval
		for len(out) < MaxOccurrences {
			if !start.Before(horizon) {
				out = append(out, Interval{Start: start, End: end})
			}
			start = start.Add(period)
			end = end.Add(period)
		}
		return out, nil
	}

	finalEnd := r.End.Add(time.Duration(r.Count-1) * period)
	if horizon.After(finalEnd) {
		return nil, nil
	}

	var out []Interval
	for n := 0; n < r.Count && len(out) < MaxOccurrences; n++ {
		if !start.Before(horizon) {
			out = append(out, Interval{Start: start, End: end})
		}
		start = start.Add(period)
		end = end.Add(period)
	}
	return out, nil
}
