package timeline

import (
	"sort"
	"time"
)

// Interval is a half-open time range [Start, End).
// Zero-length intervals are allowed and ignored by merges.
type Interval struct {
	Start time.Time `json:"start_time" bson:"start"`
	End   time.Time `json:"end_time" bson:"end"`
}

func (i Interval) IsZero() bool {
	return !i.Start.Before(i.End)
}

// Overlaps reports strict overlap with other, adjacency does not count.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

func Sort(intervals []Interval) {
	sort.Slice(intervals, func(a, b int) bool {
		return intervals[a].Start.Before(intervals[b].Start)
	})
}
