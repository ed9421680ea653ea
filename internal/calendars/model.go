package calendars

import (
	"time"

	"github.com/hangtime-app/hangtime/internal/timeline"
)

type RangeKind int

const (
	KindBusy RangeKind = iota
	KindFree
)

// ManualRange is a user-entered busy or free range on the manual
// calendar. Overlap resolution on write keeps ranges of one kind
// disjoint, see resolveOverlaps.
type ManualRange struct {
	ID    string    `json:"id" bson:"id"`
	User  string    `json:"user" bson:"user"`
	Kind  RangeKind `json:"kind" bson:"kind"`
	Start time.Time `json:"start_time" bson:"start"`
	End   time.Time `json:"end_time" bson:"end"`
}

func (r ManualRange) Interval() timeline.Interval {
	return timeline.Interval{Start: r.Start, End: r.End}
}

// RepeatingRange is a stored occurrence template. The expansion lives
// on timeline.Repeating and is computed on every read.
type RepeatingRange struct {
	ID   string `json:"id" bson:"id"`
	User string `json:"user" bson:"user"`

	timeline.Repeating `bson:",inline"`
}

// ImportedRange comes from an external calendar feed and is always
// busy. The import step replaces a user's imported calendar wholesale
// with an already merged list.
type ImportedRange struct {
	ID    string    `json:"id" bson:"id"`
	User  string    `json:"user" bson:"user"`
	Start time.Time `json:"start_time" bson:"start"`
	End   time.Time `json:"end_time" bson:"end"`
}

func (r ImportedRange) Interval() timeline.Interval {
	return timeline.Interval{Start: r.Start, End: r.End}
}

// Commitment is a scheduled hang event: every attendee is busy for
// its whole span. Its lifecycle belongs to the events subsystem.
type Commitment struct {
	ID        string    `json:"id" bson:"id"`
	Title     string    `json:"title" bson:"title"`
	Start     time.Time `json:"start_time" bson:"start"`
	End       time.Time `json:"end_time" bson:"end"`
	Attendees []string  `json:"attendee_ids" bson:"attendees"`
}

func (c Commitment) Interval() timeline.Interval {
	return timeline.Interval{Start: c.Start, End: c.End}
}

const (
	FieldID        = "id"
	FieldUser      = "user"
	FieldKind      = "kind"
	FieldStart     = "start"
	FieldEnd       = "end"
	FieldAttendees = "attendees"
)
