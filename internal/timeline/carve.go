package timeline

import "time"

// CarveFree subtracts explicit free overrides from a merged busy
// schedule. Both inputs must be sorted by Start; busy must already be
// merged. A free range fully covering a busy range cancels it, a free
// range inside a busy range splits it in two.
func CarveFree(free, busy []Interval) []Interval {
	var out []Interval

	// freeEnd is the end of free coverage consumed so far; it keeps a
	// free range that outlives its busy range effective for the next one.
	var freeEnd time.Time

	j := 0

	for _, b := range busy {
		start := b.Start
		if freeEnd.After(start) {
			start = freeEnd
		}

		for j < len(free) && free[j].Start.Before(b.End) {
			f := free[j]
			j++

			if f.End.After(freeEnd) {
				freeEnd = f.End
			}

			if !f.End.After(start) {
				continue
			}

			if f.Start.After(start) {
				out = append(out, Interval{Start: start, End: f.Start})
			}

			start = f.End
		}

		if start.Before(b.End) {
			out = append(out, Interval{Start: start, End: b.End})
		}
	}

	return out
}
