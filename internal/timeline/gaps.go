package timeline

// Gaps complements a merged busy list against a query window: time
// inside [window.Start, window.End) not covered by any busy interval.
// If nothing busy intersects the window, the whole window is one gap.
func Gaps(busy []Interval, window Interval) []Interval {
	if window.IsZero() {
		return nil
	}

	var gaps []Interval
	cursor := window.Start

	for _, b := range busy {
		if !b.Overlaps(window) {
			continue
		}

		if b.Start.After(cursor) {
			gaps = append(gaps, Interval{Start: cursor, End: b.Start})
		}

		if b.End.After(cursor) {
			cursor = b.End
		}
	}

	if cursor.Before(window.End) {
		gaps = append(gaps, Interval{Start: cursor, End: window.End})
	}

	return gaps
}
