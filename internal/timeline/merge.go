package timeline

// Merge collapses a sorted interval list into a sorted list without
// overlaps. Touching intervals are coalesced, so the output never
// contains zero-length gaps. Input must be sorted by Start.
func Merge(sorted []Interval) []Interval {
	if len(sorted) == 0 {
		return nil
	}

	merged := make([]Interval, 0, len(sorted))
	cur := sorted[0]

	for _, next := range sorted[1:] {
		if next.Start.After(cur.End) {
			merged = append(merged, cur)
			cur = next
			continue
		}

		if next.End.After(cur.End) {
			cur.End = next.End
		}
	}

	return append(merged, cur)
}
