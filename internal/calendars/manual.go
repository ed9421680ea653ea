package calendars

// resolution describes how an incoming manual range settles against
// the ranges already on the calendar.
type resolution struct {
	add     ManualRange
	updates []ManualRange
	inserts []ManualRange
	removes []string
}

// resolveOverlaps applies the manual-calendar write rules: overlapping
// ranges of the same kind are swallowed by the new range (which widens
// to cover them, adjacency included), overlapping ranges of the other
// kind are trimmed or split around it. Inserted split fragments carry
// no ID; the repo assigns one.
//
// existing must be sorted by Start so a chain of same-kind ranges is
// swallowed in a single pass.
func resolveOverlaps(add ManualRange, existing []ManualRange) resolution {
	res := resolution{add: add}

	for _, e := range existing {
		if e.ID == add.ID {
			continue
		}

		if e.Kind == add.Kind {
			touches := !e.End.Before(res.add.Start) && !e.Start.After(res.add.End)
			if !touches {
				continue
			}

			if e.Start.Before(res.add.Start) {
				res.add.Start = e.Start
			}
			if e.End.After(res.add.End) {
				res.add.End = e.End
			}
			res.removes = append(res.removes, e.ID)
			continue
		}

		overlaps := e.Start.Before(add.End) && add.Start.Before(e.End)
		if !overlaps {
			continue
		}

		startsBefore := e.Start.Before(add.Start)
		endsAfter := e.End.After(add.End)

		switch {
		case startsBefore && endsAfter:
			// Split around the new range.
			tail := e
			tail.ID = ""
			tail.Start = add.End
			res.inserts = append(res.inserts, tail)

			e.End = add.Start
			res.updates = append(res.updates, e)

		case startsBefore:
			e.End = add.Start
			res.updates = append(res.updates, e)

		case endsAfter:
			e.Start = add.End
			res.updates = append(res.updates, e)

		default:
			res.removes = append(res.removes, e.ID)
		}
	}

	return res
}
