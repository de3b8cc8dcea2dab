package schedule

// SlotRef identifies one selected slot by its UTC identity: the original
// UTC day plus the UTC time. Display-local day/time are deliberately not
// part of the identity; a selection made in any display timezone validates
// against the same UTC pair.
type SlotRef struct {
	Day  Day
	Time TimeOfDay
}

// SelectionResult partitions a submitted selection into the slots that
// still exist in the live grid and the ones that no longer do.
type SelectionResult struct {
	Accepted []SlotRef
	Rejected []SlotRef
}

// AllAccepted reports whether no slot was rejected.
func (r SelectionResult) AllAccepted() bool {
	return len(r.Rejected) == 0
}

// ValidateSelection checks every selected slot for membership in the live
// aggregated grid. Availability can change between page load and form
// submission, so callers must pass a freshly aggregated set, never a cached
// one. Each slot is accepted or rejected individually; whether a partially
// rejected selection may still proceed is the caller's policy.
func ValidateSelection(selection []SlotRef, live Weekly) SelectionResult {
	var res SelectionResult
	for _, ref := range selection {
		if live.Contains(ref.Day, ref.Time) {
			res.Accepted = append(res.Accepted, ref)
		} else {
			res.Rejected = append(res.Rejected, ref)
		}
	}
	return res
}
