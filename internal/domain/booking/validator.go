package booking

// ExistingSlot is the minimal view of an already-persisted booking that the
// conflict check needs.
type ExistingSlot struct {
	Slot   Slot
	Status Status
}

// CheckConflict decides admissibility of a candidate slot against the venue's
// existing bookings on the same date. Bookings in cancelled or rejected status
// never block. A conflict is one combined error, distinct from the field-level
// validation errors on the candidate itself.
func CheckConflict(candidate Slot, existing []ExistingSlot) error {
	for _, b := range existing {
		if !b.Status.Blocks() {
			continue
		}
		if candidate.Overlaps(b.Slot) {
			return ErrSlotConflict
		}
	}
	return nil
}
