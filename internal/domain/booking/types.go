package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// Blocks reports whether a booking in this status occupies its slot for
// conflict purposes. Cancelled and rejected bookings free the slot.
func (s Status) Blocks() bool {
	switch s {
	case StatusCancelled, StatusRejected:
		return false
	default:
		return true
	}
}

var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}
