package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEndNotAfterStart = errors.New("end time must be later than start time")
	ErrDateInPast       = errors.New("date must be in the future")
	ErrSlotConflict     = errors.New("the selected time overlaps with an existing booking")
	ErrInvalidTimeOfDay = errors.New("time must be in HH:MM format")
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
type TimeOfDay int

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(hour*60 + minute), nil
}

func (t TimeOfDay) Minutes() int { return int(t) }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Slot is a half-open [start,end) time range on a single civil date.
type Slot struct {
	date  time.Time
	start TimeOfDay
	end   TimeOfDay
}

func NewSlot(date time.Time, start, end TimeOfDay) (Slot, error) {
	if start >= end {
		return Slot{}, ErrEndNotAfterStart
	}
	if start < 0 || int(end) > minutesPerDay {
		return Slot{}, ErrInvalidTimeOfDay
	}
	y, m, d := date.Date()
	return Slot{
		date:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		start: start,
		end:   end,
	}, nil
}

func (s Slot) Date() time.Time  { return s.date }
func (s Slot) Start() TimeOfDay { return s.start }
func (s Slot) End() TimeOfDay   { return s.end }

func (s Slot) Duration() time.Duration {
	return time.Duration(s.end-s.start) * time.Minute
}

// ValidateDateAt rejects slots on a civil date earlier than today. Same-day
// bookings are allowed regardless of the current wall-clock time.
func (s Slot) ValidateDateAt(today time.Time) error {
	if s.date.Before(today) {
		return ErrDateInPast
	}
	return nil
}

// Overlaps implements the half-open interval test: two slots intersect when
// a.start < b.end and a.end > b.start. Back-to-back slots do not overlap.
func (s Slot) Overlaps(other Slot) bool {
	if !s.date.Equal(other.date) {
		return false
	}
	return s.start < other.end && s.end > other.start
}

func (s Slot) String() string {
	return fmt.Sprintf("%s %s-%s", s.date.Format("2006-01-02"), s.start, s.end)
}
