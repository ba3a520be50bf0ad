//go:build unit

package booking_test

import (
	"testing"
	"time"

	"raga-booking/internal/domain/booking"

	"github.com/stretchr/testify/require"
)

func TestCheckConflict(t *testing.T) {
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	existing := func(start, end string, status booking.Status) booking.ExistingSlot {
		return booking.ExistingSlot{Slot: mustSlot(t, date, start, end), Status: status}
	}

	cases := []struct {
		name     string
		existing []booking.ExistingSlot
		errIs    error
	}{
		{
			name: "no bookings",
		},
		{
			name:     "overlapping pending booking blocks",
			existing: []booking.ExistingSlot{existing("11:00", "13:00", booking.StatusPending)},
			errIs:    booking.ErrSlotConflict,
		},
		{
			name:     "overlapping confirmed booking blocks",
			existing: []booking.ExistingSlot{existing("09:00", "11:00", booking.StatusConfirmed)},
			errIs:    booking.ErrSlotConflict,
		},
		{
			name:     "cancelled booking frees the slot",
			existing: []booking.ExistingSlot{existing("10:00", "12:00", booking.StatusCancelled)},
		},
		{
			name:     "rejected booking frees the slot",
			existing: []booking.ExistingSlot{existing("10:00", "12:00", booking.StatusRejected)},
		},
		{
			name:     "back to back is allowed",
			existing: []booking.ExistingSlot{existing("08:00", "10:00", booking.StatusConfirmed), existing("12:00", "14:00", booking.StatusPending)},
		},
		{
			name: "one blocking slot among free ones",
			existing: []booking.ExistingSlot{
				existing("08:00", "10:00", booking.StatusConfirmed),
				existing("10:00", "12:00", booking.StatusCancelled),
				existing("11:00", "13:00", booking.StatusPending),
			},
			errIs: booking.ErrSlotConflict,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			candidate := mustSlot(t, date, "10:00", "12:00")
			err := booking.CheckConflict(candidate, c.existing)
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
