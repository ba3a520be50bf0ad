//go:build unit

package booking_test

import (
	"testing"
	"time"

	"raga-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) booking.TimeOfDay {
	t.Helper()
	tod, err := booking.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func mustSlot(t *testing.T, date time.Time, start, end string) booking.Slot {
	t.Helper()
	slot, err := booking.NewSlot(date, mustTime(t, start), mustTime(t, end))
	require.NoError(t, err)
	return slot
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "morning", input: "09:30", want: 9*60 + 30},
		{name: "midnight", input: "00:00", want: 0},
		{name: "end of day", input: "23:59", want: 23*60 + 59},
		{name: "missing minutes", input: "09", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "not a time", input: "soon", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := booking.ParseTimeOfDay(c.input)
			if c.wantErr {
				require.ErrorIs(t, err, booking.ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got.Minutes())
		})
	}
}

func TestNewSlot(t *testing.T) {
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	t.Run("end must be after start", func(t *testing.T) {
		_, err := booking.NewSlot(date, mustTime(t, "12:00"), mustTime(t, "10:00"))
		require.ErrorIs(t, err, booking.ErrEndNotAfterStart)

		_, err = booking.NewSlot(date, mustTime(t, "10:00"), mustTime(t, "10:00"))
		require.ErrorIs(t, err, booking.ErrEndNotAfterStart)
	})

	t.Run("normalizes date to midnight", func(t *testing.T) {
		late := time.Date(2026, 3, 11, 22, 45, 13, 0, time.UTC)
		slot, err := booking.NewSlot(late, mustTime(t, "10:00"), mustTime(t, "12:00"))
		require.NoError(t, err)
		assert.Equal(t, date, slot.Date())
	})

	t.Run("duration", func(t *testing.T) {
		slot := mustSlot(t, date, "10:00", "11:30")
		assert.Equal(t, 90*time.Minute, slot.Duration())
	})
}

func TestSlotValidateDateAt(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		date  time.Time
		errIs error
	}{
		{name: "tomorrow", date: today.AddDate(0, 0, 1)},
		{name: "same day is allowed", date: today},
		{name: "yesterday", date: today.AddDate(0, 0, -1), errIs: booking.ErrDateInPast},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			slot := mustSlot(t, c.date, "10:00", "12:00")
			err := slot.ValidateDateAt(today)
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestSlotOverlaps(t *testing.T) {
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	existing := mustSlot(t, date, "10:00", "12:00")

	cases := []struct {
		name       string
		start, end string
		want       bool
	}{
		{name: "partial overlap at the end", start: "11:00", end: "13:00", want: true},
		{name: "partial overlap at the start", start: "09:00", end: "11:00", want: true},
		{name: "fully contained", start: "10:30", end: "11:30", want: true},
		{name: "fully containing", start: "09:00", end: "13:00", want: true},
		{name: "identical", start: "10:00", end: "12:00", want: true},
		{name: "back to back after", start: "12:00", end: "13:00", want: false},
		{name: "back to back before", start: "08:00", end: "10:00", want: false},
		{name: "disjoint", start: "14:00", end: "15:00", want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			candidate := mustSlot(t, date, c.start, c.end)
			assert.Equal(t, c.want, candidate.Overlaps(existing))
			assert.Equal(t, c.want, existing.Overlaps(candidate))
		})
	}

	t.Run("different dates never overlap", func(t *testing.T) {
		other := mustSlot(t, date.AddDate(0, 0, 1), "10:00", "12:00")
		assert.False(t, existing.Overlaps(other))
	})
}
