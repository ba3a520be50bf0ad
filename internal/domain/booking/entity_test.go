//go:build unit

package booking_test

import (
	"testing"

	"raga-booking/internal/domain/booking"
	"raga-booking/internal/pkg/clock"
	"raga-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.True(t, decimal.NewFromInt(900000).Equal(actual.TotalPrice()))
		assert.Equal(t, "Birthday game", actual.Notes())
		assert.Empty(t, actual.AddOnIDs())
	})

	t.Run("add-ons feed into the total", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().
			WithAddOn(decimal.NewFromInt(150000)).
			BuildDomain()
		require.NoError(t, err)

		assert.Len(t, actual.AddOnIDs(), 1)
		assert.True(t, decimal.NewFromInt(1050000).Equal(actual.TotalPrice()))
	})

	t.Run("date in the past is rejected", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().
			WithDate(builder.FixedNow.AddDate(0, 0, -1)).
			BuildDomain()
		require.ErrorIs(t, err, booking.ErrDateInPast)
		assert.Nil(t, actual)
	})

	t.Run("same-day booking is allowed", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().
			WithDate(builder.FixedNow).
			BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)
	})

	t.Run("overlapping existing booking is rejected", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().
			WithExisting("11:00", "13:00", booking.StatusConfirmed).
			BuildDomain()
		require.ErrorIs(t, err, booking.ErrSlotConflict)
		assert.Nil(t, actual)
	})

	t.Run("cancelled existing booking does not block", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().
			WithExisting("10:00", "12:00", booking.StatusCancelled).
			BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)
	})
}

func TestBookingTransitionTo(t *testing.T) {
	cases := []struct {
		name  string
		from  booking.Status
		to    booking.Status
		errIs error
	}{
		{name: "pending to confirmed", from: booking.StatusPending, to: booking.StatusConfirmed},
		{name: "pending to rejected", from: booking.StatusPending, to: booking.StatusRejected},
		{name: "pending to cancelled", from: booking.StatusPending, to: booking.StatusCancelled},
		{name: "confirmed to completed", from: booking.StatusConfirmed, to: booking.StatusCompleted},
		{name: "confirmed to cancelled", from: booking.StatusConfirmed, to: booking.StatusCancelled},
		{name: "pending to completed", from: booking.StatusPending, to: booking.StatusCompleted, errIs: booking.ErrInvalidTransition},
		{name: "completed is terminal", from: booking.StatusCompleted, to: booking.StatusCancelled, errIs: booking.ErrInvalidTransition},
		{name: "cancelled is terminal", from: booking.StatusCancelled, to: booking.StatusPending, errIs: booking.ErrInvalidTransition},
		{name: "rejected is terminal", from: booking.StatusRejected, to: booking.StatusConfirmed, errIs: booking.ErrInvalidTransition},
		{name: "unknown status", from: booking.StatusPending, to: booking.Status("archived"), errIs: booking.ErrInvalidStatus},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := rebuildWithStatus(t, c.from)
			err := b.TransitionTo(c.to)
			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.to, b.Status())
			} else {
				require.ErrorIs(t, err, c.errIs)
				assert.Equal(t, c.from, b.Status())
			}
		})
	}
}

func rebuildWithStatus(t *testing.T, status booking.Status) *booking.Booking {
	t.Helper()
	base, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)
	return booking.ReconstructBooking(
		base.ID(), base.VenueID(), base.UserID(),
		base.Slot(), status, base.Notes(), base.AddOnIDs(), base.TotalPrice(),
		base.CreatedAt(), base.UpdatedAt(),
	)
}

func TestBookingIsUpcoming(t *testing.T) {
	today := clock.Midnight(builder.FixedNow)

	b, err := builder.NewBookingBuilder().WithDate(builder.FixedNow.AddDate(0, 0, 1)).BuildDomain()
	require.NoError(t, err)
	assert.True(t, b.IsUpcoming(today))

	sameDay, err := builder.NewBookingBuilder().WithDate(builder.FixedNow).BuildDomain()
	require.NoError(t, err)
	assert.True(t, sameDay.IsUpcoming(today))
}
