//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"raga-booking/internal/domain/booking"
	"raga-booking/internal/domain/user"
	"raga-booking/internal/infra"
	"raga-booking/internal/pkg/clock"
	"raga-booking/internal/usecase/commands"
	"raga-booking/internal/usecase/shared"
	"raga-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingCommands(u *fakeUoW) commands.BookingCommands {
	services := &booking.Services{Clock: clock.NewMockClock(builder.FixedNow)}
	return commands.NewBookingCommands(u, services)
}

func seedVenue(u *fakeUoW, slug string) uuid.UUID {
	venueID := uuid.New()
	u.tx.reads.venuesBySlug[slug] = &shared.VenueSnapshot{
		ID:           venueID,
		Name:         "Arena Sinar Utama",
		Slug:         slug,
		CategoryID:   uuid.New(),
		PricePerHour: decimal.NewFromInt(450000),
	}
	return venueID
}

func createInput(t *testing.T, slug string, userID uuid.UUID) commands.CreateBookingInput {
	t.Helper()
	start, err := booking.ParseTimeOfDay("10:00")
	require.NoError(t, err)
	end, err := booking.ParseTimeOfDay("12:00")
	require.NoError(t, err)
	return commands.CreateBookingInput{
		VenueSlug: slug,
		UserID:    userID,
		Date:      builder.FixedNow.AddDate(0, 0, 1),
		Start:     start,
		End:       end,
		Notes:     "Birthday game",
	}
}

func seedExistingSlot(t *testing.T, u *fakeUoW, venueID uuid.UUID, date time.Time, start, end string, status booking.Status) {
	t.Helper()
	s, err := booking.ParseTimeOfDay(start)
	require.NoError(t, err)
	e, err := booking.ParseTimeOfDay(end)
	require.NoError(t, err)
	slot, err := booking.NewSlot(date, s, e)
	require.NoError(t, err)
	u.tx.reads.slots[venueID] = append(u.tx.reads.slots[venueID], booking.ExistingSlot{Slot: slot, Status: status})
}

func TestBookingCommandsCreate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	slug := "arena-sinar-utama"

	t.Run("admits a free slot and locks the venue", func(t *testing.T) {
		u := newFakeUoW()
		venueID := seedVenue(u, slug)

		id, err := newBookingCommands(u).Create(ctx, createInput(t, slug, userID))
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		require.Len(t, u.tx.bookings.created, 1)
		created := u.tx.bookings.created[0]
		assert.Equal(t, venueID, created.VenueID())
		assert.Equal(t, userID, created.UserID())
		assert.Equal(t, booking.StatusPending, created.Status())
		assert.True(t, decimal.NewFromInt(900000).Equal(created.TotalPrice()))
		assert.Equal(t, []uuid.UUID{venueID}, u.tx.venues.locked)
	})

	t.Run("prices in offered add-ons", func(t *testing.T) {
		u := newFakeUoW()
		venueID := seedVenue(u, slug)
		addOnID := uuid.New()
		u.tx.reads.addOns[venueID] = []shared.AddOnSnapshot{
			{ID: addOnID, Name: "Referee", Price: decimal.NewFromInt(150000)},
		}

		input := createInput(t, slug, userID)
		input.AddOnIDs = []uuid.UUID{addOnID}

		_, err := newBookingCommands(u).Create(ctx, input)
		require.NoError(t, err)

		require.Len(t, u.tx.bookings.created, 1)
		created := u.tx.bookings.created[0]
		assert.Equal(t, []uuid.UUID{addOnID}, created.AddOnIDs())
		assert.True(t, decimal.NewFromInt(1050000).Equal(created.TotalPrice()))
	})

	t.Run("rejects an add-on from another venue", func(t *testing.T) {
		u := newFakeUoW()
		seedVenue(u, slug)

		input := createInput(t, slug, userID)
		input.AddOnIDs = []uuid.UUID{uuid.New()}

		_, err := newBookingCommands(u).Create(ctx, input)
		require.ErrorIs(t, err, booking.ErrAddOnNotOffered)
		assert.Empty(t, u.tx.bookings.created)
	})

	t.Run("unknown venue", func(t *testing.T) {
		u := newFakeUoW()
		_, err := newBookingCommands(u).Create(ctx, createInput(t, "no-such-venue", userID))
		require.ErrorIs(t, err, commands.ErrVenueNotFound)
	})

	t.Run("overlapping blocking booking", func(t *testing.T) {
		u := newFakeUoW()
		venueID := seedVenue(u, slug)
		input := createInput(t, slug, userID)
		seedExistingSlot(t, u, venueID, input.Date, "11:00", "13:00", booking.StatusConfirmed)

		_, err := newBookingCommands(u).Create(ctx, input)
		require.ErrorIs(t, err, booking.ErrSlotConflict)
		assert.Empty(t, u.tx.bookings.created)
	})

	t.Run("cancelled booking does not block", func(t *testing.T) {
		u := newFakeUoW()
		venueID := seedVenue(u, slug)
		input := createInput(t, slug, userID)
		seedExistingSlot(t, u, venueID, input.Date, "10:00", "12:00", booking.StatusCancelled)

		_, err := newBookingCommands(u).Create(ctx, input)
		require.NoError(t, err)
	})

	t.Run("storage conflict maps to slot conflict", func(t *testing.T) {
		u := newFakeUoW()
		seedVenue(u, slug)
		u.tx.bookings.createErr = infra.WrapRepoErr("overlapping booking", nil, infra.KindConflict)

		_, err := newBookingCommands(u).Create(ctx, createInput(t, slug, userID))
		require.ErrorIs(t, err, booking.ErrSlotConflict)
	})

	t.Run("date in the past", func(t *testing.T) {
		u := newFakeUoW()
		seedVenue(u, slug)

		input := createInput(t, slug, userID)
		input.Date = builder.FixedNow.AddDate(0, 0, -1)

		_, err := newBookingCommands(u).Create(ctx, input)
		require.ErrorIs(t, err, booking.ErrDateInPast)
	})

	t.Run("end not after start", func(t *testing.T) {
		u := newFakeUoW()
		seedVenue(u, slug)

		input := createInput(t, slug, userID)
		input.End = input.Start

		_, err := newBookingCommands(u).Create(ctx, input)
		require.ErrorIs(t, err, booking.ErrEndNotAfterStart)
	})
}

func TestBookingCommandsChangeStatus(t *testing.T) {
	ctx := context.Background()

	seedBooking := func(u *fakeUoW, ownerID uuid.UUID, status booking.Status) uuid.UUID {
		id := uuid.New()
		u.tx.reads.bookings[id] = &shared.BookingSnapshot{
			ID:      id,
			VenueID: uuid.New(),
			UserID:  ownerID,
			Status:  status,
			Date:    builder.FixedNow.AddDate(0, 0, 1),
		}
		return id
	}

	t.Run("admin confirms a pending booking", func(t *testing.T) {
		u := newFakeUoW()
		id := seedBooking(u, uuid.New(), booking.StatusPending)

		err := newBookingCommands(u).ChangeStatus(ctx, commands.ChangeBookingStatusInput{
			BookingID: id,
			Next:      booking.StatusConfirmed,
			ActorID:   uuid.New(),
			ActorRole: user.RoleAdmin,
		})
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, u.tx.bookings.statuses[id])
	})

	t.Run("member cancels their own booking", func(t *testing.T) {
		u := newFakeUoW()
		ownerID := uuid.New()
		id := seedBooking(u, ownerID, booking.StatusConfirmed)

		err := newBookingCommands(u).ChangeStatus(ctx, commands.ChangeBookingStatusInput{
			BookingID: id,
			Next:      booking.StatusCancelled,
			ActorID:   ownerID,
			ActorRole: user.RoleMember,
		})
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, u.tx.bookings.statuses[id])
	})

	t.Run("member cannot confirm", func(t *testing.T) {
		u := newFakeUoW()
		ownerID := uuid.New()
		id := seedBooking(u, ownerID, booking.StatusPending)

		err := newBookingCommands(u).ChangeStatus(ctx, commands.ChangeBookingStatusInput{
			BookingID: id,
			Next:      booking.StatusConfirmed,
			ActorID:   ownerID,
			ActorRole: user.RoleMember,
		})
		require.ErrorIs(t, err, commands.ErrStatusChangeNotAllowed)
	})

	t.Run("member cannot cancel someone else's booking", func(t *testing.T) {
		u := newFakeUoW()
		id := seedBooking(u, uuid.New(), booking.StatusPending)

		err := newBookingCommands(u).ChangeStatus(ctx, commands.ChangeBookingStatusInput{
			BookingID: id,
			Next:      booking.StatusCancelled,
			ActorID:   uuid.New(),
			ActorRole: user.RoleMember,
		})
		require.ErrorIs(t, err, commands.ErrStatusChangeNotAllowed)
	})

	t.Run("terminal status stays terminal", func(t *testing.T) {
		u := newFakeUoW()
		id := seedBooking(u, uuid.New(), booking.StatusCompleted)

		err := newBookingCommands(u).ChangeStatus(ctx, commands.ChangeBookingStatusInput{
			BookingID: id,
			Next:      booking.StatusCancelled,
			ActorID:   uuid.New(),
			ActorRole: user.RoleAdmin,
		})
		require.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("unknown target status", func(t *testing.T) {
		u := newFakeUoW()
		id := seedBooking(u, uuid.New(), booking.StatusPending)

		err := newBookingCommands(u).ChangeStatus(ctx, commands.ChangeBookingStatusInput{
			BookingID: id,
			Next:      booking.Status("archived"),
			ActorID:   uuid.New(),
			ActorRole: user.RoleAdmin,
		})
		require.ErrorIs(t, err, booking.ErrInvalidStatus)
	})

	t.Run("missing booking", func(t *testing.T) {
		u := newFakeUoW()
		err := newBookingCommands(u).ChangeStatus(ctx, commands.ChangeBookingStatusInput{
			BookingID: uuid.New(),
			Next:      booking.StatusConfirmed,
			ActorID:   uuid.New(),
			ActorRole: user.RoleAdmin,
		})
		require.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}
