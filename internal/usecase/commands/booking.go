package commands

import (
	"context"
	"time"

	"raga-booking/internal/domain/booking"
	"raga-booking/internal/domain/user"
	"raga-booking/internal/infra"
	"raga-booking/internal/pkg/errs"
	"raga-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVenueNotFound          = errs.New("venue not found")
	ErrBookingNotFound        = errs.New("booking not found")
	ErrStatusChangeNotAllowed = errs.New("not allowed to change this booking's status")
	ErrBookingUserMissing     = errs.New("booking user does not exist")
)

type CreateBookingInput struct {
	VenueSlug string
	UserID    uuid.UUID
	Date      time.Time
	Start     booking.TimeOfDay
	End       booking.TimeOfDay
	AddOnIDs  []uuid.UUID
	Notes     string
}

type ChangeBookingStatusInput struct {
	BookingID uuid.UUID
	Next      booking.Status
	ActorID   uuid.UUID
	ActorRole user.Role
}

type BookingCommands interface {
	Create(ctx context.Context, input CreateBookingInput) (uuid.UUID, error)
	ChangeStatus(ctx context.Context, input ChangeBookingStatusInput) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	services *booking.Services
}

func NewBookingCommands(uow shared.UnitOfWork, services *booking.Services) BookingCommands {
	return &bookingCommandsImpl{uow: uow, services: services}
}

// Create admits a booking inside a single transaction. The venue row is
// locked before existing slots are read, so two concurrent requests for the
// same venue serialize and the second sees the first's booking. The exclusion
// constraint on bookings backs this up; its violation surfaces as a conflict.
func (c *bookingCommandsImpl) Create(ctx context.Context, input CreateBookingInput) (uuid.UUID, error) {
	slot, err := booking.NewSlot(input.Date, input.Start, input.End)
	if err != nil {
		return uuid.Nil, err
	}

	var bookingID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		venueSnap, err := tx.Reads().VenueBySlug(ctx, input.VenueSlug)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVenueNotFound
			}
			return errs.Wrap(err, "failed to load venue")
		}

		if err := tx.Venues().Lock(ctx, tx.DB(), venueSnap.ID); err != nil {
			return errs.Wrap(err, "failed to lock venue")
		}

		addOns, err := resolveAddOns(ctx, tx, venueSnap.ID, input.AddOnIDs)
		if err != nil {
			return err
		}

		existing, err := tx.Reads().SlotsByVenueDate(ctx, venueSnap.ID, slot.Date())
		if err != nil {
			return errs.Wrap(err, "failed to load existing bookings")
		}

		b, err := booking.NewBooking(
			c.services,
			booking.VenueSpec{ID: venueSnap.ID, PricePerHour: venueSnap.PricePerHour},
			input.UserID,
			slot,
			addOns,
			input.Notes,
			existing,
		)
		if err != nil {
			return err
		}

		id, err := tx.Bookings().Create(ctx, tx.DB(), b)
		if err != nil {
			switch {
			case infra.IsKind(err, infra.KindConflict):
				return booking.ErrSlotConflict
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return ErrBookingUserMissing
			}
			return errs.Wrap(err, "failed to create booking")
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return bookingID, nil
}

func resolveAddOns(ctx context.Context, tx shared.Tx, venueID uuid.UUID, ids []uuid.UUID) ([]booking.AddOnSpec, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	offered, err := tx.Reads().VenueAddOns(ctx, venueID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load venue add-ons")
	}

	byID := make(map[uuid.UUID]shared.AddOnSnapshot, len(offered))
	for _, a := range offered {
		byID[a.ID] = a
	}

	specs := make([]booking.AddOnSpec, 0, len(ids))
	for _, id := range ids {
		a, ok := byID[id]
		if !ok {
			return nil, booking.ErrAddOnNotOffered
		}
		specs = append(specs, booking.AddOnSpec{ID: a.ID, Price: a.Price})
	}
	return specs, nil
}

// ChangeStatus applies a lifecycle transition. Admins may apply any valid
// transition; a member may only cancel their own booking.
func (c *bookingCommandsImpl) ChangeStatus(ctx context.Context, input ChangeBookingStatusInput) error {
	if !input.Next.IsValid() {
		return booking.ErrInvalidStatus
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, input.BookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Wrap(err, "failed to load booking")
		}

		if input.ActorRole != user.RoleAdmin {
			if snap.UserID != input.ActorID || input.Next != booking.StatusCancelled {
				return ErrStatusChangeNotAllowed
			}
		}

		if !snap.Status.CanTransitionTo(input.Next) {
			return booking.ErrInvalidTransition
		}

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), input.BookingID, input.Next); err != nil {
			return errs.Wrap(err, "failed to update booking status")
		}
		return nil
	})
}
