package booking

import (
	"errors"
	"time"

	"raga-booking/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("booking status transition not allowed")
	ErrAddOnNotOffered   = errors.New("add-on is not offered by this venue")
)

type VenueSpec struct {
	ID           uuid.UUID
	PricePerHour decimal.Decimal
}

type AddOnSpec struct {
	ID    uuid.UUID
	Price decimal.Decimal
}

type Services struct {
	Clock clock.Clock
}

type Booking struct {
	id         uuid.UUID
	venueID    uuid.UUID
	userID     uuid.UUID
	slot       Slot
	status     Status
	notes      string
	addOnIDs   []uuid.UUID
	totalPrice decimal.Decimal
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking admits a candidate reservation. The caller supplies the venue's
// existing bookings for the slot's date; selected add-ons must already be
// resolved against the venue's catalog. Admissible bookings start out pending.
func NewBooking(
	services *Services,
	venue VenueSpec,
	userID uuid.UUID,
	slot Slot,
	addOns []AddOnSpec,
	notes string,
	existing []ExistingSlot,
) (*Booking, error) {
	if err := slot.ValidateDateAt(services.Clock.Today()); err != nil {
		return nil, err
	}
	if err := CheckConflict(slot, existing); err != nil {
		return nil, err
	}

	addOnIDs := make([]uuid.UUID, len(addOns))
	addOnPrices := make([]decimal.Decimal, len(addOns))
	for i, a := range addOns {
		addOnIDs[i] = a.ID
		addOnPrices[i] = a.Price
	}

	return &Booking{
		id:         uuid.New(),
		venueID:    venue.ID,
		userID:     userID,
		slot:       slot,
		status:     StatusPending,
		notes:      notes,
		addOnIDs:   addOnIDs,
		totalPrice: TotalPrice(venue.PricePerHour, slot, addOnPrices),
	}, nil
}

func ReconstructBooking(
	id, venueID, userID uuid.UUID,
	slot Slot,
	status Status,
	notes string,
	addOnIDs []uuid.UUID,
	totalPrice decimal.Decimal,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		venueID:    venueID,
		userID:     userID,
		slot:       slot,
		status:     status,
		notes:      notes,
		addOnIDs:   addOnIDs,
		totalPrice: totalPrice,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// TransitionTo enforces the approval lifecycle: pending may be confirmed,
// rejected or cancelled; confirmed may be completed or cancelled; completed,
// rejected and cancelled are terminal.
func (b *Booking) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

func (b *Booking) IsUpcoming(today time.Time) bool {
	return !b.slot.Date().Before(today)
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) VenueID() uuid.UUID           { return b.venueID }
func (b *Booking) UserID() uuid.UUID            { return b.userID }
func (b *Booking) Slot() Slot                   { return b.slot }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) Notes() string                { return b.notes }
func (b *Booking) AddOnIDs() []uuid.UUID        { return b.addOnIDs }
func (b *Booking) TotalPrice() decimal.Decimal  { return b.totalPrice }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
