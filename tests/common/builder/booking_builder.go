//go:build unit || e2e

package builder

import (
	"time"

	dombooking "raga-booking/internal/domain/booking"
	"raga-booking/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FixedNow is the reference instant booking tests run at.
var FixedNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	VenueID      uuid.UUID
	UserID       uuid.UUID
	PricePerHour decimal.Decimal
	Date         time.Time
	StartTime    string
	EndTime      string
	AddOns       []dombooking.AddOnSpec
	Notes        string
	Existing     []dombooking.ExistingSlot
	Now          time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		VenueID:      uuid.New(),
		UserID:       uuid.New(),
		PricePerHour: decimal.NewFromInt(450000),
		Date:         FixedNow.AddDate(0, 0, 1),
		StartTime:    "10:00",
		EndTime:      "12:00",
		Notes:        "Birthday game",
		Now:          FixedNow,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildSlot() (dombooking.Slot, error) {
	start, err := dombooking.ParseTimeOfDay(b.StartTime)
	if err != nil {
		return dombooking.Slot{}, err
	}
	end, err := dombooking.ParseTimeOfDay(b.EndTime)
	if err != nil {
		return dombooking.Slot{}, err
	}
	return dombooking.NewSlot(b.Date, start, end)
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	slot, err := b.BuildSlot()
	if err != nil {
		return nil, err
	}
	services := &dombooking.Services{Clock: clock.NewMockClock(b.Now)}
	return dombooking.NewBooking(
		services,
		dombooking.VenueSpec{ID: b.VenueID, PricePerHour: b.PricePerHour},
		b.UserID,
		slot,
		b.AddOns,
		b.Notes,
		b.Existing,
	)
}

func (b *BookingBuilder) WithDate(date time.Time) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithTimes(start, end string) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithAddOn(price decimal.Decimal) *BookingBuilder {
	b.AddOns = append(b.AddOns, dombooking.AddOnSpec{ID: uuid.New(), Price: price})
	return b
}

func (b *BookingBuilder) WithExisting(start, end string, status dombooking.Status) *BookingBuilder {
	s, err := dombooking.ParseTimeOfDay(start)
	if err != nil {
		panic(err)
	}
	e, err := dombooking.ParseTimeOfDay(end)
	if err != nil {
		panic(err)
	}
	slot, err := dombooking.NewSlot(b.Date, s, e)
	if err != nil {
		panic(err)
	}
	b.Existing = append(b.Existing, dombooking.ExistingSlot{Slot: slot, Status: status})
	return b
}
