package shared

import (
	"time"

	"raga-booking/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots prevent dependency on read-side query types
type VenueSnapshot struct {
	ID           uuid.UUID
	Name         string
	Slug         string
	CategoryID   uuid.UUID
	PricePerHour decimal.Decimal
}

type AddOnSnapshot struct {
	ID    uuid.UUID
	Name  string
	Price decimal.Decimal
}

type BookingSnapshot struct {
	ID        uuid.UUID
	VenueID   uuid.UUID
	UserID    uuid.UUID
	Status    booking.Status
	Date      time.Time
	CreatedAt time.Time
}
