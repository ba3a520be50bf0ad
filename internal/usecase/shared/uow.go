package shared

import (
	"context"
	"time"

	"raga-booking/internal/domain/booking"
	"raga-booking/internal/domain/review"
	"raga-booking/internal/domain/venue"
	"raga-booking/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Venues() VenueRepository
	Bookings() BookingRepository
	Reviews() ReviewRepository
	Wishlist() WishlistRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the write side's own lookups. When obtained from a Tx they
// run on the transaction's connection, so reads taken after a lock observe the
// serialized state.
type CommandReads interface {
	VenueBySlug(ctx context.Context, slug string) (*VenueSnapshot, error)
	VenueAddOns(ctx context.Context, venueID uuid.UUID) ([]AddOnSnapshot, error)
	VenueSlugsLike(ctx context.Context, prefix string) ([]string, error)
	SlotsByVenueDate(ctx context.Context, venueID uuid.UUID, date time.Time) ([]booking.ExistingSlot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
}

type VenueRepository interface {
	Create(ctx context.Context, tx db.DBTX, v *venue.Venue) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, v *venue.Venue) error
	// Lock acquires a row lock on the venue, serializing concurrent booking
	// admissions for it within the surrounding transaction.
	Lock(ctx context.Context, tx db.DBTX, venueID uuid.UUID) error
	CreateAddOn(ctx context.Context, tx db.DBTX, a *venue.AddOn) (uuid.UUID, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error
}

type ReviewRepository interface {
	// Upsert inserts the review or, when one exists for the (user, venue)
	// pair, overwrites its rating and comment. Returns the surviving row's ID.
	Upsert(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
}

type WishlistRepository interface {
	// Add reports false when the item was already present.
	Add(ctx context.Context, tx db.DBTX, userID, venueID uuid.UUID) (bool, error)
	// Remove reports false when there was nothing to remove.
	Remove(ctx context.Context, tx db.DBTX, userID, venueID uuid.UUID) (bool, error)
}
