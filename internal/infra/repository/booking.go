package repository

import (
	"context"

	"raga-booking/internal/domain/booking"
	"raga-booking/internal/infra"
	"raga-booking/internal/infra/db"
	"raga-booking/internal/pkg/pgconv"
	"raga-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type bookingRepository struct{}

func NewBookingRepository() shared.BookingRepository {
	return &bookingRepository{}
}

const createBookingQuery = `
INSERT INTO bookings (id, user_id, venue_id, date, start_time, end_time, status, notes, total_price)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id
`

const createBookingAddOnQuery = `
INSERT INTO booking_add_ons (booking_id, add_on_id)
VALUES ($1, $2)
`

func (r *bookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	slot := b.Slot()

	var id uuid.UUID
	err := tx.QueryRow(ctx, createBookingQuery,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.UserID()),
		pgconv.UUIDToPgtype(b.VenueID()),
		pgconv.DateToPgtype(slot.Date()),
		pgconv.MinutesToPgtypeTime(slot.Start().Minutes()),
		pgconv.MinutesToPgtypeTime(slot.End().Minutes()),
		b.Status().String(),
		b.Notes(),
		pgconv.DecimalToNumeric(b.TotalPrice()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to insert booking", err)
	}

	for _, addOnID := range b.AddOnIDs() {
		if _, err := tx.Exec(ctx, createBookingAddOnQuery,
			pgconv.UUIDToPgtype(id),
			pgconv.UUIDToPgtype(addOnID),
		); err != nil {
			return uuid.Nil, wrapWriteErr("failed to attach booking add-on", err)
		}
	}

	return id, nil
}

const updateBookingStatusQuery = `
UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1
`

func (r *bookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := tx.Exec(ctx, updateBookingStatusQuery,
		pgconv.UUIDToPgtype(id),
		status.String(),
	)
	if err != nil {
		return wrapWriteErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
