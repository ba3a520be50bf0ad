package readstore

import (
	"context"
	"encoding/json"
	"time"

	"raga-booking/internal/infra"
	"raga-booking/internal/infra/db"
	"raga-booking/internal/pkg/pgconv"
	"raga-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

// SlotRow is the minimal shape the booking admission check needs.
type SlotRow struct {
	Date         time.Time
	StartMinutes int
	EndMinutes   int
	Status       string
}

const bookingViewSelect = `
SELECT b.id, b.user_id, b.venue_id, v.name AS venue_name, v.slug AS venue_slug, v.city AS venue_city,
       b.date, b.start_time, b.end_time, b.status, b.notes, b.total_price,
       (SELECT COALESCE(json_agg(json_build_object('id', a.id, 'name', a.name, 'price', a.price) ORDER BY a.name), '[]')
          FROM booking_add_ons ba
          JOIN add_ons a ON a.id = ba.add_on_id
         WHERE ba.booking_id = b.id) AS add_ons,
       b.created_at
FROM bookings b
JOIN venues v ON v.id = b.venue_id
`

const findBookingByIDQuery = bookingViewSelect + `
WHERE b.id = $1
`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, err := scanBookingView(r.db.QueryRow(ctx, findBookingByIDQuery, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query booking by id", err)
	}
	return view, nil
}

const findBookingsFromDateQuery = bookingViewSelect + `
WHERE b.user_id = $1 AND b.date >= $2
ORDER BY b.date, b.start_time
`

func (r *BookingReadStore) FindByUserFromDate(ctx context.Context, userID uuid.UUID, from time.Time) ([]*queries.BookingView, error) {
	return r.findByUser(ctx, findBookingsFromDateQuery, userID, from)
}

const findBookingsBeforeDateQuery = bookingViewSelect + `
WHERE b.user_id = $1 AND b.date < $2
ORDER BY b.date DESC, b.start_time DESC
`

func (r *BookingReadStore) FindByUserBeforeDate(ctx context.Context, userID uuid.UUID, before time.Time) ([]*queries.BookingView, error) {
	return r.findByUser(ctx, findBookingsBeforeDateQuery, userID, before)
}

func (r *BookingReadStore) findByUser(ctx context.Context, query string, userID uuid.UUID, date time.Time) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, query, pgconv.UUIDToPgtype(userID), pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings by user", err)
	}
	defer rows.Close()

	var result []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}

const findSlotsByVenueDateQuery = `
SELECT date, start_time, end_time, status
FROM bookings
WHERE venue_id = $1 AND date = $2 AND status NOT IN ('cancelled', 'rejected')
`

// FindSlotsByVenueDate returns the slots that block new bookings on the given
// venue and date. Callers run it after locking the venue row so the result
// reflects all committed admissions.
func (r *BookingReadStore) FindSlotsByVenueDate(ctx context.Context, venueID uuid.UUID, date time.Time) ([]SlotRow, error) {
	rows, err := r.db.Query(ctx, findSlotsByVenueDateQuery,
		pgconv.UUIDToPgtype(venueID),
		pgconv.DateToPgtype(date),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booked slots", err)
	}
	defer rows.Close()

	var result []SlotRow
	for rows.Next() {
		var (
			slot  SlotRow
			d     pgtype.Date
			start pgtype.Time
			end   pgtype.Time
		)
		if err := rows.Scan(&d, &start, &end, &slot.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		slot.Date = pgconv.DateFromPgtype(d)
		slot.StartMinutes = pgconv.MinutesFromPgtypeTime(start)
		slot.EndMinutes = pgconv.MinutesFromPgtypeTime(end)
		result = append(result, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read slot rows", err)
	}
	return result, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	view := &queries.BookingView{}
	var (
		date       pgtype.Date
		start      pgtype.Time
		end        pgtype.Time
		totalPrice pgtype.Numeric
		addOnsJSON []byte
		created    pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.UserID, &view.VenueID,
		&view.VenueName, &view.VenueSlug, &view.VenueCity,
		&date, &start, &end, &view.Status, &view.Notes, &totalPrice,
		&addOnsJSON, &created,
	)
	if err != nil {
		return nil, err
	}
	view.Date = pgconv.DateFromPgtype(date)
	view.StartTime = formatMinutes(pgconv.MinutesFromPgtypeTime(start))
	view.EndTime = formatMinutes(pgconv.MinutesFromPgtypeTime(end))
	if view.TotalPrice, err = pgconv.DecimalFromNumeric(totalPrice); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(addOnsJSON, &view.AddOns); err != nil {
		return nil, err
	}
	view.CreatedAt = pgconv.TimeFromPgtype(created)
	return view, nil
}
