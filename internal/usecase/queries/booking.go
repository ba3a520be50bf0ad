package queries

import (
	"context"
	"time"

	"raga-booking/internal/infra"
	"raga-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingAddOnView struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type BookingView struct {
	ID         uuid.UUID          `json:"id"`
	UserID     uuid.UUID          `json:"user_id"`
	VenueID    uuid.UUID          `json:"venue_id"`
	VenueName  string             `json:"venue_name"`
	VenueSlug  string             `json:"venue_slug"`
	VenueCity  string             `json:"venue_city"`
	Date       time.Time          `json:"date"`
	StartTime  string             `json:"start_time"`
	EndTime    string             `json:"end_time"`
	Status     string             `json:"status"`
	Notes      string             `json:"notes"`
	TotalPrice decimal.Decimal    `json:"total_price"`
	AddOns     []BookingAddOnView `json:"add_ons"`
	CreatedAt  time.Time          `json:"created_at"`
}

// UserBookingsView splits a user's history the way the profile page shows it:
// bookings dated today or later first, everything earlier below.
type UserBookingsView struct {
	Upcoming []*BookingView `json:"upcoming"`
	Past     []*BookingView `json:"past"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserFromDate(ctx context.Context, userID uuid.UUID, from time.Time) ([]*BookingView, error)
	FindByUserBeforeDate(ctx context.Context, userID uuid.UUID, before time.Time) ([]*BookingView, error)
}

type BookingQueries interface {
	ByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ByUser(ctx context.Context, userID uuid.UUID, today time.Time) (*UserBookingsView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) ByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ByUser(ctx context.Context, userID uuid.UUID, today time.Time) (*UserBookingsView, error) {
	upcoming, err := q.store.FindByUserFromDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	past, err := q.store.FindByUserBeforeDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	return &UserBookingsView{Upcoming: upcoming, Past: past}, nil
}
