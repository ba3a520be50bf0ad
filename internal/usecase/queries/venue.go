package queries

import (
	"context"
	"time"

	"raga-booking/internal/infra"
	"raga-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrVenueNotFound = errs.New("venue not found")

// VenueFilters mirror the catalog search form: name substring, exact city
// (case-insensitive), category slug and maximum hourly price.
type VenueFilters struct {
	Query        *string
	City         *string
	CategorySlug *string
	MaxPrice     *decimal.Decimal
}

type VenueListItem struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	City          string          `json:"city"`
	CategoryName  string          `json:"category_name"`
	CategorySlug  string          `json:"category_slug"`
	PricePerHour  decimal.Decimal `json:"price_per_hour"`
	Capacity      int32           `json:"capacity"`
	HeroImage     string          `json:"hero_image"`
	Amenities     []string        `json:"amenities"`
	BookingsCount int64           `json:"bookings_count"`
	AverageRating *float64        `json:"average_rating,omitempty"`
}

type AddOnView struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

type VenueImageView struct {
	ImageURL string `json:"image_url"`
	AltText  string `json:"alt_text"`
}

type UpcomingBookingView struct {
	Date      time.Time `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Status    string    `json:"status"`
}

type VenueDetail struct {
	VenueListItem
	Address          string                `json:"address"`
	Description      string                `json:"description"`
	Highlights       []string              `json:"highlights"`
	AddOns           []AddOnView           `json:"add_ons"`
	Gallery          []VenueImageView      `json:"gallery"`
	UpcomingBookings []UpcomingBookingView `json:"upcoming_bookings"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

type VenueReadStore interface {
	FindCatalog(ctx context.Context, filters VenueFilters) ([]*VenueListItem, error)
	FindFeatured(ctx context.Context, limit int32) ([]*VenueListItem, error)
	FindBySlug(ctx context.Context, slug string, upcomingFrom time.Time) (*VenueDetail, error)
}

type VenueQueries interface {
	Catalog(ctx context.Context, filters VenueFilters) ([]*VenueListItem, error)
	Featured(ctx context.Context) ([]*VenueListItem, error)
	BySlug(ctx context.Context, slug string, today time.Time) (*VenueDetail, error)
}

const featuredVenueCount = 3

type venueQueriesImpl struct {
	store VenueReadStore
}

func NewVenueQueries(store VenueReadStore) VenueQueries {
	return &venueQueriesImpl{store: store}
}

func (q *venueQueriesImpl) Catalog(ctx context.Context, filters VenueFilters) ([]*VenueListItem, error) {
	return q.store.FindCatalog(ctx, filters)
}

func (q *venueQueriesImpl) Featured(ctx context.Context) ([]*VenueListItem, error) {
	return q.store.FindFeatured(ctx, featuredVenueCount)
}

func (q *venueQueriesImpl) BySlug(ctx context.Context, slug string, today time.Time) (*VenueDetail, error) {
	detail, err := q.store.FindBySlug(ctx, slug, today)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return detail, nil
}
