package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WishlistItemView struct {
	VenueID      uuid.UUID       `json:"venue_id"`
	VenueName    string          `json:"venue_name"`
	VenueSlug    string          `json:"venue_slug"`
	City         string          `json:"city"`
	PricePerHour decimal.Decimal `json:"price_per_hour"`
	HeroImage    string          `json:"hero_image"`
	AddedAt      time.Time       `json:"added_at"`
}

type WishlistReadStore interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*WishlistItemView, error)
}

type WishlistQueries interface {
	ByUser(ctx context.Context, userID uuid.UUID) ([]*WishlistItemView, error)
}

type wishlistQueriesImpl struct {
	store WishlistReadStore
}

func NewWishlistQueries(store WishlistReadStore) WishlistQueries {
	return &wishlistQueriesImpl{store: store}
}

func (q *wishlistQueriesImpl) ByUser(ctx context.Context, userID uuid.UUID) ([]*WishlistItemView, error) {
	return q.store.FindByUser(ctx, userID)
}
