package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ReviewListItem struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserEmail string    `json:"user_email"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReviewReadStore interface {
	FindByVenue(ctx context.Context, venueID uuid.UUID) ([]*ReviewListItem, error)
}

type ReviewQueries interface {
	ByVenue(ctx context.Context, venueID uuid.UUID) ([]*ReviewListItem, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) ByVenue(ctx context.Context, venueID uuid.UUID) ([]*ReviewListItem, error) {
	return q.store.FindByVenue(ctx, venueID)
}
