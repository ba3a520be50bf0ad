package repository

import (
	"context"

	"raga-booking/internal/infra/db"
	"raga-booking/internal/pkg/pgconv"
	"raga-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type wishlistRepository struct{}

func NewWishlistRepository() shared.WishlistRepository {
	return &wishlistRepository{}
}

const addWishlistItemQuery = `
INSERT INTO wishlist_items (user_id, venue_id)
VALUES ($1, $2)
ON CONFLICT (user_id, venue_id) DO NOTHING
`

func (r *wishlistRepository) Add(ctx context.Context, tx db.DBTX, userID, venueID uuid.UUID) (bool, error) {
	tag, err := tx.Exec(ctx, addWishlistItemQuery,
		pgconv.UUIDToPgtype(userID),
		pgconv.UUIDToPgtype(venueID),
	)
	if err != nil {
		return false, wrapWriteErr("failed to insert wishlist item", err)
	}
	return tag.RowsAffected() > 0, nil
}

const removeWishlistItemQuery = `
DELETE FROM wishlist_items WHERE user_id = $1 AND venue_id = $2
`

func (r *wishlistRepository) Remove(ctx context.Context, tx db.DBTX, userID, venueID uuid.UUID) (bool, error) {
	tag, err := tx.Exec(ctx, removeWishlistItemQuery,
		pgconv.UUIDToPgtype(userID),
		pgconv.UUIDToPgtype(venueID),
	)
	if err != nil {
		return false, wrapWriteErr("failed to delete wishlist item", err)
	}
	return tag.RowsAffected() > 0, nil
}
