package readstore

import (
	"context"

	"raga-booking/internal/infra"
	"raga-booking/internal/infra/db"
	"raga-booking/internal/pkg/pgconv"
	"raga-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type WishlistReadStore struct {
	db db.DBTX
}

func NewWishlistReadStore(dbtx db.DBTX) *WishlistReadStore {
	return &WishlistReadStore{db: dbtx}
}

const findWishlistByUserQuery = `
SELECT w.venue_id, v.name, v.slug, v.city, v.price_per_hour, v.hero_image, w.created_at
FROM wishlist_items w
JOIN venues v ON v.id = w.venue_id
WHERE w.user_id = $1
ORDER BY w.created_at DESC
`

func (r *WishlistReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.WishlistItemView, error) {
	rows, err := r.db.Query(ctx, findWishlistByUserQuery, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query wishlist by user", err)
	}
	defer rows.Close()

	var result []*queries.WishlistItemView
	for rows.Next() {
		var (
			item  queries.WishlistItemView
			price pgtype.Numeric
			added pgtype.Timestamptz
		)
		if err := rows.Scan(&item.VenueID, &item.VenueName, &item.VenueSlug, &item.City, &price, &item.HeroImage, &added); err != nil {
			return nil, infra.WrapRepoErr("failed to scan wishlist row", err)
		}
		if item.PricePerHour, err = pgconv.DecimalFromNumeric(price); err != nil {
			return nil, infra.WrapRepoErr("invalid venue price", err)
		}
		item.AddedAt = pgconv.TimeFromPgtype(added)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read wishlist rows", err)
	}
	return result, nil
}
