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

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

const findReviewsByVenueQuery = `
SELECT r.id, r.user_id, u.email AS user_email, r.rating, r.comment, r.created_at, r.updated_at
FROM reviews r
JOIN users u ON u.id = r.user_id
WHERE r.venue_id = $1
ORDER BY r.created_at DESC, r.id DESC
`

func (r *ReviewReadStore) FindByVenue(ctx context.Context, venueID uuid.UUID) ([]*queries.ReviewListItem, error) {
	rows, err := r.db.Query(ctx, findReviewsByVenueQuery, pgconv.UUIDToPgtype(venueID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reviews by venue", err)
	}
	defer rows.Close()

	var result []*queries.ReviewListItem
	for rows.Next() {
		var (
			item    queries.ReviewListItem
			created pgtype.Timestamptz
			updated pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.UserID, &item.UserEmail, &item.Rating, &item.Comment, &created, &updated); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		item.CreatedAt = pgconv.TimeFromPgtype(created)
		item.UpdatedAt = pgconv.TimeFromPgtype(updated)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read review rows", err)
	}
	return result, nil
}
