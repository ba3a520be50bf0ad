package repository

import (
	"context"

	"raga-booking/internal/domain/review"
	"raga-booking/internal/infra/db"
	"raga-booking/internal/pkg/pgconv"
	"raga-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type reviewRepository struct{}

func NewReviewRepository() shared.ReviewRepository {
	return &reviewRepository{}
}

// The unique constraint on (user_id, venue_id) makes this a true upsert: a
// second submission overwrites rating and comment and keeps the original row.
const upsertReviewQuery = `
INSERT INTO reviews (id, user_id, venue_id, rating, comment, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
ON CONFLICT (user_id, venue_id) DO UPDATE
SET rating = EXCLUDED.rating, comment = EXCLUDED.comment, updated_at = EXCLUDED.updated_at
RETURNING id
`

func (r *reviewRepository) Upsert(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, upsertReviewQuery,
		pgconv.UUIDToPgtype(rev.ID()),
		pgconv.UUIDToPgtype(rev.UserID()),
		pgconv.UUIDToPgtype(rev.VenueID()),
		int32(rev.Rating().Value()),
		rev.Comment().String(),
		pgconv.TimeToPgtype(rev.CreatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to upsert review", err)
	}
	return id, nil
}
