//go:build unit || e2e

package builder

import (
	"time"

	domreview "raga-booking/internal/domain/review"
	"raga-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	UserID    uuid.UUID
	UserEmail string
	VenueID   uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now()
	return &ReviewBuilder{
		UserID:    uuid.New(),
		UserEmail: "reviewer@example.com",
		VenueID:   uuid.New(),
		Rating:    5,
		Comment:   "Great pitch, friendly staff!",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(uuid.Nil, r.UserID, r.VenueID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildListItem() *queries.ReviewListItem {
	id := uuid.New()
	return &queries.ReviewListItem{
		ID:        id,
		UserID:    r.UserID,
		UserEmail: r.UserEmail,
		Rating:    int32(r.Rating),
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r *ReviewBuilder) WithUserID(userID uuid.UUID) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithVenueID(venueID uuid.UUID) *ReviewBuilder {
	r.VenueID = venueID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}
