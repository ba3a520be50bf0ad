package response

import (
	"time"

	"raga-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	UserEmail string    `json:"userEmail"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromReviewListItem(r *queries.ReviewListItem) *ReviewResponse {
	return &ReviewResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		UserEmail: r.UserEmail,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func FromReviewList(items []*queries.ReviewListItem) []*ReviewResponse {
	result := make([]*ReviewResponse, len(items))
	for i, item := range items {
		result[i] = FromReviewListItem(item)
	}
	return result
}
