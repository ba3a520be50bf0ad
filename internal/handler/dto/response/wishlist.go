package response

import (
	"time"

	"raga-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WishlistItemResponse struct {
	VenueID      uuid.UUID       `json:"venueId"`
	VenueName    string          `json:"venueName"`
	VenueSlug    string          `json:"venueSlug"`
	City         string          `json:"city"`
	PricePerHour decimal.Decimal `json:"pricePerHour"`
	HeroImage    string          `json:"heroImage"`
	AddedAt      time.Time       `json:"addedAt"`
}

func FromWishlistItems(items []*queries.WishlistItemView) []*WishlistItemResponse {
	result := make([]*WishlistItemResponse, len(items))
	for i, item := range items {
		result[i] = &WishlistItemResponse{
			VenueID:      item.VenueID,
			VenueName:    item.VenueName,
			VenueSlug:    item.VenueSlug,
			City:         item.City,
			PricePerHour: item.PricePerHour,
			HeroImage:    item.HeroImage,
			AddedAt:      item.AddedAt,
		}
	}
	return result
}
