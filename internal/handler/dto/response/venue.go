package response

import (
	"time"

	"raga-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VenueListResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	City          string          `json:"city"`
	CategoryName  string          `json:"categoryName"`
	CategorySlug  string          `json:"categorySlug"`
	PricePerHour  decimal.Decimal `json:"pricePerHour"`
	Capacity      int32           `json:"capacity"`
	HeroImage     string          `json:"heroImage"`
	Amenities     []string        `json:"amenities"`
	BookingsCount int64           `json:"bookingsCount"`
	AverageRating *float64        `json:"averageRating,omitempty"`
}

type AddOnResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

type VenueImageResponse struct {
	ImageURL string `json:"imageUrl"`
	AltText  string `json:"altText"`
}

type UpcomingBookingResponse struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

type VenueDetailResponse struct {
	VenueListResponse
	Address          string                    `json:"address"`
	Description      string                    `json:"description"`
	Highlights       []string                  `json:"highlights"`
	AddOns           []AddOnResponse           `json:"addOns"`
	Gallery          []VenueImageResponse      `json:"gallery"`
	UpcomingBookings []UpcomingBookingResponse `json:"upcomingBookings"`
	CreatedAt        time.Time                 `json:"createdAt"`
	UpdatedAt        time.Time                 `json:"updatedAt"`
}

func FromVenueListItem(v *queries.VenueListItem) *VenueListResponse {
	return &VenueListResponse{
		ID:            v.ID,
		Name:          v.Name,
		Slug:          v.Slug,
		City:          v.City,
		CategoryName:  v.CategoryName,
		CategorySlug:  v.CategorySlug,
		PricePerHour:  v.PricePerHour,
		Capacity:      v.Capacity,
		HeroImage:     v.HeroImage,
		Amenities:     v.Amenities,
		BookingsCount: v.BookingsCount,
		AverageRating: v.AverageRating,
	}
}

func FromVenueList(items []*queries.VenueListItem) []*VenueListResponse {
	result := make([]*VenueListResponse, len(items))
	for i, item := range items {
		result[i] = FromVenueListItem(item)
	}
	return result
}

func FromVenueDetail(v *queries.VenueDetail) *VenueDetailResponse {
	resp := &VenueDetailResponse{
		VenueListResponse: *FromVenueListItem(&v.VenueListItem),
		Address:           v.Address,
		Description:       v.Description,
		Highlights:        v.Highlights,
		AddOns:            make([]AddOnResponse, len(v.AddOns)),
		Gallery:           make([]VenueImageResponse, len(v.Gallery)),
		UpcomingBookings:  make([]UpcomingBookingResponse, len(v.UpcomingBookings)),
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
	for i, a := range v.AddOns {
		resp.AddOns[i] = AddOnResponse{ID: a.ID, Name: a.Name, Description: a.Description, Price: a.Price}
	}
	for i, img := range v.Gallery {
		resp.Gallery[i] = VenueImageResponse{ImageURL: img.ImageURL, AltText: img.AltText}
	}
	for i, b := range v.UpcomingBookings {
		resp.UpcomingBookings[i] = UpcomingBookingResponse{
			Date:      b.Date.Format("2006-01-02"),
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Status:    b.Status,
		}
	}
	return resp
}
