package response

import (
	"time"

	"raga-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingAddOnResponse struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type BookingResponse struct {
	ID         uuid.UUID              `json:"id"`
	VenueID    uuid.UUID              `json:"venueId"`
	VenueName  string                 `json:"venueName"`
	VenueSlug  string                 `json:"venueSlug"`
	VenueCity  string                 `json:"venueCity"`
	Date       string                 `json:"date"`
	StartTime  string                 `json:"startTime"`
	EndTime    string                 `json:"endTime"`
	Status     string                 `json:"status"`
	Notes      string                 `json:"notes"`
	TotalPrice decimal.Decimal        `json:"totalPrice"`
	AddOns     []BookingAddOnResponse `json:"addOns"`
	CreatedAt  time.Time              `json:"createdAt"`
}

type UserBookingsResponse struct {
	Upcoming []*BookingResponse `json:"upcoming"`
	Past     []*BookingResponse `json:"past"`
}

func FromBookingView(b *queries.BookingView) *BookingResponse {
	addOns := make([]BookingAddOnResponse, len(b.AddOns))
	for i, a := range b.AddOns {
		addOns[i] = BookingAddOnResponse{ID: a.ID, Name: a.Name, Price: a.Price}
	}
	return &BookingResponse{
		ID:         b.ID,
		VenueID:    b.VenueID,
		VenueName:  b.VenueName,
		VenueSlug:  b.VenueSlug,
		VenueCity:  b.VenueCity,
		Date:       b.Date.Format("2006-01-02"),
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Status:     b.Status,
		Notes:      b.Notes,
		TotalPrice: b.TotalPrice,
		AddOns:     addOns,
		CreatedAt:  b.CreatedAt,
	}
}

func FromBookingList(items []*queries.BookingView) []*BookingResponse {
	result := make([]*BookingResponse, len(items))
	for i, item := range items {
		result[i] = FromBookingView(item)
	}
	return result
}

func FromUserBookings(v *queries.UserBookingsView) *UserBookingsResponse {
	return &UserBookingsResponse{
		Upcoming: FromBookingList(v.Upcoming),
		Past:     FromBookingList(v.Past),
	}
}
