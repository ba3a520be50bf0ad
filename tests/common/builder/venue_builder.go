//go:build unit || e2e

package builder

import (
	domvenue "raga-booking/internal/domain/venue"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VenueBuilder struct {
	ID           uuid.UUID
	Name         string
	Slug         string
	City         string
	Address      string
	CategoryID   uuid.UUID
	PricePerHour decimal.Decimal
	Capacity     int
	HeroImage    string
	Description  string
	Highlights   string
}

func NewVenueBuilder() *VenueBuilder {
	return &VenueBuilder{
		ID:           uuid.New(),
		Name:         "Arena Sinar Utama",
		Slug:         "arena-sinar-utama",
		City:         "Jakarta",
		Address:      "Jl. Sudirman No. 12",
		CategoryID:   uuid.New(),
		PricePerHour: decimal.NewFromInt(450000),
		Capacity:     22,
		HeroImage:    "https://img.example.com/arena.jpg",
		Description:  "Indoor futsal arena with professional flooring.",
		Highlights:   "Free parking, Locker rooms, Floodlights",
	}
}

func (v *VenueBuilder) With(mutate func(*VenueBuilder)) *VenueBuilder {
	mutate(v)
	return v
}

func (v *VenueBuilder) BuildDomain() (*domvenue.Venue, error) {
	return domvenue.NewVenue(
		v.ID,
		v.Name, v.Slug, v.City, v.Address,
		v.CategoryID,
		v.PricePerHour,
		v.Capacity,
		v.HeroImage, v.Description, v.Highlights,
	)
}

func (v *VenueBuilder) WithName(name string) *VenueBuilder {
	v.Name = name
	return v
}

func (v *VenueBuilder) WithCity(city string) *VenueBuilder {
	v.City = city
	return v
}

func (v *VenueBuilder) WithAddress(address string) *VenueBuilder {
	v.Address = address
	return v
}

func (v *VenueBuilder) WithPricePerHour(price decimal.Decimal) *VenueBuilder {
	v.PricePerHour = price
	return v
}

func (v *VenueBuilder) WithCapacity(capacity int) *VenueBuilder {
	v.Capacity = capacity
	return v
}

func (v *VenueBuilder) WithHighlights(highlights string) *VenueBuilder {
	v.Highlights = highlights
	return v
}
