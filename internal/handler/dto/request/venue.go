package request

import (
	"raga-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VenueRequest struct {
	Name         string          `json:"name" binding:"required"`
	City         string          `json:"city" binding:"required"`
	Address      string          `json:"address" binding:"required"`
	CategoryID   uuid.UUID       `json:"category_id" binding:"required"`
	PricePerHour decimal.Decimal `json:"price_per_hour" binding:"required"`
	Capacity     int             `json:"capacity" binding:"required"`
	HeroImage    string          `json:"hero_image"`
	Description  string          `json:"description"`
	Highlights   string          `json:"highlights"`
}

func (r VenueRequest) ToInput() commands.VenueInput {
	return commands.VenueInput{
		Name:         r.Name,
		City:         r.City,
		Address:      r.Address,
		CategoryID:   r.CategoryID,
		PricePerHour: r.PricePerHour,
		Capacity:     r.Capacity,
		HeroImage:    r.HeroImage,
		Description:  r.Description,
		Highlights:   r.Highlights,
	}
}

type CreateAddOnRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
}
