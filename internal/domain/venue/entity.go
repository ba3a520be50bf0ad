package venue

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyVenueName   = errors.New("venue name cannot be empty")
	ErrVenueNameTooLong = errors.New("venue name is too long (max 150 characters)")
	ErrEmptyCity        = errors.New("city cannot be empty")
	ErrEmptyAddress     = errors.New("address cannot be empty")
	ErrNegativePrice    = errors.New("hourly price cannot be negative")
	ErrInvalidCapacity  = errors.New("capacity must be positive")
	ErrEmptyAddOnName   = errors.New("add-on name cannot be empty")
	ErrAddOnNameTooLong = errors.New("add-on name is too long (max 120 characters)")
)

const (
	MaxVenueNameLength = 150
	MaxAddOnNameLength = 120
)

type Category struct {
	ID   uuid.UUID
	Name string
	Slug string
}

type Venue struct {
	id           uuid.UUID
	name         string
	slug         string
	city         string
	address      string
	categoryID   uuid.UUID
	pricePerHour decimal.Decimal
	capacity     int
	heroImage    string
	description  string
	highlights   string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewVenue(
	id uuid.UUID,
	name, slug, city, address string,
	categoryID uuid.UUID,
	pricePerHour decimal.Decimal,
	capacity int,
	heroImage, description, highlights string,
) (*Venue, error) {
	name = strings.TrimSpace(name)
	if err := validateVenueName(name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(city) == "" {
		return nil, ErrEmptyCity
	}
	if strings.TrimSpace(address) == "" {
		return nil, ErrEmptyAddress
	}
	if pricePerHour.IsNegative() {
		return nil, ErrNegativePrice
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Venue{
		id:           id,
		name:         name,
		slug:         slug,
		city:         strings.TrimSpace(city),
		address:      strings.TrimSpace(address),
		categoryID:   categoryID,
		pricePerHour: pricePerHour,
		capacity:     capacity,
		heroImage:    heroImage,
		description:  description,
		highlights:   highlights,
	}, nil
}

// HighlightItems splits the comma separated highlights field into trimmed,
// non-empty bullet points.
func (v *Venue) HighlightItems() []string {
	if v.highlights == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(v.highlights, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func (v *Venue) ID() uuid.UUID                 { return v.id }
func (v *Venue) Name() string                  { return v.name }
func (v *Venue) Slug() string                  { return v.slug }
func (v *Venue) City() string                  { return v.city }
func (v *Venue) Address() string               { return v.address }
func (v *Venue) CategoryID() uuid.UUID         { return v.categoryID }
func (v *Venue) PricePerHour() decimal.Decimal { return v.pricePerHour }
func (v *Venue) Capacity() int                 { return v.capacity }
func (v *Venue) HeroImage() string             { return v.heroImage }
func (v *Venue) Description() string           { return v.description }
func (v *Venue) Highlights() string            { return v.highlights }
func (v *Venue) CreatedAt() time.Time          { return v.createdAt }
func (v *Venue) UpdatedAt() time.Time          { return v.updatedAt }

func validateVenueName(name string) error {
	if name == "" {
		return ErrEmptyVenueName
	}
	if len(name) > MaxVenueNameLength {
		return ErrVenueNameTooLong
	}
	return nil
}

// AddOn is an optional paid extra offered by a venue. Name uniqueness within
// a venue is enforced by the storage layer on top of this validation.
type AddOn struct {
	id          uuid.UUID
	venueID     uuid.UUID
	name        string
	description string
	price       decimal.Decimal
}

func NewAddOn(id, venueID uuid.UUID, name, description string, price decimal.Decimal) (*AddOn, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyAddOnName
	}
	if len(name) > MaxAddOnNameLength {
		return nil, ErrAddOnNameTooLong
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &AddOn{
		id:          id,
		venueID:     venueID,
		name:        name,
		description: description,
		price:       price,
	}, nil
}

func (a *AddOn) ID() uuid.UUID          { return a.id }
func (a *AddOn) VenueID() uuid.UUID     { return a.venueID }
func (a *AddOn) Name() string           { return a.name }
func (a *AddOn) Description() string    { return a.description }
func (a *AddOn) Price() decimal.Decimal { return a.price }
