package repository

import (
	"context"

	"raga-booking/internal/domain/venue"
	"raga-booking/internal/infra"
	"raga-booking/internal/infra/db"
	"raga-booking/internal/pkg/pgconv"
	"raga-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type venueRepository struct{}

func NewVenueRepository() shared.VenueRepository {
	return &venueRepository{}
}

const createVenueQuery = `
INSERT INTO venues (id, name, slug, city, address, category_id, price_per_hour, capacity, hero_image, description, highlights)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id
`

func (r *venueRepository) Create(ctx context.Context, tx db.DBTX, v *venue.Venue) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createVenueQuery,
		pgconv.UUIDToPgtype(v.ID()),
		v.Name(),
		v.Slug(),
		v.City(),
		v.Address(),
		pgconv.UUIDToPgtype(v.CategoryID()),
		pgconv.DecimalToNumeric(v.PricePerHour()),
		int32(v.Capacity()),
		v.HeroImage(),
		v.Description(),
		v.Highlights(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to insert venue", err)
	}
	return id, nil
}

const updateVenueQuery = `
UPDATE venues
SET name = $2, slug = $3, city = $4, address = $5, category_id = $6,
    price_per_hour = $7, capacity = $8, hero_image = $9, description = $10,
    highlights = $11, updated_at = now()
WHERE id = $1
`

func (r *venueRepository) Update(ctx context.Context, tx db.DBTX, v *venue.Venue) error {
	tag, err := tx.Exec(ctx, updateVenueQuery,
		pgconv.UUIDToPgtype(v.ID()),
		v.Name(),
		v.Slug(),
		v.City(),
		v.Address(),
		pgconv.UUIDToPgtype(v.CategoryID()),
		pgconv.DecimalToNumeric(v.PricePerHour()),
		int32(v.Capacity()),
		v.HeroImage(),
		v.Description(),
		v.Highlights(),
	)
	if err != nil {
		return wrapWriteErr("failed to update venue", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return nil
}

const lockVenueQuery = `SELECT id FROM venues WHERE id = $1 FOR UPDATE`

func (r *venueRepository) Lock(ctx context.Context, tx db.DBTX, venueID uuid.UUID) error {
	var id uuid.UUID
	err := tx.QueryRow(ctx, lockVenueQuery, pgconv.UUIDToPgtype(venueID)).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock venue", err)
	}
	return nil
}

const createAddOnQuery = `
INSERT INTO add_ons (id, venue_id, name, description, price)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

func (r *venueRepository) CreateAddOn(ctx context.Context, tx db.DBTX, a *venue.AddOn) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createAddOnQuery,
		pgconv.UUIDToPgtype(a.ID()),
		pgconv.UUIDToPgtype(a.VenueID()),
		a.Name(),
		a.Description(),
		pgconv.DecimalToNumeric(a.Price()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to insert add-on", err)
	}
	return id, nil
}
