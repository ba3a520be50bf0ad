package readstore

import (
	"context"
	"time"

	"raga-booking/internal/infra"
	"raga-booking/internal/infra/db"
	"raga-booking/internal/pkg/pgconv"
	"raga-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type VenueReadStore struct {
	db db.DBTX
}

func NewVenueReadStore(dbtx db.DBTX) *VenueReadStore {
	return &VenueReadStore{db: dbtx}
}

// VenueSnapshotRow carries the fields the write side needs to admit bookings
// and regenerate slugs.
type VenueSnapshotRow struct {
	ID           uuid.UUID
	Name         string
	Slug         string
	CategoryID   uuid.UUID
	PricePerHour decimal.Decimal
}

const venueListSelect = `
SELECT v.id, v.name, v.slug, v.city, c.name AS category_name, c.slug AS category_slug,
       v.price_per_hour, v.capacity, v.hero_image,
       (SELECT COALESCE(array_agg(a.name ORDER BY a.name), '{}')
          FROM venue_amenities va
          JOIN amenities a ON a.id = va.amenity_id
         WHERE va.venue_id = v.id) AS amenities,
       (SELECT count(*) FROM bookings b WHERE b.venue_id = v.id) AS bookings_count,
       (SELECT avg(r.rating)::float8 FROM reviews r WHERE r.venue_id = v.id) AS average_rating
FROM venues v
JOIN venue_categories c ON c.id = v.category_id
`

const findCatalogQuery = venueListSelect + `
WHERE ($1::text IS NULL OR v.name ILIKE '%' || $1 || '%')
  AND ($2::text IS NULL OR lower(v.city) = lower($2))
  AND ($3::text IS NULL OR c.slug = $3)
  AND ($4::numeric IS NULL OR v.price_per_hour <= $4)
ORDER BY v.name
`

func (r *VenueReadStore) FindCatalog(ctx context.Context, filters queries.VenueFilters) ([]*queries.VenueListItem, error) {
	maxPrice := pgtype.Numeric{Valid: false}
	if filters.MaxPrice != nil {
		maxPrice = pgconv.DecimalToNumeric(*filters.MaxPrice)
	}

	rows, err := r.db.Query(ctx, findCatalogQuery,
		pgconv.StringPtrToPgtype(filters.Query),
		pgconv.StringPtrToPgtype(filters.City),
		pgconv.StringPtrToPgtype(filters.CategorySlug),
		maxPrice,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query venue catalog", err)
	}
	defer rows.Close()

	return scanVenueListItems(rows)
}

const findFeaturedQuery = venueListSelect + `
ORDER BY bookings_count DESC, v.name
LIMIT $1
`

func (r *VenueReadStore) FindFeatured(ctx context.Context, limit int32) ([]*queries.VenueListItem, error) {
	rows, err := r.db.Query(ctx, findFeaturedQuery, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query featured venues", err)
	}
	defer rows.Close()

	return scanVenueListItems(rows)
}

const findVenueBySlugQuery = venueListSelect + `
WHERE v.slug = $1
`

const findVenueDetailExtrasQuery = `
SELECT v.address, v.description, v.highlights, v.created_at, v.updated_at
FROM venues v
WHERE v.id = $1
`

func (r *VenueReadStore) FindBySlug(ctx context.Context, slug string, upcomingFrom time.Time) (*queries.VenueDetail, error) {
	row := r.db.QueryRow(ctx, findVenueBySlugQuery, slug)

	detail := &queries.VenueDetail{}
	var (
		price   pgtype.Numeric
		avg     pgtype.Float8
		created pgtype.Timestamptz
		updated pgtype.Timestamptz
	)
	err := row.Scan(
		&detail.ID, &detail.Name, &detail.Slug, &detail.City,
		&detail.CategoryName, &detail.CategorySlug,
		&price, &detail.Capacity, &detail.HeroImage,
		&detail.Amenities, &detail.BookingsCount, &avg,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query venue by slug", err)
	}
	if detail.PricePerHour, err = pgconv.DecimalFromNumeric(price); err != nil {
		return nil, infra.WrapRepoErr("invalid venue price", err)
	}
	if avg.Valid {
		detail.AverageRating = &avg.Float64
	}

	var highlights string
	err = r.db.QueryRow(ctx, findVenueDetailExtrasQuery, pgconv.UUIDToPgtype(detail.ID)).
		Scan(&detail.Address, &detail.Description, &highlights, &created, &updated)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query venue details", err)
	}
	detail.Highlights = splitHighlights(highlights)
	detail.CreatedAt = pgconv.TimeFromPgtype(created)
	detail.UpdatedAt = pgconv.TimeFromPgtype(updated)

	if detail.AddOns, err = r.FindAddOns(ctx, detail.ID); err != nil {
		return nil, err
	}
	if detail.Gallery, err = r.findGallery(ctx, detail.ID); err != nil {
		return nil, err
	}
	if detail.UpcomingBookings, err = r.findUpcomingBookings(ctx, detail.ID, upcomingFrom); err != nil {
		return nil, err
	}

	return detail, nil
}

const findAddOnsQuery = `
SELECT id, name, description, price
FROM add_ons
WHERE venue_id = $1
ORDER BY name
`

func (r *VenueReadStore) FindAddOns(ctx context.Context, venueID uuid.UUID) ([]queries.AddOnView, error) {
	rows, err := r.db.Query(ctx, findAddOnsQuery, pgconv.UUIDToPgtype(venueID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query venue add-ons", err)
	}
	defer rows.Close()

	var result []queries.AddOnView
	for rows.Next() {
		var (
			view  queries.AddOnView
			price pgtype.Numeric
		)
		if err := rows.Scan(&view.ID, &view.Name, &view.Description, &price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan add-on row", err)
		}
		if view.Price, err = pgconv.DecimalFromNumeric(price); err != nil {
			return nil, infra.WrapRepoErr("invalid add-on price", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read add-on rows", err)
	}
	return result, nil
}

const findGalleryQuery = `
SELECT image_url, alt_text
FROM venue_images
WHERE venue_id = $1
ORDER BY id
`

func (r *VenueReadStore) findGallery(ctx context.Context, venueID uuid.UUID) ([]queries.VenueImageView, error) {
	rows, err := r.db.Query(ctx, findGalleryQuery, pgconv.UUIDToPgtype(venueID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query venue gallery", err)
	}
	defer rows.Close()

	var result []queries.VenueImageView
	for rows.Next() {
		var view queries.VenueImageView
		if err := rows.Scan(&view.ImageURL, &view.AltText); err != nil {
			return nil, infra.WrapRepoErr("failed to scan gallery row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read gallery rows", err)
	}
	return result, nil
}

const findUpcomingBookingsQuery = `
SELECT date, start_time, end_time, status
FROM bookings
WHERE venue_id = $1
  AND date >= $2
  AND status NOT IN ('cancelled', 'rejected')
ORDER BY date, start_time
LIMIT 5
`

func (r *VenueReadStore) findUpcomingBookings(ctx context.Context, venueID uuid.UUID, from time.Time) ([]queries.UpcomingBookingView, error) {
	rows, err := r.db.Query(ctx, findUpcomingBookingsQuery,
		pgconv.UUIDToPgtype(venueID),
		pgconv.DateToPgtype(from),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query upcoming bookings", err)
	}
	defer rows.Close()

	var result []queries.UpcomingBookingView
	for rows.Next() {
		var (
			view  queries.UpcomingBookingView
			date  pgtype.Date
			start pgtype.Time
			end   pgtype.Time
		)
		if err := rows.Scan(&date, &start, &end, &view.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan upcoming booking row", err)
		}
		view.Date = pgconv.DateFromPgtype(date)
		view.StartTime = formatMinutes(pgconv.MinutesFromPgtypeTime(start))
		view.EndTime = formatMinutes(pgconv.MinutesFromPgtypeTime(end))
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read upcoming booking rows", err)
	}
	return result, nil
}

const findVenueSnapshotBySlugQuery = `
SELECT id, name, slug, category_id, price_per_hour
FROM venues
WHERE slug = $1
`

func (r *VenueReadStore) FindSnapshotBySlug(ctx context.Context, slug string) (*VenueSnapshotRow, error) {
	var (
		snap  VenueSnapshotRow
		price pgtype.Numeric
	)
	err := r.db.QueryRow(ctx, findVenueSnapshotBySlugQuery, slug).
		Scan(&snap.ID, &snap.Name, &snap.Slug, &snap.CategoryID, &price)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query venue snapshot", err)
	}
	if snap.PricePerHour, err = pgconv.DecimalFromNumeric(price); err != nil {
		return nil, infra.WrapRepoErr("invalid venue price", err)
	}
	return &snap, nil
}

const findSlugsLikeQuery = `
SELECT slug FROM venues WHERE slug = $1 OR slug LIKE $1 || '-%'
`

func (r *VenueReadStore) FindSlugsLike(ctx context.Context, base string) ([]string, error) {
	rows, err := r.db.Query(ctx, findSlugsLikeQuery, base)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query venue slugs", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slug row", err)
		}
		slugs = append(slugs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read slug rows", err)
	}
	return slugs, nil
}

func scanVenueListItems(rows pgx.Rows) ([]*queries.VenueListItem, error) {
	var result []*queries.VenueListItem
	for rows.Next() {
		var (
			item  queries.VenueListItem
			price pgtype.Numeric
			avg   pgtype.Float8
		)
		err := rows.Scan(
			&item.ID, &item.Name, &item.Slug, &item.City,
			&item.CategoryName, &item.CategorySlug,
			&price, &item.Capacity, &item.HeroImage,
			&item.Amenities, &item.BookingsCount, &avg,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan venue row", err)
		}
		if item.PricePerHour, err = pgconv.DecimalFromNumeric(price); err != nil {
			return nil, infra.WrapRepoErr("invalid venue price", err)
		}
		if avg.Valid {
			item.AverageRating = &avg.Float64
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read venue rows", err)
	}
	return result, nil
}
