package commands

import (
	"context"

	"raga-booking/internal/domain/venue"
	"raga-booking/internal/infra"
	"raga-booking/internal/pkg/errs"
	"raga-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrDuplicateAddOn  = errs.New("an add-on with this name already exists for the venue")
	ErrCategoryMissing = errs.New("venue category does not exist")
)

type VenueInput struct {
	Name         string
	City         string
	Address      string
	CategoryID   uuid.UUID
	PricePerHour decimal.Decimal
	Capacity     int
	HeroImage    string
	Description  string
	Highlights   string
}

type AddOnInput struct {
	VenueSlug   string
	Name        string
	Description string
	Price       decimal.Decimal
}

type VenueCommands interface {
	Create(ctx context.Context, input VenueInput) (slug string, err error)
	Update(ctx context.Context, currentSlug string, input VenueInput) (slug string, err error)
	CreateAddOn(ctx context.Context, input AddOnInput) (uuid.UUID, error)
}

type venueCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewVenueCommands(uow shared.UnitOfWork) VenueCommands {
	return &venueCommandsImpl{uow: uow}
}

func (c *venueCommandsImpl) Create(ctx context.Context, input VenueInput) (string, error) {
	var slug string
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := nextSlug(ctx, tx, input.Name, "")
		if err != nil {
			return err
		}

		v, err := venue.NewVenue(
			uuid.Nil,
			input.Name, s, input.City, input.Address,
			input.CategoryID,
			input.PricePerHour,
			input.Capacity,
			input.HeroImage, input.Description, input.Highlights,
		)
		if err != nil {
			return err
		}

		if _, err := tx.Venues().Create(ctx, tx.DB(), v); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrCategoryMissing
			}
			return errs.Wrap(err, "failed to create venue")
		}
		slug = s
		return nil
	})
	if err != nil {
		return "", err
	}
	return slug, nil
}

func (c *venueCommandsImpl) Update(ctx context.Context, currentSlug string, input VenueInput) (string, error) {
	var slug string
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().VenueBySlug(ctx, currentSlug)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVenueNotFound
			}
			return errs.Wrap(err, "failed to load venue")
		}

		s, err := nextSlug(ctx, tx, input.Name, snap.Slug)
		if err != nil {
			return err
		}

		v, err := venue.NewVenue(
			snap.ID,
			input.Name, s, input.City, input.Address,
			input.CategoryID,
			input.PricePerHour,
			input.Capacity,
			input.HeroImage, input.Description, input.Highlights,
		)
		if err != nil {
			return err
		}

		if err := tx.Venues().Update(ctx, tx.DB(), v); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrCategoryMissing
			}
			return errs.Wrap(err, "failed to update venue")
		}
		slug = s
		return nil
	})
	if err != nil {
		return "", err
	}
	return slug, nil
}

func (c *venueCommandsImpl) CreateAddOn(ctx context.Context, input AddOnInput) (uuid.UUID, error) {
	var addOnID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().VenueBySlug(ctx, input.VenueSlug)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVenueNotFound
			}
			return errs.Wrap(err, "failed to load venue")
		}

		a, err := venue.NewAddOn(uuid.Nil, snap.ID, input.Name, input.Description, input.Price)
		if err != nil {
			return err
		}

		id, err := tx.Venues().CreateAddOn(ctx, tx.DB(), a)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateAddOn
			}
			return errs.Wrap(err, "failed to create add-on")
		}
		addOnID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return addOnID, nil
}

// nextSlug derives a unique slug from the venue name inside the current
// transaction. Collisions get a numeric suffix; currentSlug keeps an
// unchanged name from bumping its own counter on update.
func nextSlug(ctx context.Context, tx shared.Tx, name, currentSlug string) (string, error) {
	base := venue.Slugify(name)
	existing, err := tx.Reads().VenueSlugsLike(ctx, base)
	if err != nil {
		return "", errs.Wrap(err, "failed to load existing slugs")
	}
	taken := make(map[string]bool, len(existing))
	for _, s := range existing {
		taken[s] = true
	}
	return venue.GenerateSlug(name, taken, currentSlug), nil
}
