package commands

import (
	"context"

	"raga-booking/internal/infra"
	"raga-booking/internal/pkg/errs"
	"raga-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type WishlistAction string

const (
	WishlistAdded   WishlistAction = "added"
	WishlistRemoved WishlistAction = "removed"
)

type WishlistCommands interface {
	// Toggle adds the venue to the user's wishlist, or removes it when
	// already present, and reports which of the two happened.
	Toggle(ctx context.Context, userID uuid.UUID, venueSlug string) (WishlistAction, error)
}

type wishlistCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewWishlistCommands(uow shared.UnitOfWork) WishlistCommands {
	return &wishlistCommandsImpl{uow: uow}
}

func (c *wishlistCommandsImpl) Toggle(ctx context.Context, userID uuid.UUID, venueSlug string) (WishlistAction, error) {
	var action WishlistAction
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().VenueBySlug(ctx, venueSlug)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVenueNotFound
			}
			return errs.Wrap(err, "failed to load venue")
		}

		added, err := tx.Wishlist().Add(ctx, tx.DB(), userID, snap.ID)
		if err != nil {
			return errs.Wrap(err, "failed to add wishlist item")
		}
		if added {
			action = WishlistAdded
			return nil
		}

		if _, err := tx.Wishlist().Remove(ctx, tx.DB(), userID, snap.ID); err != nil {
			return errs.Wrap(err, "failed to remove wishlist item")
		}
		action = WishlistRemoved
		return nil
	})
	if err != nil {
		return "", err
	}
	return action, nil
}
