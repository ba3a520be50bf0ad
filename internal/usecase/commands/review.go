package commands

import (
	"context"

	"raga-booking/internal/domain/review"
	"raga-booking/internal/infra"
	"raga-booking/internal/pkg/clock"
	"raga-booking/internal/pkg/errs"
	"raga-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrReviewUserMissing = errs.New("review user does not exist")

type SubmitReviewInput struct {
	VenueSlug string
	UserID    uuid.UUID
	Rating    int
	Comment   string
}

type ReviewCommands interface {
	// Submit stores the user's review of a venue, replacing any earlier one.
	Submit(ctx context.Context, input SubmitReviewInput) (uuid.UUID, error)
}

type reviewCommandsImpl struct {
	uow shared.UnitOfWork
	clk clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clk: clk}
}

func (c *reviewCommandsImpl) Submit(ctx context.Context, input SubmitReviewInput) (uuid.UUID, error) {
	var reviewID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().VenueBySlug(ctx, input.VenueSlug)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVenueNotFound
			}
			return errs.Wrap(err, "failed to load venue")
		}

		rev, err := review.NewReview(uuid.Nil, input.UserID, snap.ID, input.Rating, input.Comment, c.clk.Now())
		if err != nil {
			return err
		}

		id, err := tx.Reviews().Upsert(ctx, tx.DB(), rev)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrReviewUserMissing
			}
			return errs.Wrap(err, "failed to save review")
		}
		reviewID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return reviewID, nil
}
