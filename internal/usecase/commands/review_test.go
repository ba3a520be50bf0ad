//go:build unit

package commands_test

import (
	"context"
	"testing"

	domreview "raga-booking/internal/domain/review"
	"raga-booking/internal/pkg/clock"
	"raga-booking/internal/usecase/commands"
	"raga-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewCommandsSubmit(t *testing.T) {
	ctx := context.Background()
	slug := "arena-sinar-utama"
	userID := uuid.New()

	newCommands := func(u *fakeUoW) commands.ReviewCommands {
		return commands.NewReviewCommands(u, clock.NewMockClock(builder.FixedNow))
	}

	t.Run("stores the review against the venue", func(t *testing.T) {
		u := newFakeUoW()
		venueID := seedVenue(u, slug)

		id, err := newCommands(u).Submit(ctx, commands.SubmitReviewInput{
			VenueSlug: slug,
			UserID:    userID,
			Rating:    5,
			Comment:   "Great pitch, friendly staff!",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		require.Len(t, u.tx.reviews.upserted, 1)
		saved := u.tx.reviews.upserted[0]
		assert.Equal(t, venueID, saved.VenueID())
		assert.Equal(t, userID, saved.UserID())
		assert.Equal(t, 5, saved.Rating().Value())
		assert.Equal(t, builder.FixedNow, saved.CreatedAt())
	})

	t.Run("invalid rating never reaches storage", func(t *testing.T) {
		u := newFakeUoW()
		seedVenue(u, slug)

		_, err := newCommands(u).Submit(ctx, commands.SubmitReviewInput{
			VenueSlug: slug,
			UserID:    userID,
			Rating:    6,
			Comment:   "Too good",
		})
		require.ErrorIs(t, err, domreview.ErrInvalidRating)
		assert.Empty(t, u.tx.reviews.upserted)
	})

	t.Run("unknown venue", func(t *testing.T) {
		u := newFakeUoW()
		_, err := newCommands(u).Submit(ctx, commands.SubmitReviewInput{
			VenueSlug: "no-such-venue",
			UserID:    userID,
			Rating:    4,
			Comment:   "Fine",
		})
		require.ErrorIs(t, err, commands.ErrVenueNotFound)
	})
}
