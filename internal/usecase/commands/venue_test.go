//go:build unit

package commands_test

import (
	"context"
	"testing"

	domvenue "raga-booking/internal/domain/venue"
	"raga-booking/internal/infra"
	"raga-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func venueInput() commands.VenueInput {
	return commands.VenueInput{
		Name:         "Arena Sinar Utama",
		City:         "Jakarta",
		Address:      "Jl. Sudirman No. 12",
		CategoryID:   uuid.New(),
		PricePerHour: decimal.NewFromInt(450000),
		Capacity:     22,
		HeroImage:    "https://img.example.com/arena.jpg",
		Description:  "Indoor futsal arena.",
		Highlights:   "Free parking, Floodlights",
	}
}

func TestVenueCommandsCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("derives the slug from the name", func(t *testing.T) {
		u := newFakeUoW()

		slug, err := commands.NewVenueCommands(u).Create(ctx, venueInput())
		require.NoError(t, err)
		assert.Equal(t, "arena-sinar-utama", slug)

		require.Len(t, u.tx.venues.created, 1)
		assert.Equal(t, "arena-sinar-utama", u.tx.venues.created[0].Slug())
	})

	t.Run("colliding slug gets a numeric suffix", func(t *testing.T) {
		u := newFakeUoW()
		u.tx.reads.slugs = []string{"arena-sinar-utama"}

		slug, err := commands.NewVenueCommands(u).Create(ctx, venueInput())
		require.NoError(t, err)
		assert.Equal(t, "arena-sinar-utama-2", slug)
	})

	t.Run("suffix counter skips every taken slug", func(t *testing.T) {
		u := newFakeUoW()
		u.tx.reads.slugs = []string{"arena-sinar-utama", "arena-sinar-utama-2"}

		slug, err := commands.NewVenueCommands(u).Create(ctx, venueInput())
		require.NoError(t, err)
		assert.Equal(t, "arena-sinar-utama-3", slug)
	})

	t.Run("invalid input never reaches storage", func(t *testing.T) {
		u := newFakeUoW()
		input := venueInput()
		input.City = "  "

		_, err := commands.NewVenueCommands(u).Create(ctx, input)
		require.ErrorIs(t, err, domvenue.ErrEmptyCity)
		assert.Empty(t, u.tx.venues.created)
	})

	t.Run("missing category", func(t *testing.T) {
		u := newFakeUoW()
		u.tx.venues.createErr = infra.WrapRepoErr("category", nil, infra.KindForeignKeyViolated)

		_, err := commands.NewVenueCommands(u).Create(ctx, venueInput())
		require.ErrorIs(t, err, commands.ErrCategoryMissing)
	})
}

func TestVenueCommandsUpdate(t *testing.T) {
	ctx := context.Background()
	slug := "arena-sinar-utama"

	t.Run("unchanged name keeps the slug", func(t *testing.T) {
		u := newFakeUoW()
		seedVenue(u, slug)
		u.tx.reads.slugs = []string{slug}

		got, err := commands.NewVenueCommands(u).Update(ctx, slug, venueInput())
		require.NoError(t, err)
		assert.Equal(t, slug, got)
		require.Len(t, u.tx.venues.updated, 1)
	})

	t.Run("renaming regenerates the slug", func(t *testing.T) {
		u := newFakeUoW()
		seedVenue(u, slug)
		u.tx.reads.slugs = []string{slug}

		input := venueInput()
		input.Name = "Arena Baru"

		got, err := commands.NewVenueCommands(u).Update(ctx, slug, input)
		require.NoError(t, err)
		assert.Equal(t, "arena-baru", got)
	})

	t.Run("unknown venue", func(t *testing.T) {
		u := newFakeUoW()
		_, err := commands.NewVenueCommands(u).Update(ctx, "no-such-venue", venueInput())
		require.ErrorIs(t, err, commands.ErrVenueNotFound)
	})
}

func TestVenueCommandsCreateAddOn(t *testing.T) {
	ctx := context.Background()
	slug := "arena-sinar-utama"

	input := commands.AddOnInput{
		VenueSlug:   slug,
		Name:        "Referee",
		Description: "Certified referee for the session",
		Price:       decimal.NewFromInt(150000),
	}

	t.Run("creates the add-on for the venue", func(t *testing.T) {
		u := newFakeUoW()
		venueID := seedVenue(u, slug)

		id, err := commands.NewVenueCommands(u).CreateAddOn(ctx, input)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		require.Len(t, u.tx.venues.addOns, 1)
		assert.Equal(t, venueID, u.tx.venues.addOns[0].VenueID())
	})

	t.Run("duplicate name within the venue", func(t *testing.T) {
		u := newFakeUoW()
		seedVenue(u, slug)
		u.tx.venues.addOnErr = infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey)

		_, err := commands.NewVenueCommands(u).CreateAddOn(ctx, input)
		require.ErrorIs(t, err, commands.ErrDuplicateAddOn)
	})

	t.Run("unknown venue", func(t *testing.T) {
		u := newFakeUoW()
		missing := input
		missing.VenueSlug = "no-such-venue"

		_, err := commands.NewVenueCommands(u).CreateAddOn(ctx, missing)
		require.ErrorIs(t, err, commands.ErrVenueNotFound)
	})
}
