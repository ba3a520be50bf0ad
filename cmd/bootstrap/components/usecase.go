package components

import (
	"raga-booking/internal/domain/booking"
	"raga-booking/internal/pkg/clock"
	"raga-booking/internal/usecase/commands"
	"raga-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(clk clock.Clock) *booking.Services {
		return &booking.Services{
			Clock: clk,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewVenueCommands,
		commands.NewBookingCommands,
		commands.NewReviewCommands,
		commands.NewWishlistCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewVenueQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
		queries.NewWishlistQueries,
	),
)
