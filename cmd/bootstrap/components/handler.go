package components

import (
	"raga-booking/internal/handler"
	"raga-booking/internal/handler/api"
	"raga-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewVenueHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewWishlistHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
