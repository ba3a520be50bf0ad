package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"raga-booking/internal/domain/user"
	"raga-booking/internal/handler/api"
	"raga-booking/internal/handler/middleware"
	"raga-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	venueHandler *api.VenueHandler,
	bookingHandler *api.BookingHandler,
	reviewHandler *api.ReviewHandler,
	wishlistHandler *api.WishlistHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, venueHandler, bookingHandler, reviewHandler, wishlistHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	venueHandler *api.VenueHandler,
	bookingHandler *api.BookingHandler,
	reviewHandler *api.ReviewHandler,
	wishlistHandler *api.WishlistHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		venues := apiGroup.Group("/venues")
		{
			addRoutes(venues, []route{
				{Method: http.MethodGet, Path: "", Handler: venueHandler.List},
				{Method: http.MethodGet, Path: "/featured", Handler: venueHandler.Featured},
				{Method: http.MethodGet, Path: "/:slug", Handler: venueHandler.Get},
				{Method: http.MethodGet, Path: "/:slug/reviews", Handler: reviewHandler.ListByVenue},
			})

			authRequired := venues.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/:slug/bookings", Handler: bookingHandler.Create},
				{Method: http.MethodPost, Path: "/:slug/reviews", Handler: reviewHandler.Submit},
				{Method: http.MethodPost, Path: "/:slug/wishlist", Handler: wishlistHandler.Toggle},
			})

			adminOnly := venues.Group("")
			adminOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
			addRoutes(adminOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: venueHandler.Create},
				{Method: http.MethodPut, Path: "/:slug", Handler: venueHandler.Update},
				{Method: http.MethodPost, Path: "/:slug/add-ons", Handler: venueHandler.CreateAddOn},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: bookingHandler.ChangeStatus},
			})
		}

		wishlist := apiGroup.Group("/wishlist")
		wishlist.Use(authMiddleware.RequireAuth())
		{
			addRoutes(wishlist, []route{
				{Method: http.MethodGet, Path: "", Handler: wishlistHandler.List},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
