package api

import (
	"errors"
	"net/http"

	"raga-booking/internal/domain/venue"
	reqdto "raga-booking/internal/handler/dto/request"
	resdto "raga-booking/internal/handler/dto/response"
	"raga-booking/internal/handler/httperr"
	"raga-booking/internal/pkg/clock"
	"raga-booking/internal/usecase/commands"
	"raga-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type VenueHandler struct {
	cmds commands.VenueCommands
	q    queries.VenueQueries
	clk  clock.Clock
}

func NewVenueHandler(cmds commands.VenueCommands, q queries.VenueQueries, clk clock.Clock) *VenueHandler {
	return &VenueHandler{cmds: cmds, q: q, clk: clk}
}

// @Summary List venues
// @Description List venues with optional name, city, category and price filters
// @Tags venues
// @Produce json
// @Param q query string false "Name substring (case-insensitive)"
// @Param city query string false "Exact city (case-insensitive)"
// @Param category query string false "Category slug"
// @Param max_price query string false "Maximum hourly price"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /venues [get]
func (h *VenueHandler) List(c *gin.Context) {
	var filters queries.VenueFilters
	if v := c.Query("q"); v != "" {
		filters.Query = &v
	}
	if v := c.Query("city"); v != "" {
		filters.City = &v
	}
	if v := c.Query("category"); v != "" {
		filters.CategorySlug = &v
	}
	if v := c.Query("max_price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid max_price", nil)
			return
		}
		filters.MaxPrice = &price
	}

	items, err := h.q.Catalog(c.Request.Context(), filters)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list venues", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"venues": resdto.FromVenueList(items)})
}

// @Summary Featured venues
// @Description The three most-booked venues
// @Tags venues
// @Produce json
// @Success 200 {object} map[string]any
// @Router /venues/featured [get]
func (h *VenueHandler) Featured(c *gin.Context) {
	items, err := h.q.Featured(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list featured venues", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"venues": resdto.FromVenueList(items)})
}

// @Summary Get venue
// @Description Get a venue's full detail by slug
// @Tags venues
// @Produce json
// @Param slug path string true "Venue slug"
// @Success 200 {object} resdto.VenueDetailResponse
// @Failure 404 {object} map[string]string
// @Router /venues/{slug} [get]
func (h *VenueHandler) Get(c *gin.Context) {
	detail, err := h.q.BySlug(c.Request.Context(), c.Param("slug"), h.clk.Today())
	if err != nil {
		if errors.Is(err, queries.ErrVenueNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Venue not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load venue", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVenueDetail(detail))
}

// @Summary Create venue
// @Description Create a venue (admin only). The slug is derived from the name.
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.VenueRequest true "Venue"
// @Success 201 {object} resdto.VenueDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /venues [post]
func (h *VenueHandler) Create(c *gin.Context) {
	var req reqdto.VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	slug, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.abortVenueError(c, err, "Create venue failed")
		return
	}

	detail, err := h.q.BySlug(c.Request.Context(), slug, h.clk.Today())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load venue", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromVenueDetail(detail))
}

// @Summary Update venue
// @Description Update a venue (admin only). A renamed venue gets a fresh slug.
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Venue slug"
// @Param request body reqdto.VenueRequest true "Venue"
// @Success 200 {object} resdto.VenueDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /venues/{slug} [put]
func (h *VenueHandler) Update(c *gin.Context) {
	var req reqdto.VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	slug, err := h.cmds.Update(c.Request.Context(), c.Param("slug"), req.ToInput())
	if err != nil {
		h.abortVenueError(c, err, "Update venue failed")
		return
	}

	detail, err := h.q.BySlug(c.Request.Context(), slug, h.clk.Today())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load venue", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVenueDetail(detail))
}

// @Summary Create add-on
// @Description Offer a new add-on on a venue (admin only)
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Venue slug"
// @Param request body reqdto.CreateAddOnRequest true "Add-on"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /venues/{slug}/add-ons [post]
func (h *VenueHandler) CreateAddOn(c *gin.Context) {
	var req reqdto.CreateAddOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.CreateAddOn(c.Request.Context(), commands.AddOnInput{
		VenueSlug:   c.Param("slug"),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrVenueNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Venue not found", nil)
		case errors.Is(err, commands.ErrDuplicateAddOn):
			httperr.AbortWithError(c, http.StatusConflict, err, "Add-on already exists", nil)
		case errors.Is(err, venue.ErrEmptyAddOnName),
			errors.Is(err, venue.ErrAddOnNameTooLong),
			errors.Is(err, venue.ErrNegativePrice):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create add-on failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

func (h *VenueHandler) abortVenueError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, commands.ErrVenueNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Venue not found", nil)
	case errors.Is(err, commands.ErrCategoryMissing):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	case errors.Is(err, venue.ErrEmptyVenueName),
		errors.Is(err, venue.ErrVenueNameTooLong),
		errors.Is(err, venue.ErrEmptyCity),
		errors.Is(err, venue.ErrEmptyAddress),
		errors.Is(err, venue.ErrNegativePrice),
		errors.Is(err, venue.ErrInvalidCapacity):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	}
}
