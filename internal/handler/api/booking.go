package api

import (
	"errors"
	"net/http"

	"raga-booking/internal/domain/booking"
	"raga-booking/internal/domain/user"
	reqdto "raga-booking/internal/handler/dto/request"
	resdto "raga-booking/internal/handler/dto/response"
	"raga-booking/internal/handler/httperr"
	"raga-booking/internal/handler/middleware"
	"raga-booking/internal/pkg/clock"
	"raga-booking/internal/usecase/commands"
	"raga-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
	clk  clock.Clock
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, clk clock.Clock) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, clk: clk}
}

// fieldErrors is the validation detail shape: field name to messages.
func fieldErrors(field, msg string) gin.H {
	return gin.H{field: []string{msg}}
}

// @Summary Create booking
// @Description Book a time slot on a venue. Fails with 409 when the slot overlaps an existing booking.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Venue slug"
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /venues/{slug}/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	input, err := req.ToInput(c.Param("slug"), userID)
	if err != nil {
		switch {
		case errors.Is(err, reqdto.ErrInvalidDate):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", fieldErrors("date", err.Error()))
		case errors.Is(err, reqdto.ErrInvalidStart):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", fieldErrors("start_time", err.Error()))
		case errors.Is(err, reqdto.ErrInvalidEnd):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", fieldErrors("end_time", err.Error()))
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		}
		return
	}

	bookingID, err := h.cmds.Create(c.Request.Context(), input)
	if err != nil {
		h.abortCreateError(c, err)
		return
	}

	view, err := h.q.ByID(c.Request.Context(), bookingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

func (h *BookingHandler) abortCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrVenueNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Venue not found", nil)
	case errors.Is(err, booking.ErrEndNotAfterStart):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", fieldErrors("end_time", err.Error()))
	case errors.Is(err, booking.ErrDateInPast):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", fieldErrors("date", err.Error()))
	case errors.Is(err, booking.ErrAddOnNotOffered):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", fieldErrors("add_on_ids", err.Error()))
	case errors.Is(err, booking.ErrSlotConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot unavailable", fieldErrors("non_field_errors", err.Error()))
	case errors.Is(err, commands.ErrBookingUserMissing):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create booking failed", nil)
	}
}

// @Summary List own bookings
// @Description The caller's bookings, split into upcoming and past by date
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserBookingsResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	view, err := h.q.ByUser(c.Request.Context(), userID, h.clk.Today())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserBookings(view))
}

// @Summary Get booking
// @Description Get a booking by ID (owner or admin)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	view, err := h.q.ByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}

	role, _ := middleware.GetUserRole(c)
	if view.UserID != userID && role != user.RoleAdmin {
		httperr.AbortWithError(c, http.StatusForbidden, nil, "Access denied", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Change booking status
// @Description Apply a status transition. Admins may apply any valid transition; members may only cancel their own booking.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ChangeBookingStatusRequest true "Target status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.ChangeBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	role, _ := middleware.GetUserRole(c)
	err = h.cmds.ChangeStatus(c.Request.Context(), commands.ChangeBookingStatusInput{
		BookingID: id,
		Next:      booking.Status(req.Status),
		ActorID:   userID,
		ActorRole: role,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrStatusChangeNotAllowed):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		case errors.Is(err, booking.ErrInvalidStatus), errors.Is(err, booking.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Status change failed", nil)
		}
		return
	}

	view, err := h.q.ByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
