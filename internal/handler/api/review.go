package api

import (
	"errors"
	"net/http"

	"raga-booking/internal/domain/review"
	reqdto "raga-booking/internal/handler/dto/request"
	resdto "raga-booking/internal/handler/dto/response"
	"raga-booking/internal/handler/httperr"
	"raga-booking/internal/handler/middleware"
	"raga-booking/internal/pkg/clock"
	"raga-booking/internal/usecase/commands"
	"raga-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds   commands.ReviewCommands
	q      queries.ReviewQueries
	venues queries.VenueQueries
	clk    clock.Clock
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries, venues queries.VenueQueries, clk clock.Clock) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q, venues: venues, clk: clk}
}

// @Summary Submit review
// @Description Submit a review for a venue. A second submission by the same user replaces the first.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Venue slug"
// @Param request body reqdto.SubmitReviewRequest true "Review"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /venues/{slug}/reviews [post]
func (h *ReviewHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Submit(c.Request.Context(), commands.SubmitReviewInput{
		VenueSlug: c.Param("slug"),
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrVenueNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Venue not found", nil)
		case errors.Is(err, review.ErrInvalidRating),
			errors.Is(err, review.ErrEmptyComment),
			errors.Is(err, review.ErrCommentTooLong):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Submit review failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id.String()})
}

// @Summary List venue reviews
// @Description List a venue's reviews, newest first
// @Tags reviews
// @Produce json
// @Param slug path string true "Venue slug"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /venues/{slug}/reviews [get]
func (h *ReviewHandler) ListByVenue(c *gin.Context) {
	detail, err := h.venues.BySlug(c.Request.Context(), c.Param("slug"), h.clk.Today())
	if err != nil {
		if errors.Is(err, queries.ErrVenueNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Venue not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load venue", nil)
		return
	}

	items, err := h.q.ByVenue(c.Request.Context(), detail.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reviews", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": resdto.FromReviewList(items)})
}
