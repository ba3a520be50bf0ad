package api

import (
	"errors"
	"net/http"

	resdto "raga-booking/internal/handler/dto/response"
	"raga-booking/internal/handler/httperr"
	"raga-booking/internal/handler/middleware"
	"raga-booking/internal/usecase/commands"
	"raga-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WishlistHandler struct {
	cmds commands.WishlistCommands
	q    queries.WishlistQueries
}

func NewWishlistHandler(cmds commands.WishlistCommands, q queries.WishlistQueries) *WishlistHandler {
	return &WishlistHandler{cmds: cmds, q: q}
}

// @Summary Toggle wishlist
// @Description Add the venue to the caller's wishlist, or remove it when already present
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Venue slug"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /venues/{slug}/wishlist [post]
func (h *WishlistHandler) Toggle(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	action, err := h.cmds.Toggle(c.Request.Context(), userID, c.Param("slug"))
	if err != nil {
		if errors.Is(err, commands.ErrVenueNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Venue not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Toggle wishlist failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(action)})
}

// @Summary List wishlist
// @Description The caller's wishlisted venues, newest first
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Router /wishlist [get]
func (h *WishlistHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	items, err := h.q.ByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list wishlist", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wishlist": resdto.FromWishlistItems(items)})
}
