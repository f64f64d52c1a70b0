package handler

import (
	"net/http"

	"storerating/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// UserStores lists stores with ratings and the caller's own rating
// @Summary Stores for rating
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserStoreResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/user/stores [get]
func (h *APIHandler) UserStores(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	stores, err := h.User.ListStores(c.Request.Context(), identity)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, stores)
}

// SubmitRating creates or replaces the caller's rating for a store
// @Summary Submit rating
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitRatingRequest true "Store and value 1..5"
// @Success 200 {object} dto.SubmitRatingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/user/submit-rating [post]
func (h *APIHandler) SubmitRating(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var request dto.SubmitRatingRequest
	if !bindJSON(c, &request) {
		return
	}

	rating, err := h.User.SubmitRating(c.Request.Context(), identity, request)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SubmitRatingResponse{Message: "Rating submitted successfully", Rating: rating})
}
