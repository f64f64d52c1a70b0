package handler

import (
	"io"
	"net/http"

	"storerating/internal/app/apperr"
	"storerating/internal/app/dto"

	"github.com/gin-gonic/gin"
)

const maxImageSize = 5 << 20

// OwnerDashboard shows the caller's store and its ratings
// @Summary Store owner dashboard
// @Tags StoreOwner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.OwnerDashboardResponse
// @Failure 404 {object} dto.ErrorResponse "action is CREATE_STORE"
// @Router /api/store-owner/dashboard [get]
func (h *APIHandler) OwnerDashboard(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	dashboard, err := h.Owner.Dashboard(c.Request.Context(), identity)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// MyStore returns the caller's store with per-user ratings
// @Summary Own store
// @Tags StoreOwner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MyStoreResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/store-owner/my-store [get]
func (h *APIHandler) MyStore(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	store, err := h.Owner.MyStore(c.Request.Context(), identity)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

// CreateOwnStore creates the caller's store
// @Summary Create own store
// @Tags StoreOwner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateOwnStoreRequest true "Store data"
// @Success 201 {object} dto.CreateStoreResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/store-owner/create-store [post]
func (h *APIHandler) CreateOwnStore(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var request dto.CreateOwnStoreRequest
	if !bindJSON(c, &request) {
		return
	}

	store, err := h.Owner.CreateStoreForSelf(c.Request.Context(), identity, request)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateStoreResponse{Message: "Store created successfully", Store: store})
}

// UploadStoreImage replaces the caller's store image
// @Summary Upload store image
// @Tags StoreOwner
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "jpg, jpeg, png, gif or webp, up to 5MB"
// @Success 200 {object} dto.StoreImageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/store-owner/store-image [post]
func (h *APIHandler) UploadStoreImage(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		errorResponse(c, apperr.Validation("Image file is required"))
		return
	}
	if file.Size > maxImageSize {
		errorResponse(c, apperr.Validation("Image must be at most 5MB"))
		return
	}

	openedFile, err := file.Open()
	if err != nil {
		errorResponse(c, apperr.Internal("open upload", err))
		return
	}
	defer openedFile.Close()

	fileData, err := io.ReadAll(openedFile)
	if err != nil {
		errorResponse(c, apperr.Internal("read upload", err))
		return
	}

	response, err := h.Owner.UploadStoreImage(c.Request.Context(), identity, file.Filename, fileData)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
