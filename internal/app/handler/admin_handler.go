package handler

import (
	"net/http"

	"storerating/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// DashboardStats counts users, stores and ratings
// @Summary Admin dashboard counters
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/admin/dashboard-stats [get]
func (h *APIHandler) DashboardStats(c *gin.Context) {
	stats, err := h.Admin.DashboardStats(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// CreateUser creates an account with any permitted role
// @Summary Create user
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "Account data"
// @Success 201 {object} dto.CreateUserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/admin/create-user [post]
func (h *APIHandler) CreateUser(c *gin.Context) {
	var request dto.CreateUserRequest
	if !bindJSON(c, &request) {
		return
	}

	user, err := h.Admin.CreateUser(c.Request.Context(), request)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateUserResponse{Message: "User created successfully", User: user})
}

// CreateStore creates a store for an existing store owner
// @Summary Create store
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStoreRequest true "Store data"
// @Success 201 {object} dto.CreateStoreResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/admin/create-store [post]
func (h *APIHandler) CreateStore(c *gin.Context) {
	var request dto.CreateStoreRequest
	if !bindJSON(c, &request) {
		return
	}

	store, err := h.Admin.CreateStore(c.Request.Context(), request)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateStoreResponse{Message: "Store created successfully", Store: store})
}

// ListUsers lists users with optional filters
// @Summary List users
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param name query string false "Name contains"
// @Param email query string false "Email contains"
// @Param address query string false "Address contains"
// @Param role query string false "Exact role" Enums(USER, STORE_OWNER, ADMIN)
// @Success 200 {array} dto.AdminUserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/admin/users [get]
func (h *APIHandler) ListUsers(c *gin.Context) {
	var query dto.UserFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		errorResponse(c, errInvalidQuery)
		return
	}

	users, err := h.Admin.ListUsers(c.Request.Context(), query)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListStores lists every store with its average rating
// @Summary List stores
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.StoreResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/admin/stores [get]
func (h *APIHandler) ListStores(c *gin.Context) {
	stores, err := h.Admin.ListStores(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, stores)
}

// ListStoreOwners lists accounts with the STORE_OWNER role
// @Summary List store owners
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.StoreOwnerResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/admin/store-owners [get]
func (h *APIHandler) ListStoreOwners(c *gin.Context) {
	owners, err := h.Admin.ListStoreOwners(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, owners)
}
