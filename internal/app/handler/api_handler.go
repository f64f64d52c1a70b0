package handler

import (
	"net/http"

	"storerating/internal/app/service"

	"github.com/gin-gonic/gin"
)

// APIHandler serves the admin, user and store owner endpoints.
type APIHandler struct {
	Admin       *service.AdminService
	User        *service.UserService
	Owner       *service.OwnerService
	AuthHandler *AuthHandler
}

func NewAPIHandler(admin *service.AdminService, user *service.UserService, owner *service.OwnerService, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Admin:       admin,
		User:        user,
		Owner:       owner,
		AuthHandler: authHandler,
	}
}

// Ping godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /ping [get]
func (h *APIHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
