package handler

import (
	"net/http"

	"storerating/internal/app/dto"
	"storerating/internal/app/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Service *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{Service: s}
}

// Signup registers a new account
// @Summary Sign up
// @Description Creates a USER or STORE_OWNER account. Any other role becomes USER.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Account data"
// @Success 201 {object} dto.SignupResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(ctx *gin.Context) {
	var request dto.SignupRequest
	if !bindJSON(ctx, &request) {
		return
	}

	response, err := h.Service.Signup(ctx.Request.Context(), request)
	if err != nil {
		errorResponse(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, response)
}

// Login authenticates a user
// @Summary Log in
// @Description Returns a bearer token valid for 24 hours
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if !bindJSON(ctx, &request) {
		return
	}

	response, err := h.Service.Login(ctx.Request.Context(), request)
	if err != nil {
		errorResponse(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

// ChangePassword replaces the caller's password
// @Summary Change password
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/auth/change-password [put]
func (h *AuthHandler) ChangePassword(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var request dto.ChangePasswordRequest
	if !bindJSON(ctx, &request) {
		return
	}

	if err := h.Service.ChangePassword(ctx.Request.Context(), identity, request); err != nil {
		errorResponse(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated successfully"})
}

// Profile returns the caller's account
// @Summary Current user profile
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/auth/profile [get]
func (h *AuthHandler) Profile(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	profile, err := h.Service.Profile(ctx.Request.Context(), identity)
	if err != nil {
		errorResponse(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}
