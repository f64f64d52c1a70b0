package dto

import (
	"encoding/json"
	"time"

	"storerating/internal/app/role"
)

// ============ Common ============

type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request. Action hints the
// client at a follow-up step (e.g. CREATE_STORE).
type ErrorResponse struct {
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
}

// ============ Auth ============

type SignupRequest struct {
	Name     string `json:"name" binding:"omitempty,max=100"`
	Email    string `json:"email" binding:"omitempty,trimmed_email,max=100"`
	Password string `json:"password"`
	Address  string `json:"address" binding:"omitempty,max=400"`
	Role     string `json:"role"`
}

type SignupResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	Role    role.Role `json:"role"`
	UserID  uint      `json:"userId"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Role      role.Role `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ============ Admin ============

type CreateUserRequest struct {
	Name     string `json:"name" binding:"omitempty,max=100"`
	Email    string `json:"email" binding:"omitempty,trimmed_email,max=100"`
	Password string `json:"password"`
	Address  string `json:"address" binding:"omitempty,max=400"`
	Role     string `json:"role"`
}

type CreateUserResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// CreateStoreRequest accepts ownerId as a number or a numeric string.
type CreateStoreRequest struct {
	Name    string      `json:"name" binding:"omitempty,max=100"`
	Email   string      `json:"email" binding:"omitempty,trimmed_email,max=100"`
	Address string      `json:"address" binding:"omitempty,max=400"`
	OwnerID json.Number `json:"ownerId"`
}

type StoreResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Address       string  `json:"address"`
	OwnerID       uint    `json:"ownerId"`
	ImageURL      *string `json:"imageUrl"`
	AverageRating *string `json:"averageRating"`
	TotalRatings  int     `json:"totalRatings"`
}

type CreateStoreResponse struct {
	Message string        `json:"message"`
	Store   StoreResponse `json:"store"`
}

type DashboardStatsResponse struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}

type UserFilterQuery struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Address string `form:"address"`
	Role    string `form:"role"`
}

type AdminUserStore struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Address       string  `json:"address"`
	AverageRating *string `json:"averageRating"`
}

type AdminUserResponse struct {
	ID      uint            `json:"id"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Address string          `json:"address"`
	Role    role.Role       `json:"role"`
	Store   *AdminUserStore `json:"store"`
}

type StoreOwnerResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ============ User ============

type StoreRatingResponse struct {
	ID       uint   `json:"id"`
	Value    int    `json:"value"`
	UserID   uint   `json:"userId"`
	UserName string `json:"userName"`
}

type UserStoreResponse struct {
	ID            uint                  `json:"id"`
	Name          string                `json:"name"`
	Address       string                `json:"address"`
	AverageRating *string               `json:"averageRating"`
	YourRating    *int                  `json:"yourRating"`
	Ratings       []StoreRatingResponse `json:"ratings"`
}

// SubmitRatingRequest accepts storeId and value as numbers or numeric strings.
type SubmitRatingRequest struct {
	StoreID json.Number `json:"storeId"`
	Value   json.Number `json:"value"`
}

type RatingResponse struct {
	ID        uint      `json:"id"`
	Value     int       `json:"value"`
	UserID    uint      `json:"userId"`
	StoreID   uint      `json:"storeId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SubmitRatingResponse struct {
	Message string         `json:"message"`
	Rating  RatingResponse `json:"rating"`
}

// ============ Store owner ============

type CreateOwnStoreRequest struct {
	Name    string `json:"name" binding:"omitempty,max=100"`
	Email   string `json:"email" binding:"omitempty,trimmed_email,max=100"`
	Address string `json:"address" binding:"omitempty,max=400"`
}

type RatingAuthor struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type OwnerRatingResponse struct {
	ID    uint         `json:"id"`
	Value int          `json:"value"`
	User  RatingAuthor `json:"user"`
}

type OwnerDashboardResponse struct {
	Store       StoreResponse         `json:"store"`
	RatingsData []OwnerRatingResponse `json:"ratingsData"`
}

type MyStoreResponse struct {
	StoreResponse
	Ratings []StoreRatingResponse `json:"ratings"`
}

type StoreImageResponse struct {
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl"`
}
