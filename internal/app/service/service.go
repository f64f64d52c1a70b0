// Package service holds the domain rules of the store rating platform.
// Services return *apperr.Error values; handlers map them to HTTP.
package service

import (
	"context"
	"strconv"
	"strings"
	"unicode/utf8"

	"storerating/internal/app/ds"
	"storerating/internal/app/repository"
	"storerating/internal/app/role"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *ds.User) error
	GetUserByID(ctx context.Context, id uint) (*ds.User, error)
	GetUserByEmail(ctx context.Context, email string) (*ds.User, error)
	UpdateUserPassword(ctx context.Context, id uint, hash string) error
	ListUsers(ctx context.Context, filter repository.UserFilter) ([]ds.User, error)
	ListUsersByRole(ctx context.Context, r role.Role) ([]ds.User, error)
}

type StoreRepository interface {
	CreateStore(ctx context.Context, store *ds.Store) error
	GetStoreByID(ctx context.Context, id uint) (*ds.Store, error)
	GetStoreByEmail(ctx context.Context, email string) (*ds.Store, error)
	GetStoreByOwner(ctx context.Context, ownerID uint) (*ds.Store, error)
	ListStoresWithRatings(ctx context.Context) ([]ds.Store, error)
	UpdateStoreImage(ctx context.Context, storeID uint, objectName *string) error
}

type RatingRepository interface {
	UpsertRating(ctx context.Context, userID, storeID uint, value int) (*ds.Rating, error)
}

type StatsRepository interface {
	DashboardStats(ctx context.Context) (repository.DashboardStats, error)
}

// LoginThrottle counts failed logins per email. Implemented by redis.Client.
type LoginThrottle interface {
	FailedLogin(ctx context.Context, email string) (int64, error)
	IsLocked(ctx context.Context, email string, max int) (bool, error)
	ResetLogin(ctx context.Context, email string) error
}

// ImageStorage keeps store images. Implemented by storage.MinIOClient.
type ImageStorage interface {
	UploadFile(ctx context.Context, fileData []byte, originalFilename string) (string, error)
	DeleteFile(ctx context.Context, name string) error
	GetFileURL(ctx context.Context, name string) (string, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

type TokenIssuer interface {
	Issue(userID uint, r role.Role) (string, error)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func anyBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

func tooShort(password string, min int) bool {
	return utf8.RuneCountInString(password) < min
}

// parseID reads a positive id from a JSON number; ok is false otherwise.
func parseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
