package repository

import (
	"context"
	"strings"

	"storerating/internal/app/ds"
	"storerating/internal/app/role"
)

// UserFilter narrows ListUsers. Empty fields are ignored; text fields match
// case-insensitive substrings, Role matches exactly.
type UserFilter struct {
	Name    string
	Email   string
	Address string
	Role    role.Role
}

func (r *Repository) CreateUser(ctx context.Context, user *ds.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r *Repository) GetUserByID(ctx context.Context, id uint) (*ds.User, error) {
	var user ds.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*ds.User, error) {
	var user ds.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *Repository) UpdateUserPassword(ctx context.Context, id uint, hash string) error {
	result := r.db.WithContext(ctx).Model(&ds.User{}).Where("id = ?", id).Update("password", hash)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListUsers returns users with their store and its ratings preloaded.
func (r *Repository) ListUsers(ctx context.Context, filter UserFilter) ([]ds.User, error) {
	query := r.db.WithContext(ctx).Preload("Store.Ratings")

	if filter.Name != "" {
		query = query.Where("name ILIKE ?", likePattern(filter.Name))
	}
	if filter.Email != "" {
		query = query.Where("email ILIKE ?", likePattern(filter.Email))
	}
	if filter.Address != "" {
		query = query.Where("address ILIKE ?", likePattern(filter.Address))
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}

	var users []ds.User
	err := query.Order("id").Find(&users).Error
	return users, translate(err)
}

func (r *Repository) ListUsersByRole(ctx context.Context, rl role.Role) ([]ds.User, error) {
	var users []ds.User
	err := r.db.WithContext(ctx).Where("role = ?", rl).Order("id").Find(&users).Error
	return users, translate(err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
