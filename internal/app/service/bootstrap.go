package service

import (
	"context"
	"errors"
	"strings"

	"storerating/internal/app/apperr"
	"storerating/internal/app/auth"
	"storerating/internal/app/ds"
	"storerating/internal/app/repository"
	"storerating/internal/app/role"
)

type AdminSeed struct {
	Name     string
	Email    string
	Password string
	Address  string
}

// EnsureAdmin creates the ADMIN account described by seed unless a user
// with that email already exists. It is the only way to obtain the first
// admin; signup never grants the role.
func EnsureAdmin(ctx context.Context, users UserRepository, hasher PasswordHasher, seed AdminSeed) (bool, error) {
	email := normalizeEmail(seed.Email)
	if email == "" || seed.Password == "" {
		return false, apperr.Validation("Admin email and password are required")
	}
	if tooShort(seed.Password, auth.MinPasswordLength) {
		return false, apperr.Validation("Password must be at least 8 characters")
	}

	existing, err := users.GetUserByEmail(ctx, email)
	if err == nil {
		if existing.Role != role.Admin {
			return false, apperr.Conflict("Email already in use by a non-admin account")
		}
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, apperr.Internal("seed admin", err)
	}

	hash, err := hasher.Hash(seed.Password)
	if err != nil {
		return false, apperr.Internal("seed admin", err)
	}

	name := strings.TrimSpace(seed.Name)
	if name == "" {
		name = "Administrator"
	}
	address := strings.TrimSpace(seed.Address)
	if address == "" {
		address = "-"
	}

	err = users.CreateUser(ctx, &ds.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Address:  address,
		Role:     role.Admin,
	})
	if err != nil {
		return false, apperr.Internal("seed admin", err)
	}
	return true, nil
}
