package service

import (
	"context"
	"errors"
	"strings"

	"storerating/internal/app/apperr"
	"storerating/internal/app/auth"
	"storerating/internal/app/ds"
	"storerating/internal/app/dto"
	"storerating/internal/app/repository"
	"storerating/internal/app/role"

	"github.com/sirupsen/logrus"
)

type AdminOptions struct {
	// AdminCanCreateAdmins adds ADMIN to the roles CreateUser accepts.
	AdminCanCreateAdmins bool
}

type AdminService struct {
	users  UserRepository
	stores StoreRepository
	stats  StatsRepository
	hasher PasswordHasher
	opts   AdminOptions
}

func NewAdminService(users UserRepository, stores StoreRepository, stats StatsRepository, hasher PasswordHasher, opts AdminOptions) *AdminService {
	return &AdminService{
		users:  users,
		stores: stores,
		stats:  stats,
		hasher: hasher,
		opts:   opts,
	}
}

func (s *AdminService) DashboardStats(ctx context.Context) (dto.DashboardStatsResponse, error) {
	stats, err := s.stats.DashboardStats(ctx)
	if err != nil {
		return dto.DashboardStatsResponse{}, apperr.Internal("dashboard stats", err)
	}
	return dto.DashboardStatsResponse{
		TotalUsers:   stats.TotalUsers,
		TotalStores:  stats.TotalStores,
		TotalRatings: stats.TotalRatings,
	}, nil
}

func (s *AdminService) creatableRole(raw string) (role.Role, bool) {
	r, ok := role.Parse(raw)
	if !ok {
		return "", false
	}
	if r == role.Admin && !s.opts.AdminCanCreateAdmins {
		return "", false
	}
	return r, true
}

func (s *AdminService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error) {
	if anyBlank(req.Name, req.Email, req.Password, req.Address, req.Role) {
		return dto.UserResponse{}, apperr.Validation("All fields are required")
	}
	userRole, ok := s.creatableRole(req.Role)
	if !ok {
		return dto.UserResponse{}, apperr.Validation("Invalid role")
	}
	if tooShort(req.Password, auth.MinPasswordLength) {
		return dto.UserResponse{}, apperr.Validation("Password must be at least 8 characters")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return dto.UserResponse{}, apperr.Internal("create user", err)
	}

	user := &ds.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    normalizeEmail(req.Email),
		Password: hash,
		Address:  strings.TrimSpace(req.Address),
		Role:     userRole,
	}
	err = s.users.CreateUser(ctx, user)
	if errors.Is(err, repository.ErrDuplicate) {
		return dto.UserResponse{}, apperr.Conflict("Email already exists")
	}
	if err != nil {
		return dto.UserResponse{}, apperr.Internal("create user", err)
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("user created by admin")
	return userResponse(user), nil
}

func (s *AdminService) CreateStore(ctx context.Context, req dto.CreateStoreRequest) (dto.StoreResponse, error) {
	if anyBlank(req.Name, req.Email, req.Address, req.OwnerID.String()) {
		return dto.StoreResponse{}, apperr.Validation("All fields are required")
	}
	ownerID, ok := parseID(req.OwnerID.String())
	if !ok {
		return dto.StoreResponse{}, apperr.Validation("Owner must be a valid STORE_OWNER")
	}

	owner, err := s.users.GetUserByID(ctx, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		return dto.StoreResponse{}, apperr.NotFound("Owner not found")
	}
	if err != nil {
		return dto.StoreResponse{}, apperr.Internal("create store", err)
	}
	if owner.Role != role.StoreOwner {
		return dto.StoreResponse{}, apperr.Validation("Owner must be a valid STORE_OWNER")
	}

	store := &ds.Store{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: owner.ID,
	}
	err = createStore(ctx, s.stores, store, storeConflicts{
		owner: apperr.Conflict("This owner already has a store"),
		email: apperr.Conflict("Store with this email already exists"),
	})
	if err != nil {
		return dto.StoreResponse{}, err
	}

	logrus.WithFields(logrus.Fields{"store_id": store.ID, "owner_id": store.OwnerID}).Info("store created by admin")
	return storeResponse(store), nil
}

// ListUsers applies the optional filters. A store owner's entry carries
// the store's average rating; everyone else gets a null average.
func (s *AdminService) ListUsers(ctx context.Context, q dto.UserFilterQuery) ([]dto.AdminUserResponse, error) {
	filter := repository.UserFilter{
		Name:    strings.TrimSpace(q.Name),
		Email:   strings.TrimSpace(q.Email),
		Address: strings.TrimSpace(q.Address),
	}
	if q.Role != "" {
		r, ok := role.Parse(q.Role)
		if !ok {
			return nil, apperr.Validation("Invalid role")
		}
		filter.Role = r
	}

	users, err := s.users.ListUsers(ctx, filter)
	if err != nil {
		return nil, apperr.Internal("list users", err)
	}

	out := make([]dto.AdminUserResponse, 0, len(users))
	for i := range users {
		u := &users[i]
		entry := dto.AdminUserResponse{
			ID:      u.ID,
			Name:    u.Name,
			Email:   u.Email,
			Address: u.Address,
			Role:    u.Role,
		}
		if u.Store != nil {
			entry.Store = &dto.AdminUserStore{
				ID:      u.Store.ID,
				Name:    u.Store.Name,
				Email:   u.Store.Email,
				Address: u.Store.Address,
			}
			if u.Role == role.StoreOwner {
				entry.Store.AverageRating = averageOf(u.Store)
			}
		}
		out = append(out, entry)
	}
	return out, nil
}

func (s *AdminService) ListStores(ctx context.Context) ([]dto.StoreResponse, error) {
	stores, err := s.stores.ListStoresWithRatings(ctx)
	if err != nil {
		return nil, apperr.Internal("list stores", err)
	}

	out := make([]dto.StoreResponse, 0, len(stores))
	for i := range stores {
		out = append(out, storeResponse(&stores[i]))
	}
	return out, nil
}

func (s *AdminService) ListStoreOwners(ctx context.Context) ([]dto.StoreOwnerResponse, error) {
	owners, err := s.users.ListUsersByRole(ctx, role.StoreOwner)
	if err != nil {
		return nil, apperr.Internal("list store owners", err)
	}

	out := make([]dto.StoreOwnerResponse, 0, len(owners))
	for _, o := range owners {
		out = append(out, dto.StoreOwnerResponse{ID: o.ID, Name: o.Name, Email: o.Email})
	}
	return out, nil
}
