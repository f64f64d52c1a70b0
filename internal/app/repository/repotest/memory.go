// Package repotest provides an in-memory repository with the same
// uniqueness rules as the postgres schema, for service and handler tests.
package repotest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"storerating/internal/app/ds"
	"storerating/internal/app/repository"
	"storerating/internal/app/role"
)

type Memory struct {
	mu      sync.Mutex
	users   map[uint]ds.User
	stores  map[uint]ds.Store
	ratings map[uint]ds.Rating
	nextID  uint
	now     func() time.Time
}

func New() *Memory {
	return &Memory{
		users:   make(map[uint]ds.User),
		stores:  make(map[uint]ds.Store),
		ratings: make(map[uint]ds.Rating),
		now:     time.Now,
	}
}

func (m *Memory) id() uint {
	m.nextID++
	return m.nextID
}

func duplicate(field string) error {
	return fmt.Errorf("%w: %s", repository.ErrDuplicate, field)
}

func (m *Memory) CreateUser(_ context.Context, user *ds.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == user.Email {
			return duplicate("users.email")
		}
	}
	if user.Role == "" {
		user.Role = role.User
	}
	user.ID = m.id()
	user.CreatedAt = m.now()
	user.UpdatedAt = user.CreatedAt

	stored := *user
	stored.Store = nil
	m.users[user.ID] = stored
	return nil
}

func (m *Memory) GetUserByID(_ context.Context, id uint) (*ds.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (m *Memory) GetUserByEmail(_ context.Context, email string) (*ds.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *Memory) UpdateUserPassword(_ context.Context, id uint, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Password = hash
	u.UpdatedAt = m.now()
	m.users[id] = u
	return nil
}

func (m *Memory) ListUsers(_ context.Context, filter repository.UserFilter) ([]ds.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	users := make([]ds.User, 0, len(m.users))
	for _, u := range m.sortedUsers() {
		if !containsFold(u.Name, filter.Name) || !containsFold(u.Email, filter.Email) ||
			!containsFold(u.Address, filter.Address) {
			continue
		}
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if s, ok := m.storeOf(u.ID); ok {
			s.Ratings = m.ratingsOf(s.ID, false)
			u.Store = &s
		}
		users = append(users, u)
	}
	return users, nil
}

func (m *Memory) ListUsersByRole(_ context.Context, rl role.Role) ([]ds.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var users []ds.User
	for _, u := range m.sortedUsers() {
		if u.Role == rl {
			users = append(users, u)
		}
	}
	return users, nil
}

func (m *Memory) CreateStore(_ context.Context, store *ds.Store) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[store.OwnerID]; !ok {
		return fmt.Errorf("owner %d does not exist", store.OwnerID)
	}
	for _, s := range m.stores {
		if s.Email == store.Email {
			return duplicate("stores.email")
		}
		if s.OwnerID == store.OwnerID {
			return duplicate("stores.owner_id")
		}
	}
	store.ID = m.id()
	store.CreatedAt = m.now()
	store.UpdatedAt = store.CreatedAt

	stored := *store
	stored.Ratings = nil
	m.stores[store.ID] = stored
	return nil
}

func (m *Memory) GetStoreByID(_ context.Context, id uint) (*ds.Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.stores[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (m *Memory) GetStoreByEmail(_ context.Context, email string) (*ds.Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.stores {
		if s.Email == email {
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *Memory) GetStoreByOwner(_ context.Context, ownerID uint) (*ds.Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.storeOf(ownerID)
	if !ok {
		return nil, repository.ErrNotFound
	}
	s.Ratings = m.ratingsOf(s.ID, true)
	return &s, nil
}

func (m *Memory) ListStoresWithRatings(_ context.Context) ([]ds.Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stores := make([]ds.Store, 0, len(m.stores))
	for _, s := range m.stores {
		s.Ratings = m.ratingsOf(s.ID, false)
		stores = append(stores, s)
	}
	sort.Slice(stores, func(i, j int) bool { return stores[i].ID < stores[j].ID })
	return stores, nil
}

func (m *Memory) UpdateStoreImage(_ context.Context, storeID uint, objectName *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.stores[storeID]
	if !ok {
		return repository.ErrNotFound
	}
	s.ImageURL = objectName
	s.UpdatedAt = m.now()
	m.stores[storeID] = s
	return nil
}

// UpsertRating keeps a single row per (user, store) like the unique index does.
func (m *Memory) UpsertRating(_ context.Context, userID, storeID uint, value int) (*ds.Rating, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[userID]; !ok {
		return nil, fmt.Errorf("user %d does not exist", userID)
	}
	if _, ok := m.stores[storeID]; !ok {
		return nil, fmt.Errorf("store %d does not exist", storeID)
	}

	now := m.now()
	for id, r := range m.ratings {
		if r.UserID == userID && r.StoreID == storeID {
			r.Value = value
			r.UpdatedAt = now
			m.ratings[id] = r
			return &r, nil
		}
	}

	r := ds.Rating{
		ID:        m.id(),
		Value:     value,
		UserID:    userID,
		StoreID:   storeID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.ratings[r.ID] = r
	return &r, nil
}

func (m *Memory) CountRatings(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.ratings)), nil
}

func (m *Memory) DashboardStats(_ context.Context) (repository.DashboardStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return repository.DashboardStats{
		TotalUsers:   int64(len(m.users)),
		TotalStores:  int64(len(m.stores)),
		TotalRatings: int64(len(m.ratings)),
	}, nil
}

func (m *Memory) sortedUsers() []ds.User {
	users := make([]ds.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

func (m *Memory) storeOf(ownerID uint) (ds.Store, bool) {
	for _, s := range m.stores {
		if s.OwnerID == ownerID {
			return s, true
		}
	}
	return ds.Store{}, false
}

// ratingsOf returns the store's ratings with their authors attached.
func (m *Memory) ratingsOf(storeID uint, newestFirst bool) []ds.Rating {
	var ratings []ds.Rating
	for _, r := range m.ratings {
		if r.StoreID != storeID {
			continue
		}
		if u, ok := m.users[r.UserID]; ok {
			u.Store = nil
			r.User = &u
		}
		ratings = append(ratings, r)
	}
	sort.Slice(ratings, func(i, j int) bool {
		if newestFirst {
			return ratings[i].ID > ratings[j].ID
		}
		return ratings[i].ID < ratings[j].ID
	})
	return ratings
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
