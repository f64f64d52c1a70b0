package service

import (
	"context"
	"strconv"
	"testing"

	"storerating/internal/app/apperr"
	"storerating/internal/app/auth"
	"storerating/internal/app/ds"
	"storerating/internal/app/repository/repotest"
	"storerating/internal/app/role"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "password123"

type fixture struct {
	repo   *repotest.Memory
	hasher *auth.Hasher
	issuer *auth.Issuer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	issuer, err := auth.NewIssuer("test-secret", 0)
	require.NoError(t, err)
	return &fixture{
		repo:   repotest.New(),
		hasher: auth.NewHasher(0),
		issuer: issuer,
	}
}

// addUser stores a user whose password is testPassword.
func (f *fixture) addUser(t *testing.T, name, email string, r role.Role) *ds.User {
	t.Helper()
	hash, err := f.hasher.Hash(testPassword)
	require.NoError(t, err)
	u := &ds.User{Name: name, Email: email, Password: hash, Address: "Main street 1", Role: r}
	require.NoError(t, f.repo.CreateUser(context.Background(), u))
	return u
}

func (f *fixture) addStore(t *testing.T, name, email string, ownerID uint) *ds.Store {
	t.Helper()
	s := &ds.Store{Name: name, Email: email, Address: "Market square 2", OwnerID: ownerID}
	require.NoError(t, f.repo.CreateStore(context.Background(), s))
	return s
}

func identityOf(u *ds.User) auth.Identity {
	return auth.Identity{UserID: u.ID, Role: u.Role}
}

// assertAppErr checks the HTTP status and client message of err.
func assertAppErr(t *testing.T, err error, status int, message string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, status, apperr.HTTPStatus(err))
	assert.Equal(t, message, apperr.Message(err))
}

func jsonID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
