package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"storerating/internal/app/auth"
	"storerating/internal/app/ds"
	"storerating/internal/app/dto"
	"storerating/internal/app/middleware"
	"storerating/internal/app/repository/repotest"
	"storerating/internal/app/role"
	"storerating/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const password = "password123"

type testServer struct {
	router *gin.Engine
	repo   *repotest.Memory
	hasher *auth.Hasher
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repotest.New()
	hasher := auth.NewHasher(0)
	issuer, err := auth.NewIssuer("handler-secret", 0)
	require.NoError(t, err)

	authHandler := NewAuthHandler(service.NewAuthService(repo, hasher, issuer, nil, service.AuthOptions{DistinctLoginErrors: true}))
	apiHandler := NewAPIHandler(
		service.NewAdminService(repo, repo, repo, hasher, service.AdminOptions{}),
		service.NewUserService(repo, repo),
		service.NewOwnerService(repo, nil),
		authHandler,
	)

	router := gin.New()
	apiHandler.RegisterAPIRoutes(router, middleware.NewAuthMiddleware(issuer))
	return &testServer{router: router, repo: repo, hasher: hasher}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// seedAdmin stores an ADMIN directly; no endpoint can mint the first one.
func (s *testServer) seedAdmin(t *testing.T) {
	t.Helper()
	hash, err := s.hasher.Hash(password)
	require.NoError(t, err)
	require.NoError(t, s.repo.CreateUser(context.Background(), &ds.User{
		Name: "Admin", Email: "admin@example.com", Password: hash, Address: "HQ", Role: role.Admin,
	}))
}

func (s *testServer) login(t *testing.T, email string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.LoginResponse
	decode(t, w, &resp)
	return resp.Token
}

func (s *testServer) signup(t *testing.T, name, email string, r role.Role) uint {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/auth/signup", "", gin.H{
		"name": name, "email": email, "password": password, "address": "Somewhere 1", "role": string(r),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp dto.SignupResponse
	decode(t, w, &resp)
	return resp.UserID
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst))
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	assert.Equal(t, status, w.Code, w.Body.String())
	var body dto.ErrorResponse
	decode(t, w, &body)
	assert.Equal(t, message, body.Message)
}

func TestPing(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t)
	userID := s.signup(t, "Jane", "jane@example.com", role.User)

	w := s.do(t, http.MethodPost, "/api/auth/signup", "", gin.H{
		"name": "Jane 2", "email": "JANE@example.com", "password": password, "address": "x",
	})
	assertError(t, w, http.StatusConflict, "Email already in use")

	w = s.do(t, http.MethodPost, "/api/auth/signup", "", `{"name":`)
	assertError(t, w, http.StatusBadRequest, "Invalid request body")

	w = s.do(t, http.MethodPost, "/api/auth/signup", "", nil)
	assertError(t, w, http.StatusBadRequest, "All fields are required")

	w = s.do(t, http.MethodPost, "/api/auth/signup", "", gin.H{
		"name": "Bad", "email": "not-an-email", "password": password, "address": "x",
	})
	assertError(t, w, http.StatusBadRequest, "Invalid email format")

	w = s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "ghost@example.com", "password": password})
	assertError(t, w, http.StatusNotFound, "User not found")

	w = s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "jane@example.com", "password": "nope-nope"})
	assertError(t, w, http.StatusUnauthorized, "Invalid password")

	token := s.login(t, "jane@example.com")

	w = s.do(t, http.MethodGet, "/api/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	var profile dto.UserResponse
	decode(t, w, &profile)
	assert.Equal(t, userID, profile.ID)
	assert.Equal(t, role.User, profile.Role)

	w = s.do(t, http.MethodPut, "/api/auth/change-password", token, gin.H{
		"currentPassword": "wrong-password", "newPassword": "another-password",
	})
	assertError(t, w, http.StatusBadRequest, "Current password is incorrect")

	w = s.do(t, http.MethodPut, "/api/auth/change-password", token, gin.H{
		"currentPassword": password, "newPassword": "another-password",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Password updated successfully"}`, w.Body.String())

	w = s.do(t, http.MethodPut, "/api/auth/change-password", "", gin.H{})
	assertError(t, w, http.StatusUnauthorized, "Unauthorized: No token provided")
}

func TestRoleGuards(t *testing.T) {
	s := newTestServer(t)
	s.seedAdmin(t)
	s.signup(t, "User", "user@example.com", role.User)
	s.signup(t, "Owner", "owner@example.com", role.StoreOwner)

	admin := s.login(t, "admin@example.com")
	user := s.login(t, "user@example.com")
	owner := s.login(t, "owner@example.com")

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		status int
	}{
		{name: "no token", method: http.MethodGet, path: "/api/admin/users", status: http.StatusUnauthorized},
		{name: "bad token", method: http.MethodGet, path: "/api/admin/users", token: "abc", status: http.StatusUnauthorized},
		{name: "user on admin", method: http.MethodGet, path: "/api/admin/users", token: user, status: http.StatusForbidden},
		{name: "owner on admin", method: http.MethodGet, path: "/api/admin/stores", token: owner, status: http.StatusForbidden},
		{name: "admin on user", method: http.MethodGet, path: "/api/user/stores", token: admin, status: http.StatusForbidden},
		{name: "owner on user", method: http.MethodPost, path: "/api/user/submit-rating", token: owner, status: http.StatusForbidden},
		{name: "user on owner", method: http.MethodGet, path: "/api/store-owner/dashboard", token: user, status: http.StatusForbidden},
		{name: "admin on owner", method: http.MethodGet, path: "/api/store-owner/my-store", token: admin, status: http.StatusForbidden},
		{name: "admin", method: http.MethodGet, path: "/api/admin/users", token: admin, status: http.StatusOK},
		{name: "user", method: http.MethodGet, path: "/api/user/stores", token: user, status: http.StatusOK},
		{name: "profile for owner", method: http.MethodGet, path: "/api/auth/profile", token: owner, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, tt.method, tt.path, tt.token, nil)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestSignupCannotCreateAdmin(t *testing.T) {
	s := newTestServer(t)
	s.signup(t, "Sneaky", "sneaky@example.com", role.Admin)

	w := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "sneaky@example.com", "password": password})
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.LoginResponse
	decode(t, w, &resp)
	assert.Equal(t, role.User, resp.Role)
}

func TestAdminCreatesOwnerAndStore(t *testing.T) {
	s := newTestServer(t)
	s.seedAdmin(t)
	admin := s.login(t, "admin@example.com")

	w := s.do(t, http.MethodPost, "/api/admin/create-user", admin, gin.H{
		"name": "B", "email": "b@x.com", "password": password, "address": "x", "role": "STORE_OWNER",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created dto.CreateUserResponse
	decode(t, w, &created)
	assert.Equal(t, "User created successfully", created.Message)
	assert.NotContains(t, w.Body.String(), "password")

	w = s.do(t, http.MethodPost, "/api/admin/create-user", admin, gin.H{
		"name": "C", "email": "c@x.com", "password": password, "address": "x", "role": "ADMIN",
	})
	assertError(t, w, http.StatusBadRequest, "Invalid role")

	w = s.do(t, http.MethodPost, "/api/admin/create-store", admin, gin.H{
		"name": "Shop", "email": "shop@x.com", "address": "Main st", "ownerId": created.User.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var store dto.CreateStoreResponse
	decode(t, w, &store)
	assert.Equal(t, created.User.ID, store.Store.OwnerID)
	assert.Nil(t, store.Store.AverageRating)

	// ownerId as a string is accepted too
	w = s.do(t, http.MethodPost, "/api/admin/create-store", admin,
		`{"name":"Shop 2","email":"shop2@x.com","address":"Side st","ownerId":"`+jsonID(created.User.ID)+`"}`)
	assertError(t, w, http.StatusConflict, "This owner already has a store")

	w = s.do(t, http.MethodGet, "/api/admin/store-owners", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":`+jsonID(created.User.ID)+`,"name":"B","email":"b@x.com"}]`, w.Body.String())

	w = s.do(t, http.MethodGet, "/api/admin/dashboard-stats", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalUsers":2,"totalStores":1,"totalRatings":0}`, w.Body.String())

	w = s.do(t, http.MethodGet, "/api/admin/users?role=STORE_OWNER&email=b@", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var users []dto.AdminUserResponse
	decode(t, w, &users)
	require.Len(t, users, 1)
	require.NotNil(t, users[0].Store)
	assert.Equal(t, "Shop", users[0].Store.Name)
	assert.Nil(t, users[0].Store.AverageRating)
}

func TestRatingFlow(t *testing.T) {
	s := newTestServer(t)
	ownerID := s.signup(t, "Owner", "owner@example.com", role.StoreOwner)
	s.signup(t, "Rater", "rater@example.com", role.User)
	owner := s.login(t, "owner@example.com")
	rater := s.login(t, "rater@example.com")

	w := s.do(t, http.MethodGet, "/api/store-owner/dashboard", owner, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"No store found for this owner","action":"CREATE_STORE"}`, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/store-owner/create-store", owner, gin.H{
		"name": "Corner", "email": "corner@example.com", "address": "1 Corner st", "ownerId": 999,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created dto.CreateStoreResponse
	decode(t, w, &created)
	assert.Equal(t, ownerID, created.Store.OwnerID)

	w = s.do(t, http.MethodPost, "/api/store-owner/create-store", owner, gin.H{
		"name": "Second", "email": "second@example.com", "address": "x",
	})
	assertError(t, w, http.StatusBadRequest, "You already have a store")

	storeID := created.Store.ID
	w = s.do(t, http.MethodPost, "/api/user/submit-rating", rater, gin.H{"storeId": storeID, "value": 6})
	assertError(t, w, http.StatusBadRequest, "Rating must be an integer between 1 and 5")

	w = s.do(t, http.MethodPost, "/api/user/submit-rating", rater, gin.H{"storeId": 12345, "value": 3})
	assertError(t, w, http.StatusBadRequest, "Store not found")

	w = s.do(t, http.MethodPost, "/api/user/submit-rating", rater, gin.H{"storeId": storeID, "value": 4})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var first dto.SubmitRatingResponse
	decode(t, w, &first)
	assert.Equal(t, "Rating submitted successfully", first.Message)

	w = s.do(t, http.MethodPost, "/api/user/submit-rating", rater, gin.H{"storeId": jsonID(storeID), "value": "2"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var second dto.SubmitRatingResponse
	decode(t, w, &second)
	assert.Equal(t, first.Rating.ID, second.Rating.ID)
	assert.Equal(t, 2, second.Rating.Value)

	w = s.do(t, http.MethodGet, "/api/user/stores", rater, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stores []dto.UserStoreResponse
	decode(t, w, &stores)
	require.Len(t, stores, 1)
	require.NotNil(t, stores[0].YourRating)
	assert.Equal(t, 2, *stores[0].YourRating)
	require.NotNil(t, stores[0].AverageRating)
	assert.Equal(t, "2.00", *stores[0].AverageRating)
	require.Len(t, stores[0].Ratings, 1)
	assert.Equal(t, "Rater", stores[0].Ratings[0].UserName)

	w = s.do(t, http.MethodGet, "/api/store-owner/dashboard", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dash dto.OwnerDashboardResponse
	decode(t, w, &dash)
	assert.Equal(t, 1, dash.Store.TotalRatings)
	require.Len(t, dash.RatingsData, 1)
	assert.Equal(t, "rater@example.com", dash.RatingsData[0].User.Email)
}

func TestUploadStoreImageWithoutStorage(t *testing.T) {
	s := newTestServer(t)
	s.signup(t, "Owner", "owner@example.com", role.StoreOwner)
	owner := s.login(t, "owner@example.com")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", "logo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/store-owner/store-image", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+owner)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assertError(t, w, http.StatusServiceUnavailable, "Image storage is not configured")

	w = s.do(t, http.MethodPost, "/api/store-owner/store-image", owner, nil)
	assertError(t, w, http.StatusBadRequest, "Image file is required")
}

func jsonID(id uint) string {
	raw, _ := json.Marshal(id)
	return string(raw)
}

func TestEmailWhitespaceIsTrimmedBeforeValidation(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/auth/signup", "", gin.H{
		"name": "Padded", "email": "  Padded@Example.com ", "password": password, "address": "x",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	stored, err := s.repo.GetUserByEmail(context.Background(), "padded@example.com")
	require.NoError(t, err)
	assert.Equal(t, "padded@example.com", stored.Email)

	s.login(t, " padded@example.com")

	w = s.do(t, http.MethodPost, "/api/auth/signup", "", gin.H{
		"name": "Bad", "email": "  not an email ", "password": password, "address": "x",
	})
	assertError(t, w, http.StatusBadRequest, "Invalid email format")
}
