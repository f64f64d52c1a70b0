package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"storerating/internal/app/apperr"
	"storerating/internal/app/auth"
	"storerating/internal/app/ds"
	"storerating/internal/app/dto"
	"storerating/internal/app/repository"
	"storerating/internal/app/role"

	"github.com/sirupsen/logrus"
)

type AuthOptions struct {
	// DistinctLoginErrors reports unknown emails as 404 and wrong passwords
	// as 401. Otherwise both get the same 401.
	DistinctLoginErrors bool
	MaxLoginAttempts    int
}

type AuthService struct {
	users    UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	throttle LoginThrottle
	opts     AuthOptions

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService builds the service. throttle may be nil.
func NewAuthService(users UserRepository, hasher PasswordHasher, tokens TokenIssuer, throttle LoginThrottle, opts AuthOptions) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		throttle: throttle,
		opts:     opts,
	}
}

// Signup registers a USER or STORE_OWNER. Any other requested role,
// ADMIN included, silently becomes USER.
func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) (dto.SignupResponse, error) {
	if anyBlank(req.Name, req.Email, req.Password, req.Address) {
		return dto.SignupResponse{}, apperr.Validation("All fields are required")
	}
	if tooShort(req.Password, auth.MinPasswordLength) {
		return dto.SignupResponse{}, apperr.Validation("Password must be at least 8 characters")
	}

	userRole, ok := role.Parse(req.Role)
	if !ok || userRole == role.Admin {
		userRole = role.User
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return dto.SignupResponse{}, apperr.Internal("signup", err)
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
		return dto.SignupResponse{}, apperr.Conflict("Email already in use")
	}
	if err != nil {
		return dto.SignupResponse{}, apperr.Internal("signup", err)
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("user signed up")
	return dto.SignupResponse{Message: "User created successfully", UserID: user.ID}, nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return dto.LoginResponse{}, apperr.Validation("Email and password are required")
	}

	if s.locked(ctx, email) {
		return dto.LoginResponse{}, apperr.Unauthenticated("Too many failed login attempts, try again later")
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		s.failed(ctx, email)
		if s.opts.DistinctLoginErrors {
			return dto.LoginResponse{}, apperr.NotFound("User not found")
		}
		// keep the response time close to a real password check
		s.hasher.Compare(s.dummy(), req.Password)
		return dto.LoginResponse{}, apperr.Unauthenticated("Invalid email or password")
	}
	if err != nil {
		return dto.LoginResponse{}, apperr.Internal("login", err)
	}

	if !s.hasher.Compare(user.Password, req.Password) {
		s.failed(ctx, email)
		if s.opts.DistinctLoginErrors {
			return dto.LoginResponse{}, apperr.Unauthenticated("Invalid password")
		}
		return dto.LoginResponse{}, apperr.Unauthenticated("Invalid email or password")
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return dto.LoginResponse{}, apperr.Internal("login", err)
	}
	s.reset(ctx, email)

	return dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		Role:    user.Role,
		UserID:  user.ID,
	}, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, id auth.Identity, req dto.ChangePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return apperr.Validation("Current password and new password are required")
	}
	if tooShort(req.NewPassword, auth.MinPasswordLength) {
		return apperr.Validation("New password must be at least 8 characters long")
	}

	user, err := s.users.GetUserByID(ctx, id.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("User not found")
	}
	if err != nil {
		return apperr.Internal("change password", err)
	}

	if !s.hasher.Compare(user.Password, req.CurrentPassword) {
		return apperr.InvalidCredential("Current password is incorrect")
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return apperr.Internal("change password", err)
	}
	err = s.users.UpdateUserPassword(ctx, user.ID, hash)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("User not found")
	}
	if err != nil {
		return apperr.Internal("change password", err)
	}
	return nil
}

func (s *AuthService) Profile(ctx context.Context, id auth.Identity) (dto.UserResponse, error) {
	user, err := s.users.GetUserByID(ctx, id.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return dto.UserResponse{}, apperr.NotFound("User not found")
	}
	if err != nil {
		return dto.UserResponse{}, apperr.Internal("profile", err)
	}
	return userResponse(user), nil
}

// Throttle failures are logged and never block a login.

func (s *AuthService) locked(ctx context.Context, email string) bool {
	if s.throttle == nil {
		return false
	}
	locked, err := s.throttle.IsLocked(ctx, email, s.opts.MaxLoginAttempts)
	if err != nil {
		logrus.WithError(err).Warn("login throttle check failed")
		return false
	}
	return locked
}

func (s *AuthService) failed(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	attempts, err := s.throttle.FailedLogin(ctx, email)
	if err != nil {
		logrus.WithError(err).Warn("login throttle update failed")
		return
	}
	logrus.WithField("attempts", attempts).Debug("failed login recorded")
}

func (s *AuthService) reset(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.ResetLogin(ctx, email); err != nil {
		logrus.WithError(err).Warn("login throttle reset failed")
	}
}

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash("not-a-real-password")
		if err != nil {
			logrus.WithError(err).Error("dummy hash")
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}
