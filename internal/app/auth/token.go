package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"storerating/internal/app/apperr"
	"storerating/internal/app/ds"
	"storerating/internal/app/role"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const (
	issuer = "store-rating"

	// DefaultTTL is the lifetime of an issued token. There is no refresh:
	// an expired token requires a new login.
	DefaultTTL = 24 * time.Hour
)

var ErrEmptySecret = errors.New("jwt secret must not be empty")

// Issuer signs and verifies HS256 tokens with one process-wide secret.
// Tokens are stateless; rotating the secret invalidates all of them.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue returns a signed token asserting userID and r.
func (i *Issuer) Issue(userID uint, r role.Role) (string, error) {
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: now.Add(i.ttl).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    issuer,
		},
		UserID: userID,
		Role:   r,
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry and returns the identity
// carried by the token.
func (i *Issuer) Verify(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, apperr.Unauthenticated("Unauthorized: No token provided")
	}

	claims := &ds.JWTClaims{}
	parser := jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, apperr.Unauthenticated("Unauthorized: Invalid token")
	}
	// jwt v3 treats a missing exp as valid; our tokens always carry one.
	if claims.ExpiresAt == 0 || !claims.VerifyExpiresAt(i.now().Unix(), true) {
		return Identity{}, apperr.Unauthenticated("Unauthorized: Invalid token")
	}
	if claims.UserID == 0 || !claims.Role.Valid() {
		return Identity{}, apperr.Unauthenticated("Unauthorized: Invalid token")
	}

	return Identity{UserID: claims.UserID, Role: claims.Role}, nil
}
