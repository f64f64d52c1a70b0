package auth

import (
	"strings"

	"storerating/internal/app/role"
)

// Identity is the verified caller behind a bearer token.
type Identity struct {
	UserID uint
	Role   role.Role
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func BearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
