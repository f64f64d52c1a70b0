package auth

import (
	"storerating/internal/app/apperr"
	"storerating/internal/app/role"
)

// Require accepts the identity when its role is one of allowed.
func Require(id Identity, allowed ...role.Role) error {
	if !role.Allows(id.Role, allowed...) {
		return apperr.Forbidden("Access denied: insufficient role")
	}
	return nil
}
