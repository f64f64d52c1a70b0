package middleware

import (
	"storerating/internal/app/auth"

	"github.com/gin-gonic/gin"
)

const (
	identityKey = "identity"
	userIDKey   = "userID"
	userRoleKey = "userRole"
)

func setIdentity(c *gin.Context, id auth.Identity) {
	c.Set(identityKey, id)
	c.Set(userIDKey, id.UserID)
	c.Set(userRoleKey, id.Role)
}

// CurrentIdentity returns the identity stored by WithAuthCheck.
func CurrentIdentity(c *gin.Context) (auth.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}
