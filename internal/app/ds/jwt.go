package ds

import (
	"storerating/internal/app/role"

	"github.com/golang-jwt/jwt"
)

type JWTClaims struct {
	jwt.StandardClaims
	UserID uint      `json:"id"`
	Role   role.Role `json:"role"`
}
