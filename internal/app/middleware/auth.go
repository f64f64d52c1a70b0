package middleware

import (
	"storerating/internal/app/apperr"
	"storerating/internal/app/auth"
	"storerating/internal/app/dto"
	"storerating/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

type AuthMiddleware struct {
	Tokens TokenVerifier
}

func NewAuthMiddleware(tokens TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		Tokens: tokens,
	}
}

// WithAuthCheck requires a valid bearer token and, when roles are given,
// one of those roles. The identity is stored in the gin context.
func (am *AuthMiddleware) WithAuthCheck(assignedRoles ...role.Role) gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		token, _ := auth.BearerToken(gCtx.GetHeader("Authorization"))

		identity, err := am.Tokens.Verify(token)
		if err != nil {
			abort(gCtx, err)
			return
		}

		if len(assignedRoles) > 0 {
			if err := auth.Require(identity, assignedRoles...); err != nil {
				logrus.WithFields(logrus.Fields{
					"user_id": identity.UserID,
					"role":    identity.Role,
					"path":    gCtx.FullPath(),
				}).Warn("access denied")
				abort(gCtx, err)
				return
			}
		}

		setIdentity(gCtx, identity)
		gCtx.Next()
	}
}

func abort(gCtx *gin.Context, err error) {
	gCtx.AbortWithStatusJSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
}
