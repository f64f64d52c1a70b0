package handler

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"storerating/internal/app/apperr"
	"storerating/internal/app/auth"
	"storerating/internal/app/dto"
	"storerating/internal/app/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var errInvalidQuery = apperr.Validation("Invalid query parameters")

// errorResponse writes err as {message[, action]}. Internal errors are
// logged with their cause and reach the client only as a generic message.
func errorResponse(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if apperr.IsInternal(err) {
		logrus.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	}

	c.JSON(status, dto.ErrorResponse{
		Message: apperr.Message(err),
		Action:  apperr.Details(err)["action"],
	})
}

// bindJSON decodes the body into dst. An empty body leaves dst zero so the
// services report the missing fields.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		errorResponse(c, apperr.Validation(validationMessage(verrs[0])))
		return false
	}
	errorResponse(c, apperr.Validation("Invalid request body"))
	return false
}

func validationMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "email", trimmedEmailTag:
		return "Invalid email format"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	}
	return fmt.Sprintf("%s is invalid", field)
}

// currentIdentity reads the identity set by the auth middleware.
func currentIdentity(c *gin.Context) (auth.Identity, bool) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		errorResponse(c, apperr.Unauthenticated("Unauthorized: No token provided"))
		return auth.Identity{}, false
	}
	return id, true
}
