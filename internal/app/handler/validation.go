package handler

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// trimmedEmailTag checks the email format after trimming surrounding
// whitespace, the same way the services normalize emails before use.
const trimmedEmailTag = "trimmed_email"

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation(trimmedEmailTag, func(fl validator.FieldLevel) bool {
		return v.Var(strings.TrimSpace(fl.Field().String()), "email") == nil
	})
}
