// validation.go - Custom binding rules for request inputs

package middleware

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// usernamePattern allows letters, digits, underscore, dot, and hyphen.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// SetupValidator registers the custom binding rules used by the input
// structs. Call it once at startup, before the router serves requests.
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernamePattern.MatchString(fl.Field().String())
		})
	}
}
