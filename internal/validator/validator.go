// Package validator provides custom validation functions for Gin's binding engine
// and a standalone validator that applies the same rules outside of Gin.
package validator

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	standalone *validator.Validate
	once       sync.Once
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustom(v)
	}
}

func registerCustom(v *validator.Validate) {
	_ = v.RegisterValidation("finite", validateFinite)
}

// validateFinite rejects NaN and infinities, which form values like "Inf" parse into.
func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Struct validates s using its `binding` tags and the custom validators.
func Struct(s any) error {
	once.Do(func() {
		standalone = validator.New()
		standalone.SetTagName("binding")
		registerCustom(standalone)
	})
	return standalone.Struct(s)
}

// Describe turns validation errors into a short human readable sentence.
// Other errors are returned as their message.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, describeField(fe))
	}
	return strings.Join(parts, "; ")
}

func describeField(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must not be negative", field)
	case "finite":
		return fmt.Sprintf("%s must be a finite number", field)
	}
	return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
}

// IsValidationError reports whether err came from struct validation rather than
// from decoding the request.
func IsValidationError(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}
