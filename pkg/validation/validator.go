package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps validator.Validate for echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Engine exposes the underlying validator for callers that need var-level checks.
func (cv *CustomValidator) Engine() *validator.Validate {
	return cv.validator
}

// New builds the validator with null-type support and our custom rules.
// A rule that fails to register is a programming error, so it panics.
func New() *CustomValidator {
	v := validator.New()

	// report json names (name, serviceType) instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	registerNullTypes(v)

	if err := registerRules(v); err != nil {
		panic("failed to register validation rules: " + err.Error())
	}

	return &CustomValidator{validator: v}
}
