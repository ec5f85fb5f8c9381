package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("identifier", validateIdentifier)
	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	validateOnce.Do(func() {
		if validate == nil {
			InitValidator()
		}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a map keyed by field
// name, without leaking struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "identifier":
			errs[field] = "Must be a lowercase identifier"
		case "max", "lte":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min", "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validateIdentifier accepts catalog ids such as healing_potion or moon_herb.
func validateIdentifier(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	if id == "" {
		return true
	}
	for _, r := range id {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
			return false
		}
	}
	return true
}
