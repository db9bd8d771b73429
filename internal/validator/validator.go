package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Sri Lankan phone numbers: +94XXXXXXXXX or 0XXXXXXXXX.
var lkPhonePattern = regexp.MustCompile(`^(\+94\d{9}|0\d{9})$`)

// ValidationError represents a single field violation.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(ve))
}

// Validator wraps go-playground/validator with the service's custom rules.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	validate := validator.New()

	// lk_phone accepts the regional formats +94XXXXXXXXX and 0XXXXXXXXX.
	_ = validate.RegisterValidation("lk_phone", func(fl validator.FieldLevel) bool {
		return lkPhonePattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: validate}
}

// Struct validates s against its validate tags.
func (v *Validator) Struct(s interface{}) ValidationErrors {
	var errs ValidationErrors

	if err := v.validate.Struct(s); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			errs = append(errs, ValidationError{
				Field:   fe.Field(),
				Message: errorMessage(fe),
				Value:   fe.Value(),
				Rule:    fe.Tag(),
			})
		}
	}
	return errs
}

// IsEmail reports whether s looks like a valid email address.
func (v *Validator) IsEmail(s string) bool {
	return v.validate.Var(s, "required,email") == nil
}

// IsLKPhone reports whether s matches the required regional phone format.
func (v *Validator) IsLKPhone(s string) bool {
	return lkPhonePattern.MatchString(s)
}

func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "lk_phone":
		return "must be a valid Sri Lankan phone number (+94XXXXXXXXX or 0XXXXXXXXX)"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
