package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// EmailPattern is a presence/shape check: local@domain.tld, no whitespace
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// New returns a validator with the enquiry custom tags registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("enquiry_email", EnquiryEmail)
}

// EnquiryEmail validates an email address against EmailPattern.
// Empty values are left to the required tag.
func EnquiryEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return EmailPattern.MatchString(val)
}
