package validation

import (
	"errors"
	"strings"

	"destiny-global-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrMissingRequired is returned when name, email, phone or message is empty
	ErrMissingRequired = errors.New("missing required field")
	// ErrInvalidEmail is returned when the email fails EmailPattern
	ErrInvalidEmail = errors.New("invalid email address")
)

// Normalize trims surrounding whitespace from every enquiry field except the
// email, which is only blanked when whitespace-only. Padding around an email
// address makes it fail EmailPattern.
func Normalize(e *domain.Enquiry) {
	e.Name = strings.TrimSpace(e.Name)
	if strings.TrimSpace(e.Email) == "" {
		e.Email = ""
	}
	e.Phone = strings.TrimSpace(e.Phone)
	e.Company = strings.TrimSpace(e.Company)
	e.Country = strings.TrimSpace(e.Country)
	e.Product = strings.TrimSpace(e.Product)
	e.Message = strings.TrimSpace(e.Message)
}

// ValidateEnquiry normalizes and validates an enquiry. Missing fields are
// reported before a malformed email, matching the order users see them.
func ValidateEnquiry(v *validator.Validate, e *domain.Enquiry) error {
	Normalize(e)

	err := v.Struct(e)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	invalidEmail := false
	for _, fe := range validationErrors {
		if fe.Tag() == "required" {
			return ErrMissingRequired
		}
		if fe.Tag() == "enquiry_email" {
			invalidEmail = true
		}
	}
	if invalidEmail {
		return ErrInvalidEmail
	}
	return err
}
