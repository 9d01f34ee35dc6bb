package validation_test

import (
	"testing"

	"destiny-global-backend/internal/domain"
	"destiny-global-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func validEnquiry() domain.Enquiry {
	return domain.Enquiry{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "1234567890",
		Message: "Interested in pellets",
	}
}

func TestValidateEnquiry(t *testing.T) {
	v := validation.New()

	t.Run("accepts a complete enquiry", func(t *testing.T) {
		e := validEnquiry()
		assert.NoError(t, validation.ValidateEnquiry(v, &e))
	})

	t.Run("optional fields may be empty", func(t *testing.T) {
		e := validEnquiry()
		e.Company, e.Country, e.Product = "", "", ""
		assert.NoError(t, validation.ValidateEnquiry(v, &e))
	})

	missing := map[string]func(*domain.Enquiry){
		"name":    func(e *domain.Enquiry) { e.Name = "" },
		"email":   func(e *domain.Enquiry) { e.Email = "" },
		"phone":   func(e *domain.Enquiry) { e.Phone = "" },
		"message": func(e *domain.Enquiry) { e.Message = "   " },
	}
	for field, clear := range missing {
		t.Run("rejects missing "+field, func(t *testing.T) {
			e := validEnquiry()
			clear(&e)
			assert.ErrorIs(t, validation.ValidateEnquiry(v, &e), validation.ErrMissingRequired)
		})
	}

	t.Run("missing fields win over a bad email", func(t *testing.T) {
		e := validEnquiry()
		e.Email = "nope"
		e.Phone = ""
		assert.ErrorIs(t, validation.ValidateEnquiry(v, &e), validation.ErrMissingRequired)
	})

	for _, email := range []string{"not-an-email", "jane@example", "jane example@x.com", "@example.com", "jane@.com@"} {
		t.Run("rejects email "+email, func(t *testing.T) {
			e := validEnquiry()
			e.Email = email
			assert.ErrorIs(t, validation.ValidateEnquiry(v, &e), validation.ErrInvalidEmail)
		})
	}

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		e := validEnquiry()
		e.Name = "  Jane Doe \n"
		e.Message = "\tHello  "
		assert.NoError(t, validation.ValidateEnquiry(v, &e))
		assert.Equal(t, "Jane Doe", e.Name)
		assert.Equal(t, "Hello", e.Message)
	})

	t.Run("padded email is invalid", func(t *testing.T) {
		e := validEnquiry()
		e.Email = " jane@example.com "
		assert.ErrorIs(t, validation.ValidateEnquiry(v, &e), validation.ErrInvalidEmail)
	})

	t.Run("whitespace-only email is missing", func(t *testing.T) {
		e := validEnquiry()
		e.Email = "   "
		assert.ErrorIs(t, validation.ValidateEnquiry(v, &e), validation.ErrMissingRequired)
	})
}

func TestEmailPattern(t *testing.T) {
	assert.True(t, validation.EmailPattern.MatchString("a@b.co"))
	assert.True(t, validation.EmailPattern.MatchString("first.last+tag@sub.example.org"))
	assert.False(t, validation.EmailPattern.MatchString("a@b"))
	assert.False(t, validation.EmailPattern.MatchString("ab.co"))
}
