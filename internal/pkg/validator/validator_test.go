package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidCountryCode(t *testing.T) {
	assert.True(t, IsValidCountryCode("IN"))
	assert.True(t, IsValidCountryCode("US"))
	assert.False(t, IsValidCountryCode("in"))
	assert.False(t, IsValidCountryCode("IND"))
	assert.False(t, IsValidCountryCode(""))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-01-31")
	assert.True(t, ok)
	_, ok = IsValidDate("31-01-2025")
	assert.False(t, ok)
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "month must be between 1 and 12"},
		{Field: "year", Message: "year must be between 2000 and 2100"},
	}
	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "month must be between 1 and 12", m["month"])
	assert.Contains(t, errs.Error(), "year:")
}
