package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateField(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
		valid bool
	}{
		{"valid first name", "first_name", "Maria", true},
		{"single letter name", "first_name", "M", false},
		{"empty last name", "last_name", "", false},
		{"valid email", "email", "maria@example.com", true},
		{"bad email", "email", "maria@", false},
		{"valid phone with prefix", "phone", "+51987654321", true},
		{"valid phone bare digits", "phone", "987654321", true},
		{"phone too short", "phone", "12345", false},
		{"phone with letters", "phone", "98765abcd", false},
		{"valid document", "document_number", "12345678", true},
		{"document too short", "document_number", "1234567", false},
		{"document too long", "document_number", "1234567890123", false},
		{"unknown field passes", "favorite_color", "blue", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateField(tt.field, tt.value)
			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.NotEmpty(t, result.Message)
			}
		})
	}
}

func TestGuestIdentity_Validate(t *testing.T) {
	assert.Empty(t, validIdentity().Validate())

	incomplete := GuestIdentity{FirstName: "Maria", GuestCount: 10}
	errs := incomplete.Validate()

	assert.NotContains(t, errs, "first_name")
	assert.Contains(t, errs, "last_name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "phone")
	assert.Contains(t, errs, "document_number")
}

func TestGuestIdentity_Validate_GuestCount(t *testing.T) {
	identity := validIdentity()

	identity.GuestCount = 0
	assert.Contains(t, identity.Validate(), "guest_count")

	identity.GuestCount = -3
	assert.Contains(t, identity.Validate(), "guest_count")
}
