package booking

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// GuestIdentity carries the data collected at the first stage of the
// booking workflow
type GuestIdentity struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DocumentNumber string `json:"document_number"`
	GuestCount     int    `json:"guest_count"`
}

// FieldResult is the outcome of validating a single identity field
type FieldResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

var (
	identityValidator = validator.New()

	phonePattern    = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	documentPattern = regexp.MustCompile(`^[0-9]{8,12}$`)
)

// ValidateField validates one identity field by name. Unknown fields
// pass, the workflow only gates on the fields it collects.
func ValidateField(field, value string) FieldResult {
	switch field {
	case "first_name", "last_name":
		if err := identityValidator.Var(value, "required,min=2,max=100"); err != nil {
			return FieldResult{Valid: false, Message: "must be between 2 and 100 characters"}
		}
	case "email":
		if err := identityValidator.Var(value, "required,email"); err != nil {
			return FieldResult{Valid: false, Message: "must be a valid email address"}
		}
	case "phone":
		if !phonePattern.MatchString(value) {
			return FieldResult{Valid: false, Message: "must be a valid phone number"}
		}
	case "document_number":
		if !documentPattern.MatchString(value) {
			return FieldResult{Valid: false, Message: "must be 8 to 12 digits"}
		}
	}
	return FieldResult{Valid: true}
}

// Validate checks every identity field and returns a map of field name
// to message for those that fail. An empty map means the identity gate
// is open.
func (g GuestIdentity) Validate() map[string]string {
	fields := map[string]string{
		"first_name":      g.FirstName,
		"last_name":       g.LastName,
		"email":           g.Email,
		"phone":           g.Phone,
		"document_number": g.DocumentNumber,
	}

	errs := make(map[string]string)
	for name, value := range fields {
		if result := ValidateField(name, value); !result.Valid {
			errs[name] = result.Message
		}
	}

	if g.GuestCount <= 0 {
		errs["guest_count"] = "must be greater than zero"
	}

	return errs
}
