package venues

import (
	"time"

	"github.com/google/uuid"
)

// Venue is an event hall offered for hourly rental
type Venue struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"not null;index" json:"name"`
	Description string    `json:"description"`
	Address     string    `gorm:"not null" json:"address"`
	District    string    `gorm:"index" json:"district"`
	HourlyRate  float64   `gorm:"not null" json:"hourly_rate"`
	MaxCapacity int       `gorm:"not null" json:"max_capacity"`
	Active      bool      `gorm:"default:true" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the table name for Venue
func (Venue) TableName() string {
	return "venues"
}

// Rate is the immutable pricing snapshot consumed at booking start.
// Address and district ride along for display only.
type Rate struct {
	VenueID     uuid.UUID `json:"venue_id"`
	HourlyRate  float64   `json:"hourly_rate"`
	MaxCapacity int       `json:"max_capacity"`
	Address     string    `json:"address"`
	District    string    `json:"district"`
}
