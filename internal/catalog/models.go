package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies how an item participates in pricing.
// Mandatory items are auto-included in every booking at quantity 1
// and cannot be removed by the guest.
type Category string

const (
	CategoryFurniture Category = "FURNITURE"
	CategoryService   Category = "SERVICE"
	CategoryMandatory Category = "MANDATORY"
)

func IsValidCategory(category string) bool {
	switch Category(category) {
	case CategoryFurniture, CategoryService, CategoryMandatory:
		return true
	default:
		return false
	}
}

// Item is one rentable furniture piece or service offered with a venue.
// Subcategory groups exclusive single-choice items (e.g. table models,
// chair models): choosing one item of a subcategory replaces any other
// selection in the same subcategory.
type Item struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	VenueID     uuid.UUID `gorm:"type:uuid;index;not null" json:"venue_id"`
	Name        string    `gorm:"not null" json:"name"`
	UnitPrice   float64   `gorm:"not null" json:"unit_price"`
	Category    Category  `gorm:"type:varchar(20);not null;check:category IN ('FURNITURE', 'SERVICE', 'MANDATORY')" json:"category"`
	Subcategory string    `gorm:"index" json:"subcategory,omitempty"`
	Stock       *int      `json:"stock,omitempty"` // nil means unlimited
	Active      bool      `gorm:"default:true" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the table name for Item
func (Item) TableName() string {
	return "catalog_items"
}

// IsMandatory reports whether the item is auto-included and non-removable
func (i *Item) IsMandatory() bool {
	return i.Category == CategoryMandatory
}
