package booking

import (
	"time"

	"github.com/google/uuid"
)

// Reservation is the durable record written at the single commit point
// of the workflow. Guest details, window, and the frozen breakdown are
// denormalized onto it so the record stands alone even if the venue's
// rates or catalog change later.
type Reservation struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ConfirmationCode string    `gorm:"uniqueIndex;not null" json:"confirmation_code"`
	VenueID          uuid.UUID `gorm:"type:uuid;index;not null" json:"venue_id"`

	GuestFirstName string `gorm:"not null" json:"guest_first_name"`
	GuestLastName  string `gorm:"not null" json:"guest_last_name"`
	GuestEmail     string `gorm:"index;not null" json:"guest_email"`
	GuestPhone     string `gorm:"not null" json:"guest_phone"`
	GuestDocument  string `gorm:"not null" json:"guest_document"`
	GuestCount     int    `gorm:"not null" json:"guest_count"`

	StartTime   string `gorm:"not null" json:"start_time"`
	EndTime     string `gorm:"not null" json:"end_time"`
	BilledHours int    `gorm:"not null" json:"billed_hours"`

	HourlyRate    float64 `gorm:"not null" json:"hourly_rate"`
	VenueCost     float64 `gorm:"not null" json:"venue_cost"`
	FurnitureCost float64 `gorm:"not null" json:"furniture_cost"`
	MandatoryCost float64 `gorm:"not null" json:"mandatory_cost"`
	Subtotal      float64 `gorm:"not null" json:"subtotal"`
	Tax           float64 `gorm:"not null" json:"tax"`
	Total         float64 `gorm:"not null" json:"total"`

	PaymentMethod string `gorm:"not null" json:"payment_method"`
	ApprovalToken string `json:"-"`

	Items []ReservationItem `gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for Reservation
func (Reservation) TableName() string {
	return "reservations"
}

// ReservationItem is one priced ledger line captured at confirmation.
// Name and unit price are copied from the catalog at commit time.
type ReservationItem struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ReservationID uuid.UUID `gorm:"type:uuid;index;not null" json:"reservation_id"`
	CatalogItemID uuid.UUID `gorm:"type:uuid;not null" json:"catalog_item_id"`
	Name          string    `gorm:"not null" json:"name"`
	Category      string    `gorm:"not null" json:"category"`
	UnitPrice     float64   `gorm:"not null" json:"unit_price"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	LineTotal     float64   `gorm:"not null" json:"line_total"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName sets the table name for ReservationItem
func (ReservationItem) TableName() string {
	return "reservation_items"
}
