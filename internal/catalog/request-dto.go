package catalog

// CreateItemRequest represents the admin create payload
type CreateItemRequest struct {
	VenueID     string  `json:"venue_id" binding:"required,uuid"`
	Name        string  `json:"name" binding:"required,min=2,max=150"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gte=0"`
	Category    string  `json:"category" binding:"required"`
	Subcategory string  `json:"subcategory,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
}

// UpdateItemRequest represents the admin update payload (partial)
type UpdateItemRequest struct {
	Name        *string  `json:"name,omitempty"`
	UnitPrice   *float64 `json:"unit_price,omitempty"`
	Subcategory *string  `json:"subcategory,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}
