package venues

// CreateVenueRequest represents the admin create payload
type CreateVenueRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=150"`
	Description string  `json:"description"`
	Address     string  `json:"address" binding:"required"`
	District    string  `json:"district"`
	HourlyRate  float64 `json:"hourly_rate" binding:"required,gt=0"`
	MaxCapacity int     `json:"max_capacity" binding:"required,gt=0"`
}

// UpdateVenueRequest represents the admin update payload (partial)
type UpdateVenueRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Address     *string  `json:"address,omitempty"`
	District    *string  `json:"district,omitempty"`
	HourlyRate  *float64 `json:"hourly_rate,omitempty"`
	MaxCapacity *int     `json:"max_capacity,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// VenueFilters represents browse/search query parameters
type VenueFilters struct {
	District      string  `form:"district"`
	MinCapacity   int     `form:"min_capacity"`
	MaxHourlyRate float64 `form:"max_hourly_rate"`
	Search        string  `form:"search"`
	Page          int     `form:"page"`
	Limit         int     `form:"limit"`
}
