package venues

// VenueListResponse wraps a paginated venue listing
type VenueListResponse struct {
	Venues []Venue `json:"venues"`
	Total  int64   `json:"total"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}
