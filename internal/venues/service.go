package venues

import (
	"context"

	"festly/internal/shared/constants"
	"festly/pkg/cache"

	"github.com/google/uuid"
)

// RateProvider exposes the immutable pricing snapshot the booking
// workflow fetches once when a session starts.
type RateProvider interface {
	GetVenueRate(ctx context.Context, venueID uuid.UUID) (*Rate, error)
}

// Service interface defines the contract for venue business logic
type Service interface {
	RateProvider

	CreateVenue(ctx context.Context, req CreateVenueRequest) (*Venue, error)
	GetVenue(ctx context.Context, venueID uuid.UUID) (*Venue, error)
	ListVenues(ctx context.Context, filters VenueFilters) (*VenueListResponse, error)
	UpdateVenue(ctx context.Context, venueID uuid.UUID, req UpdateVenueRequest) (*Venue, error)
	DeleteVenue(ctx context.Context, venueID uuid.UUID) error
}

type service struct {
	repo  Repository
	cache cache.Service
}

// NewService creates a new venue service instance
func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{
		repo:  repo,
		cache: cacheService,
	}
}

func (s *service) CreateVenue(ctx context.Context, req CreateVenueRequest) (*Venue, error) {
	venue := &Venue{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		District:    req.District,
		HourlyRate:  req.HourlyRate,
		MaxCapacity: req.MaxCapacity,
		Active:      true,
	}

	if err := s.repo.Create(ctx, venue); err != nil {
		return nil, err
	}

	s.invalidateVenueCache(ctx)
	return venue, nil
}

func (s *service) GetVenue(ctx context.Context, venueID uuid.UUID) (*Venue, error) {
	if s.cache == nil {
		return s.repo.GetByID(ctx, venueID)
	}

	var venue Venue
	err := s.cache.GetOrSet(ctx,
		constants.BuildVenueDetailKey(venueID.String()),
		constants.TTL_VENUE_DETAIL,
		func() (interface{}, error) {
			return s.repo.GetByID(ctx, venueID)
		},
		&venue,
	)
	if err != nil {
		// Cache path failed, fall back to repository directly
		return s.repo.GetByID(ctx, venueID)
	}
	return &venue, nil
}

func (s *service) ListVenues(ctx context.Context, filters VenueFilters) (*VenueListResponse, error) {
	venuesList, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	limit := filters.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	return &VenueListResponse{
		Venues: venuesList,
		Total:  total,
		Page:   page,
		Limit:  limit,
	}, nil
}

func (s *service) UpdateVenue(ctx context.Context, venueID uuid.UUID, req UpdateVenueRequest) (*Venue, error) {
	venue, err := s.repo.GetByID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.Description != nil {
		venue.Description = *req.Description
	}
	if req.Address != nil {
		venue.Address = *req.Address
	}
	if req.District != nil {
		venue.District = *req.District
	}
	if req.HourlyRate != nil {
		venue.HourlyRate = *req.HourlyRate
	}
	if req.MaxCapacity != nil {
		venue.MaxCapacity = *req.MaxCapacity
	}
	if req.Active != nil {
		venue.Active = *req.Active
	}

	if err := s.repo.Update(ctx, venue); err != nil {
		return nil, err
	}

	s.invalidateVenueCache(ctx)
	return venue, nil
}

func (s *service) DeleteVenue(ctx context.Context, venueID uuid.UUID) error {
	if err := s.repo.Delete(ctx, venueID); err != nil {
		return err
	}
	s.invalidateVenueCache(ctx)
	return nil
}

// GetVenueRate returns the pricing snapshot for a venue. The result is
// cached: rates change through admin updates, which invalidate the cache.
func (s *service) GetVenueRate(ctx context.Context, venueID uuid.UUID) (*Rate, error) {
	fetch := func() (*Rate, error) {
		venue, err := s.repo.GetByID(ctx, venueID)
		if err != nil {
			return nil, err
		}
		return &Rate{
			VenueID:     venue.ID,
			HourlyRate:  venue.HourlyRate,
			MaxCapacity: venue.MaxCapacity,
			Address:     venue.Address,
			District:    venue.District,
		}, nil
	}

	if s.cache == nil {
		return fetch()
	}

	var rate Rate
	err := s.cache.GetOrSet(ctx,
		constants.BuildVenueRateKey(venueID.String()),
		constants.TTL_VENUE_RATE,
		func() (interface{}, error) { return fetch() },
		&rate,
	)
	if err != nil {
		return fetch()
	}
	return &rate, nil
}

func (s *service) invalidateVenueCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	// Best effort, browsing endpoints tolerate stale entries until TTL
	_ = s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_VENUES)
}
