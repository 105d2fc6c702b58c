package catalog

import (
	"context"
	"fmt"

	"festly/internal/shared/constants"
	"festly/pkg/cache"

	"github.com/google/uuid"
)

// Provider exposes the read-only catalog lookup the booking workflow
// consumes. Ids are stable across calls within one session.
type Provider interface {
	GetCatalog(ctx context.Context, venueID uuid.UUID) ([]Item, error)
}

// Service interface defines the contract for catalog business logic
type Service interface {
	Provider

	CreateItem(ctx context.Context, req CreateItemRequest) (*Item, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (*Item, error)
	UpdateItem(ctx context.Context, itemID uuid.UUID, req UpdateItemRequest) (*Item, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
}

type service struct {
	repo  Repository
	cache cache.Service
}

// NewService creates a new catalog service instance
func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{
		repo:  repo,
		cache: cacheService,
	}
}

// GetCatalog returns all active items for a venue, cached per venue
func (s *service) GetCatalog(ctx context.Context, venueID uuid.UUID) ([]Item, error) {
	if s.cache == nil {
		return s.repo.GetByVenueID(ctx, venueID)
	}

	var items []Item
	err := s.cache.GetOrSet(ctx,
		constants.BuildCatalogByVenueKey(venueID.String()),
		constants.TTL_CATALOG_BY_VENUE,
		func() (interface{}, error) {
			return s.repo.GetByVenueID(ctx, venueID)
		},
		&items,
	)
	if err != nil {
		return s.repo.GetByVenueID(ctx, venueID)
	}
	return items, nil
}

func (s *service) CreateItem(ctx context.Context, req CreateItemRequest) (*Item, error) {
	if !IsValidCategory(req.Category) {
		return nil, fmt.Errorf("invalid category: %s", req.Category)
	}

	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID: %w", err)
	}

	item := &Item{
		VenueID:     venueID,
		Name:        req.Name,
		UnitPrice:   req.UnitPrice,
		Category:    Category(req.Category),
		Subcategory: req.Subcategory,
		Stock:       req.Stock,
		Active:      true,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.invalidateCatalogCache(ctx)
	return item, nil
}

func (s *service) GetItem(ctx context.Context, itemID uuid.UUID) (*Item, error) {
	return s.repo.GetByID(ctx, itemID)
}

func (s *service) UpdateItem(ctx context.Context, itemID uuid.UUID, req UpdateItemRequest) (*Item, error) {
	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}
	if req.Subcategory != nil {
		item.Subcategory = *req.Subcategory
	}
	if req.Stock != nil {
		item.Stock = req.Stock
	}
	if req.Active != nil {
		item.Active = *req.Active
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.invalidateCatalogCache(ctx)
	return item, nil
}

func (s *service) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	if err := s.repo.Delete(ctx, itemID); err != nil {
		return err
	}
	s.invalidateCatalogCache(ctx)
	return nil
}

func (s *service) invalidateCatalogCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_CATALOG)
}
