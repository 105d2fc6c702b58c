package venues

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrVenueNotFound = errors.New("venue not found")

type Repository interface {
	Create(ctx context.Context, venue *Venue) error
	GetByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	List(ctx context.Context, filters VenueFilters) ([]Venue, int64, error)
	Update(ctx context.Context, venue *Venue) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, venue *Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	var venue Venue
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&venue).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &venue, nil
}

func (r *repository) List(ctx context.Context, filters VenueFilters) ([]Venue, int64, error) {
	var venuesList []Venue
	var total int64

	query := r.db.WithContext(ctx).Model(&Venue{}).Where("active = ?", true)

	if filters.District != "" {
		query = query.Where("district = ?", filters.District)
	}
	if filters.MinCapacity > 0 {
		query = query.Where("max_capacity >= ?", filters.MinCapacity)
	}
	if filters.MaxHourlyRate > 0 {
		query = query.Where("hourly_rate <= ?", filters.MaxHourlyRate)
	}
	if filters.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filters.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	limit := filters.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&venuesList).Error
	if err != nil {
		return nil, 0, err
	}

	return venuesList, total, nil
}

func (r *repository) Update(ctx context.Context, venue *Venue) error {
	result := r.db.WithContext(ctx).Save(venue)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVenueNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	// Soft deactivate, reservations keep referencing the row
	result := r.db.WithContext(ctx).Model(&Venue{}).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVenueNotFound
	}
	return nil
}
