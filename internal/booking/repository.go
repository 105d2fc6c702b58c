package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrReservationNotFound = errors.New("reservation not found")

type Repository interface {
	Create(ctx context.Context, reservation *Reservation) error
	GetByCode(ctx context.Context, code string) (*Reservation, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create writes the reservation and its item lines in one transaction
func (r *repository) Create(ctx context.Context, reservation *Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(reservation).Error
	})
}

func (r *repository) GetByCode(ctx context.Context, code string) (*Reservation, error) {
	var reservation Reservation
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("confirmation_code = ?", code).
		First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &reservation, nil
}
