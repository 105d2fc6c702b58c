package database

import (
	"festly/internal/booking"
	"festly/internal/catalog"
	"festly/internal/users"
	"festly/internal/venues"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&venues.Venue{},
		&catalog.Item{},
		&booking.Reservation{},
		&booking.ReservationItem{},
	)
}
