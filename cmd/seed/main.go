package main

import (
	"context"
	"fmt"
	"log"

	"festly/internal/catalog"
	"festly/internal/shared/config"
	"festly/internal/shared/database"
	"festly/internal/users"
	"festly/internal/venues"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Festly Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Ensure schema exists before seeding
	if err := database.Migrate(db.GetPostgreSQL()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"reservation_items",
		"reservations",
		"catalog_items",
		"venues",
		"users",
	}

	tx := s.db.GetPostgreSQL().Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	if err := s.SeedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	venueIDs, err := s.SeedVenues()
	if err != nil {
		return fmt.Errorf("failed to seed venues: %w", err)
	}

	if err := s.SeedCatalog(venueIDs); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if s.db.GetRedis() != nil {
		if err := s.db.GetRedis().FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// SeedUsers creates 1 admin and 1 regular user
func (s *Seeder) SeedUsers() error {
	fmt.Println("  👤 Seeding users...")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	seedUsers := []users.User{
		{
			FirstName: "Admin",
			LastName:  "Festly",
			Email:     "admin@festly.com",
			Password:  string(hashedPassword),
			Role:      users.RoleAdmin,
		},
		{
			FirstName: "Maria",
			LastName:  "Quispe",
			Email:     "maria@example.com",
			Password:  string(hashedPassword),
			Role:      users.RoleUser,
		},
	}

	for _, u := range seedUsers {
		user := u
		if err := s.db.GetPostgreSQL().Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.Email, err)
		}
		fmt.Printf("    Created user: %s (%s)\n", user.Email, user.Role)
	}

	return nil
}

// SeedVenues creates rental venues with hourly rates
func (s *Seeder) SeedVenues() (map[string]uuid.UUID, error) {
	fmt.Println("  🏛️  Seeding venues...")

	venueIDs := make(map[string]uuid.UUID)

	seedVenues := []venues.Venue{
		{
			Name:        "Salón Primavera",
			Description: "Salón amplio con iluminación natural, ideal para matrimonios y quinceañeros",
			Address:     "Av. Las Flores 450",
			District:    "San Borja",
			HourlyRate:  500,
			MaxCapacity: 150,
			Active:      true,
		},
		{
			Name:        "Casa Colonial",
			Description: "Casona restaurada con patio central para eventos al aire libre",
			Address:     "Jr. Ancash 120",
			District:    "Barranco",
			HourlyRate:  350,
			MaxCapacity: 80,
			Active:      true,
		},
		{
			Name:        "Terraza Miraflores",
			Description: "Terraza con vista al mar, equipada para recepciones nocturnas",
			Address:     "Malecón Cisneros 890",
			District:    "Miraflores",
			HourlyRate:  700,
			MaxCapacity: 200,
			Active:      true,
		},
	}

	for _, v := range seedVenues {
		venue := v
		if err := s.db.GetPostgreSQL().Create(&venue).Error; err != nil {
			return nil, fmt.Errorf("failed to create venue %s: %w", v.Name, err)
		}
		venueIDs[venue.Name] = venue.ID
		fmt.Printf("    Created venue: %s (S/ %.0f per hour)\n", venue.Name, venue.HourlyRate)
	}

	return venueIDs, nil
}

// SeedCatalog creates furniture and service items per venue, including
// the four mandatory services every reservation carries
func (s *Seeder) SeedCatalog(venueIDs map[string]uuid.UUID) error {
	fmt.Println("  🪑 Seeding catalog items...")

	intPtr := func(n int) *int { return &n }

	for name, venueID := range venueIDs {
		items := []catalog.Item{
			// Exclusive single-choice groups: one table model, one chair model
			{VenueID: venueID, Name: "Mesa redonda", UnitPrice: 25, Category: catalog.CategoryFurniture, Subcategory: "tables", Stock: intPtr(30), Active: true},
			{VenueID: venueID, Name: "Mesa rectangular", UnitPrice: 20, Category: catalog.CategoryFurniture, Subcategory: "tables", Stock: intPtr(40), Active: true},
			{VenueID: venueID, Name: "Silla tiffany", UnitPrice: 8, Category: catalog.CategoryFurniture, Subcategory: "chairs", Stock: intPtr(250), Active: true},
			{VenueID: venueID, Name: "Silla plegable", UnitPrice: 5, Category: catalog.CategoryFurniture, Subcategory: "chairs", Stock: intPtr(300), Active: true},

			// Optional services
			{VenueID: venueID, Name: "Toldo", UnitPrice: 150, Category: catalog.CategoryService, Active: true},
			{VenueID: venueID, Name: "Equipo de sonido", UnitPrice: 200, Category: catalog.CategoryService, Active: true},

			// Mandatory services, auto-included at quantity 1
			{VenueID: venueID, Name: "Limpieza", UnitPrice: 100, Category: catalog.CategoryMandatory, Active: true},
			{VenueID: venueID, Name: "Seguridad", UnitPrice: 200, Category: catalog.CategoryMandatory, Active: true},
			{VenueID: venueID, Name: "Servicios higiénicos", UnitPrice: 80, Category: catalog.CategoryMandatory, Active: true},
			{VenueID: venueID, Name: "Garantía", UnitPrice: 150, Category: catalog.CategoryMandatory, Active: true},
		}

		for _, it := range items {
			item := it
			if err := s.db.GetPostgreSQL().Create(&item).Error; err != nil {
				return fmt.Errorf("failed to create catalog item %s: %w", it.Name, err)
			}
		}
		fmt.Printf("    Created %d catalog items for %s\n", len(items), name)
	}

	return nil
}
