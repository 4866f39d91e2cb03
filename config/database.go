package config

import (
	"fmt"
	"log"
	"os"

	"github.com/ahmadnzr/fintrack-by-ai/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func buildDSN() string {
	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	port := os.Getenv("DB_PORT")
	sslmode := os.Getenv("DB_SSLMODE")
	if port == "" {
		port = "5432"
	}
	if sslmode == "" {
		sslmode = "disable"
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		host, user, password, name, port, sslmode)
}

func ConnectDB() {
	var err error
	DB, err = gorm.Open(postgres.Open(buildDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Fail to connect to db : %v", err)
	}

	fmt.Println("Successfully connected to db")
}

// Migrate creates the schema and the overlap exclusion constraint on
// bookings. The constraint makes the database reject a second active
// booking whose time range intersects an existing one for the same room,
// so concurrent create requests cannot both commit.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.UserSettings{},
		&models.Category{},
		&models.Tag{},
		&models.Transaction{},
		&models.Facility{},
		&models.Room{},
		&models.Booking{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return fmt.Errorf("create btree_gist: %w", err)
	}

	err := db.Exec(`
		ALTER TABLE bookings
		ADD CONSTRAINT bookings_room_time_excl
		EXCLUDE USING gist (
			room_id WITH =,
			tstzrange(start_time, end_time) WITH &&
		) WHERE (status IN ('pending', 'confirmed'))
	`).Error
	if err != nil {
		// Re-running migrations must stay idempotent.
		var exists bool
		db.Raw(`SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'bookings_room_time_excl')`).Scan(&exists)
		if !exists {
			return fmt.Errorf("create exclusion constraint: %w", err)
		}
	}

	return nil
}
