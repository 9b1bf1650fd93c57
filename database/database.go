package database

import (
	"fmt"
	"log"

	"commission-app/config"
	"commission-app/internal/domain/artists"
	"commission-app/internal/domain/billing"
	"commission-app/internal/domain/commissions"
	"commission-app/internal/domain/notifications"
	"commission-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := config.DB_URL
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := Open(dsn)
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate enables pgcrypto (uuid defaults) and migrates every model.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		return fmt.Errorf("enable pgcrypto: %w", err)
	}

	return db.AutoMigrate(
		// accounts
		&users.User{},
		&users.Profile{},

		// artists
		&artists.Artist{},
		&artists.PortfolioItem{},

		// commissions
		&commissions.Category{},
		&commissions.Commission{},
		&commissions.Revision{},

		// payments
		&billing.PaymentMethod{},
		&billing.Payment{},

		&notifications.Notification{},
	)
}
