package database

import (
	"encoding/json"
	"os"

	"gorm.io/gorm"

	"github.com/rizzwaaaan/restaurant-software/models"
)

// Migrate creates or updates the four tables. This is the single schema
// the service runs on; there is no ad hoc column drift outside it.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Reservation{},
		&models.MenuItem{},
		&models.Order{},
		&models.Payment{},
	)
}

// SeedMenu loads catalog items from a JSON file into an empty catalog.
// The menu has no write endpoint, so this is the out-of-band path that
// fills it. A non-empty catalog is left alone.
func SeedMenu(db *gorm.DB, path string) error {
	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var items []models.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	return db.Create(&items).Error
}
