package migration

import (
	"Pantry-Inventory/entities"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Migrate creates the ingredients table when it does not exist yet.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.IngredientRecord{}); err != nil {
		return fmt.Errorf("error migrating ingredients table: %w", err)
	}

	log.Info("Database migration complete")
	return nil
}
