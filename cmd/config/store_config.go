package config

import (
	migration "Pantry-Inventory/cmd/database/migrate"
	"Pantry-Inventory/internal/utils"
	"Pantry-Inventory/internal/utils/storage"
	"Pantry-Inventory/pkg/inventory"
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
)

// NewInventoryRepository builds the record store named by STORE_DRIVER.
func NewInventoryRepository(ctx context.Context) (inventory.InventoryRepository, error) {
	switch driver := utils.GetConfig("STORE_DRIVER"); driver {
	case "file":
		path := utils.GetConfig("STORE_PATH")
		log.Infof("using file record store at %s", path)
		return inventory.NewFileRepository(path)

	case "postgres", "sqlite":
		db, err := ConnectDB()
		if err != nil {
			return nil, err
		}
		if err := migration.Migrate(db); err != nil {
			return nil, err
		}
		log.Infof("using %s record store", driver)
		return inventory.NewInventoryRepository(db), nil

	case "s3":
		s3, err := storage.NewAwsS3(ctx)
		if err != nil {
			return nil, err
		}
		key := utils.GetConfig("AWS_S3_KEY")
		log.Infof("using s3 record store at s3://%s/%s", s3.Bucket(), key)
		return inventory.NewS3Repository(s3, key), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
