package inventory

import (
	"Pantry-Inventory/domain"
	"Pantry-Inventory/entities"
	"context"
	"fmt"

	"gorm.io/gorm"
)

const insertBatchSize = 100

type (
	// InventoryRepository stores the whole ingredient collection as one unit.
	// Load never exposes a partial read and Replace overwrites prior content in
	// full.
	InventoryRepository interface {
		Load(ctx context.Context) ([]entities.IngredientRecord, error)
		Replace(ctx context.Context, records []entities.IngredientRecord) error
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

// NewInventoryRepository keeps the collection in the ingredients table of db.
func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Load(ctx context.Context) ([]entities.IngredientRecord, error) {
	var records []entities.IngredientRecord
	if err := r.db.WithContext(ctx).Order("id asc").Find(&records).Error; err != nil {
		return nil, storageUnavailable(err)
	}
	if records == nil {
		records = []entities.IngredientRecord{}
	}
	return records, nil
}

func (r *inventoryRepository) Replace(ctx context.Context, records []entities.IngredientRecord) error {
	batch := make([]entities.IngredientRecord, len(records))
	copy(batch, records)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.IngredientRecord{}).Error; err != nil {
			return err
		}
		if len(batch) == 0 {
			return nil
		}
		return tx.CreateInBatches(&batch, insertBatchSize).Error
	})
	if err != nil {
		return storageUnavailable(err)
	}
	return nil
}

func storageUnavailable(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
}

func corruptData(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrCorruptData, err)
}
