package inventory

import (
	"Pantry-Inventory/entities"
	"Pantry-Inventory/internal/utils/storage"
	"context"
	"errors"
)

type s3Repository struct {
	s3  storage.AwsS3
	key string
}

// NewS3Repository keeps the collection as one JSON object under key. A missing
// object reads as an empty collection.
func NewS3Repository(s3 storage.AwsS3, key string) InventoryRepository {
	return &s3Repository{s3: s3, key: key}
}

func (r *s3Repository) Load(ctx context.Context) ([]entities.IngredientRecord, error) {
	body, err := r.s3.GetObject(ctx, r.key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return []entities.IngredientRecord{}, nil
		}
		return nil, storageUnavailable(err)
	}
	return decodeRecords(body)
}

func (r *s3Repository) Replace(ctx context.Context, records []entities.IngredientRecord) error {
	data, err := encodeRecords(records)
	if err != nil {
		return err
	}
	if err := r.s3.PutObject(ctx, r.key, data, "application/json"); err != nil {
		return storageUnavailable(err)
	}
	return nil
}
