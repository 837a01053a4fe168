package inventory

import (
	"Pantry-Inventory/entities"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

type fileRepository struct {
	path string
}

// NewFileRepository keeps the collection as a JSON array in the file at path.
// The file is created holding an empty list when it does not exist yet.
func NewFileRepository(path string) (InventoryRepository, error) {
	r := &fileRepository{path: path}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, storageUnavailable(err)
		}
		if err := r.Replace(context.Background(), nil); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, storageUnavailable(err)
	}

	return r, nil
}

func (r *fileRepository) Load(ctx context.Context) ([]entities.IngredientRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, storageUnavailable(err)
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, storageUnavailable(err)
	}
	return decodeRecords(data)
}

// Replace writes to a temporary file next to the target and renames it into
// place, so readers see either the old list or the new one.
func (r *fileRepository) Replace(ctx context.Context, records []entities.IngredientRecord) error {
	if err := ctx.Err(); err != nil {
		return storageUnavailable(err)
	}

	data, err := encodeRecords(records)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".ingredients-*.tmp")
	if err != nil {
		return storageUnavailable(err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return storageUnavailable(err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return storageUnavailable(err)
	}
	if err := tmp.Close(); err != nil {
		return storageUnavailable(err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return storageUnavailable(err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return storageUnavailable(err)
	}
	return nil
}

func decodeRecords(data []byte) ([]entities.IngredientRecord, error) {
	var records []entities.IngredientRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, corruptData(err)
	}
	if records == nil {
		records = []entities.IngredientRecord{}
	}
	return records, nil
}

func encodeRecords(records []entities.IngredientRecord) ([]byte, error) {
	if records == nil {
		records = []entities.IngredientRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, storageUnavailable(err)
	}
	return append(data, '\n'), nil
}
