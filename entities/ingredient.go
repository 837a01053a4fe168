package entities

import (
	"github.com/shopspring/decimal"
)

func init() {
	// quantities are plain JSON numbers in the persisted list and in responses
	decimal.MarshalJSONWithoutQuotes = true
}

type IngredientRecord struct {
	ID             int64           `gorm:"primaryKey;autoIncrement:false" json:"id"`
	UserID         int64           `gorm:"index;not null" json:"user_id"`
	IngredientName string          `json:"ingredient_name"`
	Quantity       decimal.Decimal `gorm:"type:numeric" json:"quantity"`
	Unit           string          `json:"unit"`
	ExpiryDate     string          `json:"expiry_date"` // ISO-8601, as submitted
}

func (IngredientRecord) TableName() string {
	return "ingredients"
}
