package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessAddIngredient     = "ingredient added"
	MessageSuccessDeleteIngredient  = "ingredient deleted"
	MessageSuccessGetIngredients    = "ingredients retrieved successfully"
	MessageSuccessGetExpiringSoon   = "expiring ingredients retrieved successfully"
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"

	MessageFailedAddIngredient     = "failed to add ingredient"
	MessageFailedDeleteIngredient  = "failed to delete ingredient"
	MessageFailedGetIngredients    = "failed to retrieve ingredients"
	MessageFailedGetExpiringSoon   = "failed to retrieve expiring ingredients"
	MessageFailedGetDashboardStats = "failed to retrieve dashboard statistics"

	ErrInvalidUserID      = fmt.Errorf("%w: user id must be an integer", ErrInvalidInput)
	ErrInvalidExpiryDate  = fmt.Errorf("%w: expiry date must be an ISO-8601 date", ErrInvalidInput)
	ErrInvalidRequestBody = fmt.Errorf("%w: malformed request body", ErrInvalidInput)
)

const (
	StatusSafe    = "Safe"
	StatusWarning = "Warning"
	StatusExpired = "Expired"

	DefaultExpiryWindowDays = 3
)

type (
	AddIngredientRequest struct {
		IngredientName string          `json:"ingredient_name" validate:"required"`
		Quantity       decimal.Decimal `json:"quantity"`
		Unit           string          `json:"unit"`
		ExpiryDate     string          `json:"expiry_date" validate:"required,isodate"`
	}

	IngredientResponse struct {
		ID             int64           `json:"id"`
		UserID         int64           `json:"user_id"`
		IngredientName string          `json:"ingredient_name"`
		Quantity       decimal.Decimal `json:"quantity"`
		Unit           string          `json:"unit"`
		ExpiryDate     string          `json:"expiry_date"`
		Status         string          `json:"status,omitempty"`
	}

	DashboardStatsResponse struct {
		TotalItems   int `json:"total_items"`
		SafeItems    int `json:"safe_items"`
		WarningItems int `json:"warning_items"`
		ExpiredItems int `json:"expired_items"`
	}
)

// IsInvalidInput reports whether err should be answered as a client error.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
