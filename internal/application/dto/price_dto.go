package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePriceRequest entrada para crear un precio.
type CreatePriceRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Currency  string          `json:"currency" validate:"required,len=3"`
	Amount    decimal.Decimal `json:"amount" validate:"required"`
}

// ChangePriceRequest entrada para cambiar el monto de un precio vigente.
type ChangePriceRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// PriceResponse salida de un precio.
type PriceResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Currency  string          `json:"currency"`
	Amount    decimal.Decimal `json:"amount"`
	ValidFrom time.Time       `json:"valid_from"`
	ValidTo   *time.Time      `json:"valid_to,omitempty"`
}
