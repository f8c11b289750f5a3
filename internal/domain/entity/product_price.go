package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// CurrencyCodeLen longitud de un código de moneda ISO 4217 (USD, COP, EUR).
const CurrencyCodeLen = 3

// ProductPrice precio de un producto en una moneda, con ventana de vigencia.
// ValidTo == nil significa que el precio sigue vigente.
type ProductPrice struct {
	ID        string
	ProductID string
	Currency  string
	Amount    decimal.Decimal
	ValidFrom time.Time
	ValidTo   *time.Time
}

// NewProductPrice valida y construye un precio vigente desde now.
func NewProductPrice(productID, currency string, amount decimal.Decimal, now time.Time) (*ProductPrice, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product id is required", domain.ErrInvalidPrice)
	}
	cur, err := normalizeCurrency(currency)
	if err != nil {
		return nil, err
	}
	if !amount.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidPrice)
	}
	return &ProductPrice{
		ID:        uuid.New().String(),
		ProductID: productID,
		Currency:  cur,
		Amount:    amount,
		ValidFrom: now,
		ValidTo:   nil,
	}, nil
}

// ChangeAmount cambia el monto manteniendo la vigencia.
func (p *ProductPrice) ChangeAmount(newAmount decimal.Decimal) error {
	if !newAmount.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive", domain.ErrInvalidPrice)
	}
	p.Amount = newAmount
	return nil
}

// Expire cierra la ventana de vigencia en now. Idempotente.
func (p *ProductPrice) Expire(now time.Time) {
	if p.ValidTo != nil {
		return
	}
	p.ValidTo = &now
}

// IsActiveNow indica si el precio está vigente en este momento.
func (p *ProductPrice) IsActiveNow() bool {
	return p.IsActiveAt(time.Now())
}

// IsActiveAt indica si el precio está vigente en el instante dado.
func (p *ProductPrice) IsActiveAt(moment time.Time) bool {
	if moment.Before(p.ValidFrom) {
		return false
	}
	return p.ValidTo == nil || moment.Before(*p.ValidTo)
}

func normalizeCurrency(currency string) (string, error) {
	cur := strings.ToUpper(strings.TrimSpace(currency))
	if cur == "" {
		return "", fmt.Errorf("%w: currency cannot be blank", domain.ErrInvalidPrice)
	}
	if len(cur) > CurrencyCodeLen {
		return "", fmt.Errorf("%w: currency must be an ISO 4217 code of at most %d characters", domain.ErrInvalidPrice, CurrencyCodeLen)
	}
	return cur, nil
}
