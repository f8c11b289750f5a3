package entity

import (
	"fmt"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// ProductInventory inventario 1:1 con Product (identidad compartida por
// ProductID). Available y Reserved se mueven siempre como par y nunca
// quedan negativos.
type ProductInventory struct {
	ProductID   string
	Available   int
	Reserved    int
	LastUpdated time.Time
}

// NewProductInventory construye el inventario inicial de un producto.
// Se crea una sola vez por producto; un segundo create es conflicto del store.
func NewProductInventory(productID string, initialQuantity int, now time.Time) (*ProductInventory, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product id is required", domain.ErrInvalidInventoryOp)
	}
	if initialQuantity < 0 {
		return nil, fmt.Errorf("%w: initial quantity cannot be negative", domain.ErrInvalidInventoryOp)
	}
	return &ProductInventory{
		ProductID:   productID,
		Available:   initialQuantity,
		Reserved:    0,
		LastUpdated: now,
	}, nil
}

// Reserve mueve unidades de disponible a reservado.
func (i *ProductInventory) Reserve(quantity int, now time.Time) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: reserve quantity must be positive", domain.ErrInvalidInventoryOp)
	}
	if i.Available < quantity {
		return fmt.Errorf("%w: %d requested, %d available", domain.ErrInsufficientStock, quantity, i.Available)
	}
	i.Available -= quantity
	i.Reserved += quantity
	i.LastUpdated = now
	return nil
}

// Release devuelve unidades reservadas al disponible.
func (i *ProductInventory) Release(quantity int, now time.Time) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: release quantity must be positive", domain.ErrInvalidInventoryOp)
	}
	if i.Reserved < quantity {
		return fmt.Errorf("%w: cannot release more than reserved", domain.ErrInvalidInventoryOp)
	}
	i.Reserved -= quantity
	i.Available += quantity
	i.LastUpdated = now
	return nil
}

// ClearReservations devuelve todo lo reservado al disponible. Idempotente.
func (i *ProductInventory) ClearReservations(now time.Time) {
	if i.Reserved == 0 {
		return
	}
	i.Available += i.Reserved
	i.Reserved = 0
	i.LastUpdated = now
}

// AvailableStock unidades vendibles en este momento.
func (i *ProductInventory) AvailableStock() int {
	return i.Available
}
