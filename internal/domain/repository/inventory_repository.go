package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para ProductInventory (DIP).
// La fila es 1:1 con el producto; Create de un productID existente es ErrDuplicate.
type InventoryRepository interface {
	Create(inventory *entity.ProductInventory) error
	GetByProductID(productID string) (*entity.ProductInventory, error)
	Update(inventory *entity.ProductInventory) error
}
