package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste el inventario inicial. product_id es PK: crear dos veces es ErrDuplicate.
func (r *InventoryRepo) Create(inventory *entity.ProductInventory) error {
	query := `
		INSERT INTO product_inventory (product_id, available_quantity, reserved_quantity, last_updated)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		inventory.ProductID, inventory.Available, inventory.Reserved, inventory.LastUpdated,
	)
	if err != nil {
		return mapPgError(err, "insert inventory", domain.ErrDuplicate)
	}
	return nil
}

// GetByProductID obtiene el inventario de un producto. (nil, nil) si no existe.
func (r *InventoryRepo) GetByProductID(productID string) (*entity.ProductInventory, error) {
	var inv entity.ProductInventory
	err := r.q.QueryRow(context.Background(),
		`SELECT product_id, available_quantity, reserved_quantity, last_updated
		 FROM product_inventory WHERE product_id = $1`, productID,
	).Scan(&inv.ProductID, &inv.Available, &inv.Reserved, &inv.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// Update persiste el par disponible/reservado tras reserve/release/clear.
func (r *InventoryRepo) Update(inventory *entity.ProductInventory) error {
	query := `
		UPDATE product_inventory SET available_quantity = $2, reserved_quantity = $3, last_updated = $4
		WHERE product_id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		inventory.ProductID, inventory.Available, inventory.Reserved, inventory.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
