package bulkimport

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// CatalogueTx es la transacción de un lote: expone los repositorios del
// catálogo atados a ella y ejecuta cada paso en su propio savepoint.
type CatalogueTx interface {
	Categories() repository.CategoryRepository
	Products() repository.ProductRepository
	Inventory() repository.InventoryRepository
	Prices() repository.PriceRepository

	// Step corre fn como paso aislado dentro de la transacción del lote. En
	// PostgreSQL un statement fallido deja la transacción abortada (25P02);
	// Step revierte solo el paso que falló y la transacción sigue utilizable
	// para los pasos e items siguientes.
	Step(fn func() error) error
}

// CatalogueTxRunner ejecuta una función dentro de una transacción de BD. Es
// la unidad de trabajo por lote: un fallo dentro del lote N nunca deshace los
// lotes 1..N-1 ni impide intentar el lote N+1.
type CatalogueTxRunner interface {
	Run(ctx context.Context, fn func(tx CatalogueTx) error) error
}
