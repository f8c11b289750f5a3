package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Catalogo-api/internal/application/bulkimport"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// Ensure TxRunner implements bulkimport.CatalogueTxRunner.
var _ bulkimport.CatalogueTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Es la unidad de trabajo por lote del import masivo: cada lote hace
// commit o rollback sin afectar a los lotes ya confirmados.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con la tx del lote y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(tx bulkimport.CatalogueTx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&catalogueTx{ctx: ctx, tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// catalogueTx implementa bulkimport.CatalogueTx sobre una tx de pgx.
type catalogueTx struct {
	ctx context.Context
	tx  pgx.Tx
}

func (t *catalogueTx) Categories() repository.CategoryRepository { return NewCategoryRepository(t.tx) }
func (t *catalogueTx) Products() repository.ProductRepository { return NewProductRepository(t.tx) }
func (t *catalogueTx) Inventory() repository.InventoryRepository { return NewInventoryRepository(t.tx) }
func (t *catalogueTx) Prices() repository.PriceRepository { return NewPriceRepository(t.tx) }

// Step abre un savepoint (Begin sobre una tx pgx emite SAVEPOINT), corre fn
// y lo libera. Si fn falla hace ROLLBACK TO SAVEPOINT: sin eso el primer
// statement fallido dejaría la transacción del lote abortada y todo paso
// posterior fallaría con 25P02.
func (t *catalogueTx) Step(fn func() error) error {
	sp, err := t.tx.Begin(t.ctx)
	if err != nil {
		return fmt.Errorf("savepoint: %w", err)
	}
	if err := fn(); err != nil {
		_ = sp.Rollback(t.ctx)
		return err
	}
	if err := sp.Commit(t.ctx); err != nil {
		return fmt.Errorf("release savepoint: %w", err)
	}
	return nil
}
