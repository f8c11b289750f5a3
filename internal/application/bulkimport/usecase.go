package bulkimport

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// Tamaños de lote sustituidos cuando el caller envía valores <= 0.
const (
	DefaultCategoryBatchSize = 10
	DefaultProductBatchSize  = 100
)

// BulkImportUseCase importa categorías y productos (con inventario y precio
// opcionales) por lotes. Cada lote corre en su propia transacción y cada
// consulta o escritura dentro del lote corre como paso con savepoint propio:
// un item malo se reporta y no bloquea a sus vecinos, y un lote fallido no
// deshace los lotes ya confirmados. La fase de categorías termina completa
// antes de iniciar la de productos, porque los productos resuelven su
// categoría por título contra estado ya confirmado.
type BulkImportUseCase struct {
	txRunner CatalogueTxRunner
	log      *logger.Logger
}

// NewBulkImportUseCase construye el caso de uso.
func NewBulkImportUseCase(txRunner CatalogueTxRunner, log *logger.Logger) *BulkImportUseCase {
	return &BulkImportUseCase{txRunner: txRunner, log: log}
}

// ImportData ejecuta la importación completa y devuelve el resumen. Los
// problemas de datos nunca se propagan como error: el éxito parcial es el
// estado terminal normal. Solo un request nulo se rechaza de entrada.
// Tamaños de lote <= 0 se sustituyen por los defaults documentados.
func (uc *BulkImportUseCase) ImportData(ctx context.Context, req *dto.BulkImportRequest, categoryBatchSize, productBatchSize int) (*dto.BulkImportResult, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: bulk import request is required", domain.ErrInvalidInput)
	}
	if categoryBatchSize <= 0 {
		categoryBatchSize = DefaultCategoryBatchSize
	}
	if productBatchSize <= 0 {
		productBatchSize = DefaultProductBatchSize
	}

	report := &importReport{}
	uc.importCategories(ctx, req.Categories, categoryBatchSize, report)
	uc.importProducts(ctx, req.Products, productBatchSize, report)

	uc.log.Info().
		Int("categories_imported", report.categoriesImported).
		Int("products_imported", report.productsImported).
		Int("messages", len(report.validationErrors)+len(report.databaseErrors)+len(report.duplicateWarnings)).
		Msg("importación masiva finalizada")

	return report.result(), nil
}

// stepValue corre una consulta o escritura como paso aislado del lote y
// devuelve su valor.
func stepValue[T any](tx CatalogueTx, fn func() (T, error)) (T, error) {
	var out T
	err := tx.Step(func() error {
		var stepErr error
		out, stepErr = fn()
		return stepErr
	})
	return out, err
}

// ── Fase de categorías ────────────────────────────────────────────────────────

func (uc *BulkImportUseCase) importCategories(ctx context.Context, categories []dto.CategoryImport, batchSize int, report *importReport) {
	batches, err := Partition(categories, batchSize)
	if err != nil {
		// Inalcanzable tras la sustitución de defaults; se reporta por si acaso.
		report.databaseErrorf("Category batches could not be partitioned: %v", err)
		return
	}
	for n, batch := range batches {
		batchReport := &importReport{}
		err := uc.txRunner.Run(ctx, func(tx CatalogueTx) error {
			for _, c := range batch {
				uc.importCategory(tx, c, batchReport)
			}
			return nil
		})
		if err != nil {
			// La tx del lote no confirmó: sus filas quedaron en rollback, así
			// que el reporte del lote se descarta para no contar fantasmas.
			report.databaseErrorf("Category batch failed (batch=%d): %v", n+1, err)
			uc.log.Error().Err(err).Int("batch", n+1).Msg("lote de categorías fallido")
			continue
		}
		report.merge(batchReport)
	}
}

// importCategory procesa un descriptor. Todo resultado por item (duplicado,
// validación, error de BD, éxito) queda registrado exactamente una vez.
func (uc *BulkImportUseCase) importCategory(tx CatalogueTx, c dto.CategoryImport, report *importReport) {
	existing, err := stepValue(tx, func() (*entity.Category, error) {
		return tx.Categories().GetByTitle(c.Title)
	})
	if err != nil {
		report.databaseErrorf("Category '%s': unexpected error: %v", c.Title, err)
		uc.log.Error().Err(err).Str("title", c.Title).Msg("consulta de categoría fallida")
		return
	}
	if existing != nil {
		report.duplicateWarnf("Category '%s' already exists, skipped.", c.Title)
		return
	}

	category, err := entity.NewCategory(c.Title, c.Description, time.Now())
	if err != nil {
		report.validationErrorf("Category '%s': %v", c.Title, err)
		return
	}
	if err := tx.Step(func() error { return tx.Categories().Create(category) }); err != nil {
		// Incluye el duplicado creado por carrera: constraint único del store.
		report.databaseErrorf("Category '%s': unexpected error: %v", c.Title, err)
		uc.log.Error().Err(err).Str("title", c.Title).Msg("creación de categoría fallida")
		return
	}
	report.categoriesImported++
}

// ── Fase de productos ─────────────────────────────────────────────────────────

func (uc *BulkImportUseCase) importProducts(ctx context.Context, products []dto.ProductImport, batchSize int, report *importReport) {
	batches, err := Partition(products, batchSize)
	if err != nil {
		report.databaseErrorf("Product batches could not be partitioned: %v", err)
		return
	}
	for n, batch := range batches {
		batchReport := &importReport{}
		err := uc.txRunner.Run(ctx, func(tx CatalogueTx) error {
			for _, p := range batch {
				uc.importProduct(tx, p, batchReport)
			}
			return nil
		})
		if err != nil {
			report.databaseErrorf("Product batch failed (batch=%d): %v", n+1, err)
			uc.log.Error().Err(err).Int("batch", n+1).Msg("lote de productos fallido")
			continue
		}
		report.merge(batchReport)
	}
}

// importProduct crea el producto y, de forma anticipada, su inventario y
// precio cuando el descriptor trae esos datos. Cada escritura es un paso con
// savepoint propio: un fallo en inventario o precio se reporta sin deshacer
// el producto ya creado dentro del lote, y el contador solo sube con el item
// completo.
func (uc *BulkImportUseCase) importProduct(tx CatalogueTx, p dto.ProductImport, report *importReport) {
	category, err := stepValue(tx, func() (*entity.Category, error) {
		return tx.Categories().GetByTitle(p.CategoryTitle)
	})
	if err != nil {
		report.databaseErrorf("Product '%s': unexpected error: %v", p.Name, err)
		uc.log.Error().Err(err).Str("name", p.Name).Msg("resolución de categoría fallida")
		return
	}
	if category == nil {
		report.validationErrorf("Product '%s': Category not found: %s", p.Name, p.CategoryTitle)
		return
	}

	existing, err := stepValue(tx, func() (*entity.Product, error) {
		return tx.Products().GetByNameAndCategory(p.Name, category.ID)
	})
	if err != nil {
		report.databaseErrorf("Product '%s': unexpected error: %v", p.Name, err)
		return
	}
	if existing != nil {
		report.duplicateWarnf("Product '%s' in category '%s' already exists, skipped.", p.Name, category.Title)
		return
	}

	now := time.Now()
	product, err := entity.NewProduct(p.Name, p.Description, category.ID, now)
	if err != nil {
		report.validationErrorf("Product '%s': %v", p.Name, err)
		return
	}
	if err := tx.Step(func() error { return tx.Products().Create(product) }); err != nil {
		report.databaseErrorf("Product '%s': unexpected error: %v", p.Name, err)
		uc.log.Error().Err(err).Str("name", p.Name).Msg("creación de producto fallida")
		return
	}

	if p.StockQuantity != nil {
		inventory, err := entity.NewProductInventory(product.ID, *p.StockQuantity, now)
		if err != nil {
			report.validationErrorf("Product '%s': %v", p.Name, err)
			return
		}
		if err := tx.Step(func() error { return tx.Inventory().Create(inventory) }); err != nil {
			report.databaseErrorf("Product '%s': unexpected error: %v", p.Name, err)
			uc.log.Error().Err(err).Str("product_id", product.ID).Msg("creación de inventario fallida")
			return
		}
	}

	if p.Price != nil && p.Currency != nil {
		price, err := entity.NewProductPrice(product.ID, *p.Currency, *p.Price, now)
		if err != nil {
			report.validationErrorf("Product '%s': %v", p.Name, err)
			return
		}
		if err := tx.Step(func() error { return tx.Prices().Create(price) }); err != nil {
			report.databaseErrorf("Product '%s': unexpected error: %v", p.Name, err)
			uc.log.Error().Err(err).Str("product_id", product.ID).Msg("creación de precio fallida")
			return
		}
	}

	report.productsImported++
}
