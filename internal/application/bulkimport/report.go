package bulkimport

import (
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
)

// importReport acumulador privado de una pasada de import. Cada lote arma el
// suyo y el caller lo fusiona solo si la transacción del lote confirmó, así
// nunca se cuentan filas que terminaron en rollback. Al no compartirse entre
// lotes, también habilita procesarlos en paralelo a futuro.
type importReport struct {
	categoriesImported int
	productsImported   int
	validationErrors   []string
	databaseErrors     []string
	duplicateWarnings  []string
}

func (r *importReport) validationErrorf(format string, args ...any) {
	r.validationErrors = append(r.validationErrors, fmt.Sprintf(format, args...))
}

func (r *importReport) databaseErrorf(format string, args ...any) {
	r.databaseErrors = append(r.databaseErrors, fmt.Sprintf(format, args...))
}

func (r *importReport) duplicateWarnf(format string, args ...any) {
	r.duplicateWarnings = append(r.duplicateWarnings, fmt.Sprintf(format, args...))
}

// merge incorpora el reporte de un lote confirmado, preservando el orden.
func (r *importReport) merge(other *importReport) {
	r.categoriesImported += other.categoriesImported
	r.productsImported += other.productsImported
	r.validationErrors = append(r.validationErrors, other.validationErrors...)
	r.databaseErrors = append(r.databaseErrors, other.databaseErrors...)
	r.duplicateWarnings = append(r.duplicateWarnings, other.duplicateWarnings...)
}

// result arma el resumen final: errores de validación, luego de base de
// datos, luego advertencias de duplicados.
func (r *importReport) result() *dto.BulkImportResult {
	errs := make([]string, 0, len(r.validationErrors)+len(r.databaseErrors)+len(r.duplicateWarnings))
	errs = append(errs, r.validationErrors...)
	errs = append(errs, r.databaseErrors...)
	errs = append(errs, r.duplicateWarnings...)
	return &dto.BulkImportResult{
		CategoriesImported: r.categoriesImported,
		ProductsImported:   r.productsImported,
		Errors:             errs,
	}
}
