package bulkimport

import (
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// Partition divide items en cortes contiguos de a lo sumo batchSize elementos,
// cubriendo todos los items exactamente una vez y preservando el orden.
// Los cortes comparten el arreglo de respaldo con items: el caller no debe
// mutar items mientras itera los lotes.
func Partition[T any](items []T, batchSize int) ([][]T, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("%w: batch size must be positive, got %d", domain.ErrInvalidInput, batchSize)
	}
	if len(items) == 0 {
		return nil, nil
	}
	batches := make([][]T, 0, (len(items)+batchSize-1)/batchSize)
	for start := 0; start < len(items); start += batchSize {
		end := min(start+batchSize, len(items))
		batches = append(batches, items[start:end:end])
	}
	return batches, nil
}
