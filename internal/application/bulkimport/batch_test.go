package bulkimport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/bulkimport"
	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// Propiedad: para toda lista de largo L y tamaño B > 0 salen ceil(L/B) lotes
// cuya concatenación reproduce la lista original en su orden.
func TestPartition_CoberturaYOrden(t *testing.T) {
	cases := []struct {
		name      string
		length    int
		batchSize int
		batches   int
	}{
		{"exacto", 10, 5, 2},
		{"con resto", 11, 5, 3},
		{"lote mayor que la lista", 3, 100, 1},
		{"de a uno", 4, 1, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := make([]int, tc.length)
			for i := range items {
				items[i] = i
			}

			batches, err := bulkimport.Partition(items, tc.batchSize)
			require.NoError(t, err)
			require.Len(t, batches, tc.batches)

			var flat []int
			for _, b := range batches {
				assert.LessOrEqual(t, len(b), tc.batchSize)
				flat = append(flat, b...)
			}
			assert.Equal(t, items, flat, "la concatenación debe reproducir la lista original")
		})
	}
}

// Lista vacía produce cero lotes.
func TestPartition_Vacia(t *testing.T) {
	batches, err := bulkimport.Partition([]string(nil), 5)
	require.NoError(t, err)
	assert.Empty(t, batches)
}

// Tamaño de lote <= 0 es argumento inválido.
func TestPartition_TamanoInvalido(t *testing.T) {
	_, err := bulkimport.Partition([]int{1, 2, 3}, 0)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = bulkimport.Partition([]int{1, 2, 3}, -7)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Los lotes son vistas contiguas de la lista fuente (mismo respaldo, sin copias).
func TestPartition_VistasContiguas(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	batches, err := bulkimport.Partition(items, 2)
	require.NoError(t, err)
	require.Len(t, batches, 3)

	assert.Equal(t, []string{"a", "b"}, batches[0])
	assert.Equal(t, []string{"c", "d"}, batches[1])
	assert.Equal(t, []string{"e"}, batches[2])
	assert.Same(t, &items[2], &batches[1][0], "el lote debe compartir respaldo con la fuente")
}
