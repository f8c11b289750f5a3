package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// Caso 1: inventario inicial con reservado en cero.
func TestNewProductInventory_Inicial(t *testing.T) {
	inv, err := entity.NewProductInventory("prod-1", 5, t0)
	require.NoError(t, err)

	assert.Equal(t, 5, inv.Available)
	assert.Equal(t, 0, inv.Reserved)
	assert.Equal(t, 5, inv.AvailableStock())
}

// Caso 2: cantidad inicial negativa o producto vacío son inválidos.
func TestNewProductInventory_Invalido(t *testing.T) {
	_, err := entity.NewProductInventory("prod-1", -1, t0)
	require.ErrorIs(t, err, domain.ErrInvalidInventoryOp)

	_, err = entity.NewProductInventory("", 3, t0)
	require.ErrorIs(t, err, domain.ErrInvalidInventoryOp)
}

// Caso 3: reservar mueve el par disponible/reservado de forma atómica.
func TestProductInventory_ReserveYRelease(t *testing.T) {
	inv, err := entity.NewProductInventory("prod-1", 10, t0)
	require.NoError(t, err)

	t1 := t0.Add(time.Minute)
	require.NoError(t, inv.Reserve(4, t1))
	assert.Equal(t, 6, inv.Available)
	assert.Equal(t, 4, inv.Reserved)
	assert.Equal(t, t1, inv.LastUpdated)

	// Reservar más de lo disponible falla sin alterar el estado.
	err = inv.Reserve(7, t1)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 6, inv.Available)
	assert.Equal(t, 4, inv.Reserved)

	require.NoError(t, inv.Release(3, t1))
	assert.Equal(t, 9, inv.Available)
	assert.Equal(t, 1, inv.Reserved)

	// Liberar más de lo reservado es inválido.
	require.ErrorIs(t, inv.Release(2, t1), domain.ErrInvalidInventoryOp)
}

// Caso 4: ClearReservations es idempotente.
func TestProductInventory_ClearReservations(t *testing.T) {
	inv, err := entity.NewProductInventory("prod-1", 10, t0)
	require.NoError(t, err)
	require.NoError(t, inv.Reserve(4, t0))

	t1 := t0.Add(time.Minute)
	inv.ClearReservations(t1)
	assert.Equal(t, 10, inv.Available)
	assert.Equal(t, 0, inv.Reserved)
	assert.Equal(t, t1, inv.LastUpdated)

	inv.ClearReservations(t1.Add(time.Minute))
	assert.Equal(t, t1, inv.LastUpdated, "limpiar sin reservas no debe tocar LastUpdated")
}
