package usecase

import (
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// InventoryUseCase casos de uso para el inventario 1:1 de cada producto:
// creación inicial y operaciones reserve/release/clear.
type InventoryUseCase struct {
	repo        repository.InventoryRepository
	productRepo repository.ProductRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository, productRepo repository.ProductRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, productRepo: productRepo}
}

// Create crea el inventario inicial de un producto existente. Solo una vez
// por producto: el segundo create es ErrDuplicate del store.
func (uc *InventoryUseCase) Create(in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	inventory, err := entity.NewProductInventory(in.ProductID, in.InitialQuantity, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(inventory); err != nil {
		return nil, err
	}
	return toInventoryResponse(inventory), nil
}

// GetByProductID obtiene el inventario de un producto. (nil, nil) si no existe.
func (uc *InventoryUseCase) GetByProductID(productID string) (*dto.InventoryResponse, error) {
	inventory, err := uc.repo.GetByProductID(productID)
	if err != nil || inventory == nil {
		return nil, err
	}
	return toInventoryResponse(inventory), nil
}

// Reserve reserva unidades disponibles del producto.
func (uc *InventoryUseCase) Reserve(productID string, quantity int) (*dto.InventoryResponse, error) {
	return uc.mutate(productID, func(inv *entity.ProductInventory, now time.Time) error {
		return inv.Reserve(quantity, now)
	})
}

// Release devuelve unidades reservadas al disponible.
func (uc *InventoryUseCase) Release(productID string, quantity int) (*dto.InventoryResponse, error) {
	return uc.mutate(productID, func(inv *entity.ProductInventory, now time.Time) error {
		return inv.Release(quantity, now)
	})
}

// ClearReservations libera todas las reservas del producto. Idempotente.
func (uc *InventoryUseCase) ClearReservations(productID string) (*dto.InventoryResponse, error) {
	return uc.mutate(productID, func(inv *entity.ProductInventory, now time.Time) error {
		inv.ClearReservations(now)
		return nil
	})
}

func (uc *InventoryUseCase) mutate(productID string, op func(*entity.ProductInventory, time.Time) error) (*dto.InventoryResponse, error) {
	inventory, err := uc.repo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}
	if inventory == nil {
		return nil, domain.ErrNotFound
	}
	if err := op(inventory, time.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(inventory); err != nil {
		return nil, err
	}
	return toInventoryResponse(inventory), nil
}

func toInventoryResponse(i *entity.ProductInventory) *dto.InventoryResponse {
	if i == nil {
		return nil
	}
	return &dto.InventoryResponse{
		ProductID:   i.ProductID,
		Available:   i.Available,
		Reserved:    i.Reserved,
		LastUpdated: i.LastUpdated,
	}
}
