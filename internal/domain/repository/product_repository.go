package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// La clave natural (name, categoryID) respalda la idempotencia del import.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	GetByNameAndCategory(name, categoryID string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, error)
	ListActive(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
