package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// PriceRepository define el puerto de persistencia para ProductPrice (DIP).
type PriceRepository interface {
	Create(price *entity.ProductPrice) error
	GetByID(id string) (*entity.ProductPrice, error)
	Update(price *entity.ProductPrice) error
	ListActiveByProduct(productID string) ([]*entity.ProductPrice, error)
}
