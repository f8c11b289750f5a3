package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Los Get* devuelven (nil, nil) cuando el registro no existe.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByTitle(title string) (*entity.Category, error)
	Update(category *entity.Category) error
	ListActive(limit, offset int) ([]*entity.Category, error)
	CountActive() (int, error)
}
