package usecase

import (
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías. En el flujo de import
// las categorías nunca se eliminan; aquí tampoco hay delete, solo deactivate.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría nueva. El título es clave natural única.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.GetByTitle(in.Title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCategoryExists
	}
	category, err := entity.NewCategory(in.Title, in.Description, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID. (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil || category == nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update renombra y/o cambia la descripción de una categoría.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil || category == nil {
		return nil, err
	}
	now := time.Now()
	if in.Title != nil && *in.Title != category.Title {
		duplicate, err := uc.repo.GetByTitle(*in.Title)
		if err != nil {
			return nil, err
		}
		if duplicate != nil {
			return nil, domain.ErrCategoryExists
		}
		if err := category.Rename(*in.Title, now); err != nil {
			return nil, err
		}
	}
	if in.Description != nil {
		if err := category.ChangeDescription(*in.Description, now); err != nil {
			return nil, err
		}
	}
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Activate marca la categoría como activa.
func (uc *CategoryUseCase) Activate(id string) (*dto.CategoryResponse, error) {
	return uc.setActive(id, true)
}

// Deactivate marca la categoría como inactiva (los productos conservan la referencia).
func (uc *CategoryUseCase) Deactivate(id string) (*dto.CategoryResponse, error) {
	return uc.setActive(id, false)
}

// ListActive lista categorías activas con paginación y total.
func (uc *CategoryUseCase) ListActive(limit, offset int) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.ListActive(limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.CountActive()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

func (uc *CategoryUseCase) setActive(id string, active bool) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil || category == nil {
		return nil, err
	}
	now := time.Now()
	if active {
		category.Activate(now)
	} else {
		category.Deactivate(now)
	}
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
