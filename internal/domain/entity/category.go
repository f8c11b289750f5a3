package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// Límites de validación para Category.
const (
	CategoryTitleMaxLen       = 100
	CategoryDescriptionMaxLen = 500
)

// Category raíz de agregado: categoría del catálogo identificada por su
// título (clave natural única). Los productos la referencian por ID.
type Category struct {
	ID          string
	Title       string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory valida y construye una categoría activa. El timestamp lo
// aporta el caller (los mutadores también lo reciben explícito).
func NewCategory(title, description string, now time.Time) (*Category, error) {
	if err := validateCategoryTitle(title); err != nil {
		return nil, err
	}
	if err := validateCategoryDescription(description); err != nil {
		return nil, err
	}
	return &Category{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Rename cambia el título validando la misma regla de la creación.
func (c *Category) Rename(newTitle string, now time.Time) error {
	if err := validateCategoryTitle(newTitle); err != nil {
		return err
	}
	c.Title = newTitle
	c.UpdatedAt = now
	return nil
}

// ChangeDescription cambia la descripción (puede quedar vacía).
func (c *Category) ChangeDescription(newDescription string, now time.Time) error {
	if err := validateCategoryDescription(newDescription); err != nil {
		return err
	}
	c.Description = newDescription
	c.UpdatedAt = now
	return nil
}

// Activate marca la categoría como activa. Idempotente.
func (c *Category) Activate(now time.Time) {
	if c.Active {
		return
	}
	c.Active = true
	c.UpdatedAt = now
}

// Deactivate marca la categoría como inactiva. Idempotente.
func (c *Category) Deactivate(now time.Time) {
	if !c.Active {
		return
	}
	c.Active = false
	c.UpdatedAt = now
}

func validateCategoryTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title cannot be blank", domain.ErrInvalidCategory)
	}
	if len(title) > CategoryTitleMaxLen {
		return fmt.Errorf("%w: title must not exceed %d characters", domain.ErrInvalidCategory, CategoryTitleMaxLen)
	}
	return nil
}

func validateCategoryDescription(description string) error {
	if len(description) > CategoryDescriptionMaxLen {
		return fmt.Errorf("%w: description must not exceed %d characters", domain.ErrInvalidCategory, CategoryDescriptionMaxLen)
	}
	return nil
}
