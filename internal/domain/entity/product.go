package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/pkg/sku"
)

// Límites de validación para Product.
const (
	ProductNameMaxLen        = 150
	ProductDescriptionMaxLen = 500
)

// Product raíz de agregado: producto del catálogo. Referencia a su categoría
// por ID (no embebida); inventario y precios lo referencian a él por ID.
// La clave natural para detección de duplicados es (Name, CategoryID).
type Product struct {
	ID          string
	Name        string
	Description string
	SKU         string // generado en la creación, único
	Active      bool
	CategoryID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct valida y construye un producto activo con SKU generado.
// categoryID debe venir ya resuelto contra una categoría existente.
func NewProduct(name, description, categoryID string, now time.Time) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if len(description) > ProductDescriptionMaxLen {
		return nil, fmt.Errorf("%w: description must not exceed %d characters", domain.ErrInvalidProduct, ProductDescriptionMaxLen)
	}
	if categoryID == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrInvalidProduct)
	}
	return &Product{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		SKU:         sku.Generate(name),
		Active:      true,
		CategoryID:  categoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Rename cambia el nombre. El SKU no se regenera: es estable tras la creación.
func (p *Product) Rename(newName string, now time.Time) error {
	if err := validateProductName(newName); err != nil {
		return err
	}
	p.Name = newName
	p.UpdatedAt = now
	return nil
}

// ChangeDescription cambia la descripción.
func (p *Product) ChangeDescription(newDescription string, now time.Time) error {
	if len(newDescription) > ProductDescriptionMaxLen {
		return fmt.Errorf("%w: description must not exceed %d characters", domain.ErrInvalidProduct, ProductDescriptionMaxLen)
	}
	p.Description = newDescription
	p.UpdatedAt = now
	return nil
}

// AssignCategory reasigna el producto a otra categoría ya resuelta.
func (p *Product) AssignCategory(categoryID string, now time.Time) error {
	if categoryID == "" {
		return fmt.Errorf("%w: category is required", domain.ErrInvalidProduct)
	}
	p.CategoryID = categoryID
	p.UpdatedAt = now
	return nil
}

// Activate marca el producto como activo. Idempotente.
func (p *Product) Activate(now time.Time) {
	if p.Active {
		return
	}
	p.Active = true
	p.UpdatedAt = now
}

// Deactivate marca el producto como inactivo. Idempotente.
func (p *Product) Deactivate(now time.Time) {
	if !p.Active {
		return
	}
	p.Active = false
	p.UpdatedAt = now
}

func validateProductName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be blank", domain.ErrInvalidProduct)
	}
	if len(name) > ProductNameMaxLen {
		return fmt.Errorf("%w: name must not exceed %d characters", domain.ErrInvalidProduct, ProductNameMaxLen)
	}
	return nil
}
