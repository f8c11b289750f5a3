package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los textos van en inglés
// porque viajan en las respuestas de la API y en los mensajes del resultado
// de importación masiva.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrCategoryExists     = errors.New("category already exists")
	ErrInvalidProduct     = errors.New("invalid product")
	ErrInvalidInventoryOp = errors.New("invalid inventory operation")
	ErrInvalidPrice       = errors.New("invalid price")
	ErrInsufficientStock  = errors.New("insufficient available stock")
)

// IsValidation indica si el error pertenece a la familia de validación de
// dominio (atribuible al dato de entrada) y no a una falla de almacenamiento.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidCategory) ||
		errors.Is(err, ErrInvalidProduct) ||
		errors.Is(err, ErrInvalidInventoryOp) ||
		errors.Is(err, ErrInvalidPrice)
}
