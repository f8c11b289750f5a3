package dto

import "github.com/shopspring/decimal"

// Los DTO de importación masiva usan camelCase: es el contrato de archivo que
// ya manejan los clientes del import (categories.json exportados de otras
// herramientas), a diferencia del snake_case del resto de la API.

// CategoryImport descriptor transitorio de categoría en el payload de import.
type CategoryImport struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ProductImport descriptor transitorio de producto en el payload de import.
// La categoría se referencia por clave natural (título), no por ID.
// Stock y precio son opcionales; currency solo acompaña a price.
type ProductImport struct {
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	CategoryTitle string           `json:"categoryTitle"`
	StockQuantity *int             `json:"stockQuantity,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	Currency      *string          `json:"currency,omitempty"`
}

// BulkImportRequest payload completo de importación masiva.
type BulkImportRequest struct {
	Categories []CategoryImport `json:"categories"`
	Products   []ProductImport  `json:"products"`
}

// BulkImportResult resumen estructurado del import: contadores más la lista
// plana de mensajes (errores de validación, errores de base de datos y
// advertencias de duplicados, en ese orden).
type BulkImportResult struct {
	CategoriesImported int      `json:"categoriesImported"`
	ProductsImported   int      `json:"productsImported"`
	Errors             []string `json:"errors"`
}
