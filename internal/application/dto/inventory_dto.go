package dto

import "time"

// CreateInventoryRequest entrada para crear el inventario inicial de un producto.
type CreateInventoryRequest struct {
	ProductID       string `json:"product_id" validate:"required"`
	InitialQuantity int    `json:"initial_quantity" validate:"min=0"`
}

// StockOperationRequest entrada para reservar o liberar unidades.
type StockOperationRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// InventoryResponse salida del inventario de un producto.
type InventoryResponse struct {
	ProductID   string    `json:"product_id"`
	Available   int       `json:"available_quantity"`
	Reserved    int       `json:"reserved_quantity"`
	LastUpdated time.Time `json:"last_updated"`
}
