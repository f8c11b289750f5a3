package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

// InventoryHandler maneja las peticiones HTTP para el inventario por producto.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear inventario inicial de un producto
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "Producto y cantidad inicial"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.ProductID == "" {
		return badRequest(c, "VALIDATION", "product_id es requerido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByProductID godoc
// @Summary      Obtener inventario de un producto
// @Tags         inventory
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200        {object}  dto.InventoryResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/inventory/{productId} [get]
func (h *InventoryHandler) GetByProductID(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return badRequest(c, "MISSING_ID", "productId es requerido")
	}
	out, err := h.uc.GetByProductID(productID)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "inventario no encontrado")
	}
	return c.JSON(out)
}

// Reserve godoc
// @Summary      Reservar unidades disponibles
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.StockOperationRequest  true  "Cantidad"
// @Success      200        {object}  dto.InventoryResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Failure      409        {object}  dto.ErrorResponse
// @Router       /api/inventory/{productId}/reserve [post]
func (h *InventoryHandler) Reserve(c *fiber.Ctx) error {
	return h.stockOperation(c, h.uc.Reserve)
}

// Release godoc
// @Summary      Liberar unidades reservadas
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.StockOperationRequest  true  "Cantidad"
// @Success      200        {object}  dto.InventoryResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/inventory/{productId}/release [post]
func (h *InventoryHandler) Release(c *fiber.Ctx) error {
	return h.stockOperation(c, h.uc.Release)
}

// ClearReservations godoc
// @Summary      Liberar todas las reservas de un producto
// @Tags         inventory
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200        {object}  dto.InventoryResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/inventory/{productId}/clear-reservations [post]
func (h *InventoryHandler) ClearReservations(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return badRequest(c, "MISSING_ID", "productId es requerido")
	}
	out, err := h.uc.ClearReservations(productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *InventoryHandler) stockOperation(c *fiber.Ctx, op func(string, int) (*dto.InventoryResponse, error)) error {
	productID := c.Params("productId")
	if productID == "" {
		return badRequest(c, "MISSING_ID", "productId es requerido")
	}
	var in dto.StockOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := op(productID, in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
