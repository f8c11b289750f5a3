package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

// PriceHandler maneja las peticiones HTTP para los precios por producto.
type PriceHandler struct {
	uc *usecase.PriceUseCase
}

// NewPriceHandler construye el handler.
func NewPriceHandler(uc *usecase.PriceUseCase) *PriceHandler {
	return &PriceHandler{uc: uc}
}

// Create godoc
// @Summary      Crear precio vigente para un producto
// @Tags         prices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePriceRequest  true  "Producto, moneda y monto"
// @Success      201   {object}  dto.PriceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/prices [post]
func (h *PriceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePriceRequest
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

// GetByID godoc
// @Summary      Obtener precio por ID
// @Tags         prices
// @Produce      json
// @Param        id   path  string  true  "ID del precio"
// @Success      200  {object}  dto.PriceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/prices/{id} [get]
func (h *PriceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "precio no encontrado")
	}
	return c.JSON(out)
}

// ChangeAmount godoc
// @Summary      Cambiar el monto de un precio
// @Tags         prices
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del precio"
// @Param        body  body  dto.ChangePriceRequest  true  "Nuevo monto"
// @Success      200   {object}  dto.PriceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/prices/{id} [put]
func (h *PriceHandler) ChangeAmount(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	var in dto.ChangePriceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.ChangeAmount(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Expire godoc
// @Summary      Cerrar la vigencia de un precio
// @Tags         prices
// @Produce      json
// @Param        id   path  string  true  "ID del precio"
// @Success      200  {object}  dto.PriceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/prices/{id}/expire [post]
func (h *PriceHandler) Expire(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	out, err := h.uc.Expire(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListActiveByProduct godoc
// @Summary      Listar precios vigentes de un producto
// @Tags         prices
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200        {array}  dto.PriceResponse
// @Router       /api/prices/product/{productId} [get]
func (h *PriceHandler) ListActiveByProduct(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return badRequest(c, "MISSING_ID", "productId es requerido")
	}
	out, err := h.uc.ListActiveByProduct(productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
