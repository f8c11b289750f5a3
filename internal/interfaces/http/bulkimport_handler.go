package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/bulkimport"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
)

// maxImportFileSize límite del archivo de importación (10 MB).
const maxImportFileSize = 10 << 20

// BulkImportHandler maneja la importación masiva del catálogo, tanto por
// cuerpo JSON directo como por archivo multipart. Los tamaños de lote
// configurados se usan cuando el caller no los envía por query.
type BulkImportHandler struct {
	uc                *bulkimport.BulkImportUseCase
	categoryBatchSize int
	productBatchSize  int
}

// NewBulkImportHandler construye el handler.
func NewBulkImportHandler(uc *bulkimport.BulkImportUseCase, categoryBatchSize, productBatchSize int) *BulkImportHandler {
	return &BulkImportHandler{
		uc:                uc,
		categoryBatchSize: categoryBatchSize,
		productBatchSize:  productBatchSize,
	}
}

// ImportJSON godoc
// @Summary      Importar catálogo desde el cuerpo JSON
// @Description  Importa categorías y productos por lotes. El éxito parcial es
// @Description  normal: la respuesta siempre es 200 con contadores y mensajes.
// @Tags         bulk
// @Accept       json
// @Produce      json
// @Param        categoryBatchSize  query  int  false  "Tamaño de lote de categorías"  default(10)
// @Param        productBatchSize   query  int  false  "Tamaño de lote de productos"   default(100)
// @Param        body  body  dto.BulkImportRequest  true  "Catálogo a importar"
// @Success      200   {object}  dto.BulkImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /bulk/import-json [post]
func (h *BulkImportHandler) ImportJSON(c *fiber.Ctx) error {
	var req dto.BulkImportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	return h.run(c, &req)
}

// ImportFile godoc
// @Summary      Importar catálogo desde un archivo JSON
// @Tags         bulk
// @Accept       multipart/form-data
// @Produce      json
// @Param        categoryBatchSize  query  int   false  "Tamaño de lote de categorías"  default(10)
// @Param        productBatchSize   query  int   false  "Tamaño de lote de productos"   default(100)
// @Param        file  formData  file  true  "Archivo JSON con el catálogo"
// @Success      200   {object}  dto.BulkImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /bulk/import-file [post]
func (h *BulkImportHandler) ImportFile(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "MISSING_FILE", "archivo 'file' es requerido")
	}
	if header.Size > maxImportFileSize {
		return badRequest(c, "FILE_TOO_LARGE", "el archivo supera el límite de 10 MB")
	}

	f, err := header.Open()
	if err != nil {
		return badRequest(c, "INVALID_FILE", "no se pudo abrir el archivo")
	}
	defer f.Close()

	var req dto.BulkImportRequest
	if err := json.NewDecoder(f).Decode(&req); err != nil {
		return badRequest(c, "INVALID_FILE", "el archivo no es un JSON de catálogo válido")
	}
	return h.run(c, &req)
}

func (h *BulkImportHandler) run(c *fiber.Ctx, req *dto.BulkImportRequest) error {
	categoryBatchSize := c.QueryInt("categoryBatchSize", h.categoryBatchSize)
	productBatchSize := c.QueryInt("productBatchSize", h.productBatchSize)

	result, err := h.uc.ImportData(c.Context(), req, categoryBatchSize, productBatchSize)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
