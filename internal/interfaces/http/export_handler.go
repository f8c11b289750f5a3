package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/export"
)

// ExportHandler expone el catálogo público en feed XML y PDF.
type ExportHandler struct {
	uc *export.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Feed godoc
// @Summary      Feed XML del catálogo
// @Tags         export
// @Produce      xml
// @Success      200  {string}  string  "Documento XML del catálogo"
// @Router       /api/export/feed.xml [get]
func (h *ExportHandler) Feed(c *fiber.Ctx) error {
	data, err := h.uc.BuildFeed(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(data)
}

// PDF godoc
// @Summary      Catálogo imprimible en PDF
// @Tags         export
// @Produce      application/pdf
// @Success      200  {file}  file  "PDF del catálogo"
// @Router       /api/export/catalogue.pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.BuildPDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
