package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/bulkimport"
	"github.com/jhoicas/Catalogo-api/internal/application/export"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC   *usecase.CategoryUseCase
	ProductUC    *usecase.ProductUseCase
	InventoryUC  *usecase.InventoryUseCase
	PriceUC      *usecase.PriceUseCase
	BulkImportUC *bulkimport.BulkImportUseCase
	ExportUC     *export.ExportUseCase

	// Tamaños de lote por defecto para el import (<= 0 usa los del motor).
	CategoryBatchSize int
	ProductBatchSize  int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Post("/:id/activate", categoryHandler.Activate)
	categories.Post("/:id/deactivate", categoryHandler.Deactivate)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/sku/:sku", productHandler.GetBySKU)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Inventory (1:1 por producto)
	inventory := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Post("/", inventoryHandler.Create)
	inventory.Get("/:productId", inventoryHandler.GetByProductID)
	inventory.Post("/:productId/reserve", inventoryHandler.Reserve)
	inventory.Post("/:productId/release", inventoryHandler.Release)
	inventory.Post("/:productId/clear-reservations", inventoryHandler.ClearReservations)

	// Prices
	prices := api.Group("/prices")
	priceHandler := NewPriceHandler(deps.PriceUC)
	prices.Post("/", priceHandler.Create)
	prices.Get("/product/:productId", priceHandler.ListActiveByProduct)
	prices.Get("/:id", priceHandler.GetByID)
	prices.Put("/:id", priceHandler.ChangeAmount)
	prices.Post("/:id/expire", priceHandler.Expire)

	// Export (catálogo público)
	exportGroup := api.Group("/export")
	exportHandler := NewExportHandler(deps.ExportUC)
	exportGroup.Get("/feed.xml", exportHandler.Feed)
	exportGroup.Get("/catalogue.pdf", exportHandler.PDF)

	// Bulk import
	bulk := app.Group("/bulk")
	bulkHandler := NewBulkImportHandler(deps.BulkImportUC, deps.CategoryBatchSize, deps.ProductBatchSize)
	bulk.Post("/import-json", bulkHandler.ImportJSON)
	bulk.Post("/import-file", bulkHandler.ImportFile)
}
