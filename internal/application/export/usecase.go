// Package export arma la vista pública del catálogo (categorías activas con
// sus productos, stock y precio vigente) y la entrega en dos formatos: feed
// XML para integraciones y PDF imprimible.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// exportPageSize tamaño de página usado al recorrer los repos.
const exportPageSize = 200

// CatalogueProduct fila de producto ya enriquecida para exportar.
// Stock y Price son nil cuando el producto no tiene inventario o precio
// vigente registrado.
type CatalogueProduct struct {
	Name        string
	SKU         string
	Description string
	Stock       *int
	Price       *decimal.Decimal
	Currency    string
}

// CatalogueCategory categoría activa con sus productos exportables.
type CatalogueCategory struct {
	Title       string
	Description string
	Products    []CatalogueProduct
}

// FeedGenerator serializa el catálogo como feed XML.
type FeedGenerator interface {
	GenerateFeed(generatedAt time.Time, categories []CatalogueCategory) ([]byte, error)
}

// PDFGenerator produce el catálogo imprimible.
type PDFGenerator interface {
	GenerateCataloguePDF(ctx context.Context, generatedAt time.Time, categories []CatalogueCategory) ([]byte, error)
}

// ExportUseCase recolecta el catálogo desde los repos y lo entrega a los
// generadores de formato.
type ExportUseCase struct {
	categoryRepo  repository.CategoryRepository
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	priceRepo     repository.PriceRepository
	feed          FeedGenerator
	pdf           PDFGenerator
	log           *logger.Logger
}

// NewExportUseCase construye el caso de uso inyectando repos y generadores.
func NewExportUseCase(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	priceRepo repository.PriceRepository,
	feed FeedGenerator,
	pdf PDFGenerator,
	log *logger.Logger,
) *ExportUseCase {
	return &ExportUseCase{
		categoryRepo:  categoryRepo,
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		priceRepo:     priceRepo,
		feed:          feed,
		pdf:           pdf,
		log:           log,
	}
}

// BuildFeed arma el catálogo y lo serializa como feed XML.
func (uc *ExportUseCase) BuildFeed(ctx context.Context) ([]byte, error) {
	categories, err := uc.collect()
	if err != nil {
		return nil, err
	}
	data, err := uc.feed.GenerateFeed(time.Now(), categories)
	if err != nil {
		return nil, fmt.Errorf("export: generar feed: %w", err)
	}
	uc.log.Info().Int("categories", len(categories)).Msg("feed de catálogo generado")
	return data, nil
}

// BuildPDF arma el catálogo y lo entrega como PDF. Devuelve además el nombre
// de archivo sugerido para la descarga.
func (uc *ExportUseCase) BuildPDF(ctx context.Context) ([]byte, string, error) {
	categories, err := uc.collect()
	if err != nil {
		return nil, "", err
	}
	now := time.Now()
	data, err := uc.pdf.GenerateCataloguePDF(ctx, now, categories)
	if err != nil {
		return nil, "", fmt.Errorf("export: generar pdf: %w", err)
	}
	filename := fmt.Sprintf("catalogo_%s.pdf", now.Format("20060102"))
	uc.log.Info().Int("categories", len(categories)).Str("filename", filename).Msg("pdf de catálogo generado")
	return data, filename, nil
}

// collect recorre categorías activas y enriquece cada producto con su stock
// disponible y su precio vigente más reciente.
func (uc *ExportUseCase) collect() ([]CatalogueCategory, error) {
	var result []CatalogueCategory

	for offset := 0; ; offset += exportPageSize {
		page, err := uc.categoryRepo.ListActive(exportPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("export: listar categorías: %w", err)
		}
		for _, category := range page {
			products, err := uc.collectProducts(category.ID)
			if err != nil {
				return nil, err
			}
			result = append(result, CatalogueCategory{
				Title:       category.Title,
				Description: category.Description,
				Products:    products,
			})
		}
		if len(page) < exportPageSize {
			break
		}
	}
	return result, nil
}

func (uc *ExportUseCase) collectProducts(categoryID string) ([]CatalogueProduct, error) {
	var result []CatalogueProduct

	for offset := 0; ; offset += exportPageSize {
		page, err := uc.productRepo.ListByCategory(categoryID, exportPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("export: listar productos: %w", err)
		}
		for _, product := range page {
			if !product.Active {
				continue
			}
			item := CatalogueProduct{
				Name:        product.Name,
				SKU:         product.SKU,
				Description: product.Description,
			}

			inv, err := uc.inventoryRepo.GetByProductID(product.ID)
			if err != nil {
				return nil, fmt.Errorf("export: inventario de %s: %w", product.SKU, err)
			}
			if inv != nil {
				available := inv.AvailableStock()
				item.Stock = &available
			}

			prices, err := uc.priceRepo.ListActiveByProduct(product.ID)
			if err != nil {
				return nil, fmt.Errorf("export: precios de %s: %w", product.SKU, err)
			}
			if len(prices) > 0 {
				// El más reciente por ValidFrom manda cuando hay varios vigentes.
				latest := prices[0]
				for _, p := range prices[1:] {
					if p.ValidFrom.After(latest.ValidFrom) {
						latest = p
					}
				}
				amount := latest.Amount
				item.Price = &amount
				item.Currency = latest.Currency
			}

			result = append(result, item)
		}
		if len(page) < exportPageSize {
			break
		}
	}
	return result, nil
}
