package export_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/export"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// Fakes mínimos de lectura: el export solo recorre, nunca escribe.

type stubCategoryRepo struct{ active []*entity.Category }

func (r *stubCategoryRepo) Create(*entity.Category) error { return nil }
func (r *stubCategoryRepo) GetByID(string) (*entity.Category, error) { return nil, nil }
func (r *stubCategoryRepo) GetByTitle(string) (*entity.Category, error) { return nil, nil }
func (r *stubCategoryRepo) Update(*entity.Category) error { return nil }
func (r *stubCategoryRepo) CountActive() (int, error) { return len(r.active), nil }
func (r *stubCategoryRepo) ListActive(limit, offset int) ([]*entity.Category, error) {
	return page(r.active, limit, offset), nil
}

type stubProductRepo struct{ byCategory map[string][]*entity.Product }

func (r *stubProductRepo) Create(*entity.Product) error { return nil }
func (r *stubProductRepo) GetByID(string) (*entity.Product, error) { return nil, nil }
func (r *stubProductRepo) GetBySKU(string) (*entity.Product, error) { return nil, nil }
func (r *stubProductRepo) GetByNameAndCategory(string, string) (*entity.Product, error) {
	return nil, nil
}
func (r *stubProductRepo) Update(*entity.Product) error { return nil }
func (r *stubProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *stubProductRepo) ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, error) {
	return page(r.byCategory[categoryID], limit, offset), nil
}
func (r *stubProductRepo) ListActive(limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *stubProductRepo) Delete(string) error { return nil }

type stubInventoryRepo struct{ byProduct map[string]*entity.ProductInventory }

func (r *stubInventoryRepo) Create(*entity.ProductInventory) error { return nil }
func (r *stubInventoryRepo) GetByProductID(productID string) (*entity.ProductInventory, error) {
	return r.byProduct[productID], nil
}
func (r *stubInventoryRepo) Update(*entity.ProductInventory) error { return nil }

type stubPriceRepo struct{ byProduct map[string][]*entity.ProductPrice }

func (r *stubPriceRepo) Create(*entity.ProductPrice) error { return nil }
func (r *stubPriceRepo) GetByID(string) (*entity.ProductPrice, error) { return nil, nil }
func (r *stubPriceRepo) Update(*entity.ProductPrice) error { return nil }
func (r *stubPriceRepo) ListActiveByProduct(productID string) ([]*entity.ProductPrice, error) {
	return r.byProduct[productID], nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := min(offset+limit, len(items))
	return items[offset:end]
}

// Generadores espía: capturan lo recolectado sin producir formato real.

type spyFeedGenerator struct{ got []export.CatalogueCategory }

func (g *spyFeedGenerator) GenerateFeed(_ time.Time, categories []export.CatalogueCategory) ([]byte, error) {
	g.got = categories
	return []byte("<catalogue/>"), nil
}

type spyPDFGenerator struct{ got []export.CatalogueCategory }

func (g *spyPDFGenerator) GenerateCataloguePDF(_ context.Context, _ time.Time, categories []export.CatalogueCategory) ([]byte, error) {
	g.got = categories
	return []byte("%PDF-1.4"), nil
}

func TestBuildFeed_RecoleccionCompleta(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	category, err := entity.NewCategory("Electronics", "Gadgets", now)
	require.NoError(t, err)

	phone, err := entity.NewProduct("Phone", "Insignia", category.ID, now)
	require.NoError(t, err)
	inactive, err := entity.NewProduct("Legacy", "", category.ID, now)
	require.NoError(t, err)
	inactive.Deactivate(now)

	inv, err := entity.NewProductInventory(phone.ID, 5, now)
	require.NoError(t, err)
	require.NoError(t, inv.Reserve(2, now))

	price, err := entity.NewProductPrice(phone.ID, "usd", decimal.RequireFromString("99.99"), now)
	require.NoError(t, err)

	feedGen := &spyFeedGenerator{}
	uc := export.NewExportUseCase(
		&stubCategoryRepo{active: []*entity.Category{category}},
		&stubProductRepo{byCategory: map[string][]*entity.Product{category.ID: {phone, inactive}}},
		&stubInventoryRepo{byProduct: map[string]*entity.ProductInventory{phone.ID: inv}},
		&stubPriceRepo{byProduct: map[string][]*entity.ProductPrice{phone.ID: {price}}},
		feedGen,
		&spyPDFGenerator{},
		logger.New(logger.Config{Env: "test", Level: "error"}),
	)

	data, err := uc.BuildFeed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("<catalogue/>"), data)

	require.Len(t, feedGen.got, 1)
	got := feedGen.got[0]
	assert.Equal(t, "Electronics", got.Title)

	// El producto desactivado queda fuera del catálogo público.
	require.Len(t, got.Products, 1)
	p := got.Products[0]
	assert.Equal(t, "Phone", p.Name)
	assert.Equal(t, phone.SKU, p.SKU)

	// Stock exportado = unidades disponibles tras la reserva.
	require.NotNil(t, p.Stock)
	assert.Equal(t, 3, *p.Stock)

	require.NotNil(t, p.Price)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("99.99")))
	assert.Equal(t, "USD", p.Currency)
}

func TestBuildFeed_PrecioVigenteMasReciente(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	category, err := entity.NewCategory("Books", "", now)
	require.NoError(t, err)
	book, err := entity.NewProduct("Novel", "", category.ID, now)
	require.NoError(t, err)

	older, err := entity.NewProductPrice(book.ID, "USD", decimal.RequireFromString("10.00"), now.Add(-48*time.Hour))
	require.NoError(t, err)
	newer, err := entity.NewProductPrice(book.ID, "USD", decimal.RequireFromString("12.50"), now)
	require.NoError(t, err)

	feedGen := &spyFeedGenerator{}
	uc := export.NewExportUseCase(
		&stubCategoryRepo{active: []*entity.Category{category}},
		&stubProductRepo{byCategory: map[string][]*entity.Product{category.ID: {book}}},
		&stubInventoryRepo{byProduct: map[string]*entity.ProductInventory{}},
		&stubPriceRepo{byProduct: map[string][]*entity.ProductPrice{book.ID: {older, newer}}},
		feedGen,
		&spyPDFGenerator{},
		logger.New(logger.Config{Env: "test", Level: "error"}),
	)

	_, err = uc.BuildFeed(context.Background())
	require.NoError(t, err)

	require.Len(t, feedGen.got, 1)
	require.Len(t, feedGen.got[0].Products, 1)
	p := feedGen.got[0].Products[0]
	require.NotNil(t, p.Price)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("12.50")))
	assert.Nil(t, p.Stock, "sin inventario registrado el stock va vacío")
}

func TestBuildPDF_NombreDeArchivo(t *testing.T) {
	pdfGen := &spyPDFGenerator{}
	uc := export.NewExportUseCase(
		&stubCategoryRepo{},
		&stubProductRepo{byCategory: map[string][]*entity.Product{}},
		&stubInventoryRepo{byProduct: map[string]*entity.ProductInventory{}},
		&stubPriceRepo{byProduct: map[string][]*entity.ProductPrice{}},
		&spyFeedGenerator{},
		pdfGen,
		logger.New(logger.Config{Env: "test", Level: "error"}),
	)

	data, filename, err := uc.BuildPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), data)
	assert.Regexp(t, `^catalogo_\d{8}\.pdf$`, filename)
}
