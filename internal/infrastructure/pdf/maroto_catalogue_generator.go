// Package pdf implementa el catálogo imprimible con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del catálogo  │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por categoría:                                             │
//	│    Título + descripción                                     │
//	│    TABLA: SKU | Producto | Stock | Precio                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de generación                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Catalogo-api/internal/application/export"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoCatalogueGenerator implementa export.PDFGenerator usando Maroto v2.
type MarotoCatalogueGenerator struct{}

// NewMarotoCatalogueGenerator construye el generador.
func NewMarotoCatalogueGenerator() *MarotoCatalogueGenerator { return &MarotoCatalogueGenerator{} }

// GenerateCataloguePDF genera el PDF del catálogo y devuelve sus bytes.
func (g *MarotoCatalogueGenerator) GenerateCataloguePDF(
	_ context.Context,
	generatedAt time.Time,
	categories []export.CatalogueCategory,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Catálogo de productos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt, categories))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, category := range categories {
		m.AddRows(categoryTitleRow(category))
		m.AddRows(tableHeaderRow())
		for _, r := range productRows(category.Products) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(2))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(generatedAt))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del catálogo (izq) y fecha + conteo (der).
func headerRow(generatedAt time.Time, categories []export.CatalogueCategory) core.Row {
	var totalProducts int
	for _, c := range categories {
		totalProducts += len(c.Products)
	}

	return row.New(16).Add(
		col.New(7).Add(
			text.New("CATÁLOGO DE PRODUCTOS", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d categorías · %d productos", len(categories), totalProducts), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// categoryTitleRow: título y descripción de la sección de la categoría.
func categoryTitleRow(category export.CatalogueCategory) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New(category.Title, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2,
			}),
			text.New(nonEmpty(category.Description, "—"), props.Text{
				Size: 8, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("SKU", 3, align.Left),
		h("Producto", 5, align.Left),
		h("Stock", 1, align.Center),
		h("Precio", 3, align.Right),
	)
}

// productRows: una fila por producto exportable.
func productRows(products []export.CatalogueProduct) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		stock := "—"
		if p.Stock != nil {
			stock = fmt.Sprintf("%d", *p.Stock)
		}
		price := "—"
		if p.Price != nil {
			price = p.Price.StringFixed(2) + " " + p.Currency
		}
		result = append(result, row.New(6).Add(
			col.New(3).Add(text.New(
				p.SKU,
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				p.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				stock,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				price,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// footerRow: leyenda de generación.
func footerRow(generatedAt time.Time) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Catálogo generado automáticamente el "+generatedAt.Format("02/01/2006")+
				". Los precios y existencias corresponden al momento de la generación.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

var _ export.PDFGenerator = (*MarotoCatalogueGenerator)(nil)
