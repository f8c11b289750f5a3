// Package feed serializa el catálogo público como feed XML para
// integraciones externas (marketplaces, comparadores).
package feed

import (
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/Catalogo-api/internal/application/export"
)

// XMLFeedGenerator implementa export.FeedGenerator con etree.
type XMLFeedGenerator struct{}

// NewXMLFeedGenerator construye el generador.
func NewXMLFeedGenerator() *XMLFeedGenerator { return &XMLFeedGenerator{} }

// GenerateFeed produce el documento:
//
//	<catalogue generatedAt="...">
//	  <category title="...">
//	    <description>...</description>
//	    <product sku="...">
//	      <name>...</name>
//	      <description>...</description>
//	      <stock>5</stock>
//	      <price currency="USD">99.99</price>
//	    </product>
//	  </category>
//	</catalogue>
//
// stock y price se omiten cuando el producto no los tiene registrados.
func (g *XMLFeedGenerator) GenerateFeed(generatedAt time.Time, categories []export.CatalogueCategory) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("catalogue")
	root.CreateAttr("generatedAt", generatedAt.UTC().Format(time.RFC3339))

	for _, category := range categories {
		catEl := root.CreateElement("category")
		catEl.CreateAttr("title", category.Title)
		if category.Description != "" {
			catEl.CreateElement("description").SetText(category.Description)
		}

		for _, product := range category.Products {
			prodEl := catEl.CreateElement("product")
			prodEl.CreateAttr("sku", product.SKU)
			prodEl.CreateElement("name").SetText(product.Name)
			if product.Description != "" {
				prodEl.CreateElement("description").SetText(product.Description)
			}
			if product.Stock != nil {
				prodEl.CreateElement("stock").SetText(strconv.Itoa(*product.Stock))
			}
			if product.Price != nil {
				priceEl := prodEl.CreateElement("price")
				priceEl.CreateAttr("currency", product.Currency)
				priceEl.SetText(product.Price.StringFixed(2))
			}
		}
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

var _ export.FeedGenerator = (*XMLFeedGenerator)(nil)
