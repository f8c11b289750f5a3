package feed

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/export"
)

func TestGenerateFeed_DocumentoCompleto(t *testing.T) {
	stock := 5
	price := decimal.RequireFromString("99.99")
	generatedAt := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

	categories := []export.CatalogueCategory{
		{
			Title:       "Electronics",
			Description: "Gadgets y dispositivos",
			Products: []export.CatalogueProduct{
				{
					Name:     "Phone",
					SKU:      "PHONE-AB12CD34",
					Stock:    &stock,
					Price:    &price,
					Currency: "USD",
				},
				{
					// Sin stock ni precio: los elementos opcionales se omiten.
					Name: "Charger",
					SKU:  "CHARGER-0001",
				},
			},
		},
	}

	data, err := NewXMLFeedGenerator().GenerateFeed(generatedAt, categories)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "catalogue", root.Tag)
	assert.Equal(t, "2026-08-25T10:00:00Z", root.SelectAttrValue("generatedAt", ""))

	catEls := root.SelectElements("category")
	require.Len(t, catEls, 1)
	assert.Equal(t, "Electronics", catEls[0].SelectAttrValue("title", ""))
	assert.Equal(t, "Gadgets y dispositivos", catEls[0].SelectElement("description").Text())

	prodEls := catEls[0].SelectElements("product")
	require.Len(t, prodEls, 2)

	phone := prodEls[0]
	assert.Equal(t, "PHONE-AB12CD34", phone.SelectAttrValue("sku", ""))
	assert.Equal(t, "Phone", phone.SelectElement("name").Text())
	assert.Equal(t, "5", phone.SelectElement("stock").Text())
	priceEl := phone.SelectElement("price")
	require.NotNil(t, priceEl)
	assert.Equal(t, "USD", priceEl.SelectAttrValue("currency", ""))
	assert.Equal(t, "99.99", priceEl.Text())

	charger := prodEls[1]
	assert.Nil(t, charger.SelectElement("stock"))
	assert.Nil(t, charger.SelectElement("price"))
}

func TestGenerateFeed_CatalogoVacio(t *testing.T) {
	data, err := NewXMLFeedGenerator().GenerateFeed(time.Now(), nil)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))
	require.NotNil(t, doc.Root())
	assert.Empty(t, doc.Root().SelectElements("category"))
}
