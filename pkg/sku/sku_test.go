package sku_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/pkg/sku"
)

// El slug debe eliminar acentos, espacios y símbolos, y quedar en mayúsculas.
func TestSlug_NormalizaAcentosYSimbolos(t *testing.T) {
	assert.Equal(t, "CAFEPREMIUM", sku.Slug("Café Premium"))
	assert.Equal(t, "TELEFONO5G", sku.Slug("Teléfono 5G!"))
	assert.Equal(t, "", sku.Slug("™ © …"))
}

// El slug se trunca a 12 caracteres para nombres largos.
func TestSlug_TruncaNombresLargos(t *testing.T) {
	got := sku.Slug("Refrigerador Industrial De Doble Puerta")
	assert.Len(t, got, 12)
	assert.Equal(t, "REFRIGERADOR", got)
}

// Generate produce SLUG-SUFIJO con sufijo de 8 caracteres, distinto en cada llamada.
func TestGenerate_FormatoYUnicidad(t *testing.T) {
	a := sku.Generate("Phone")
	b := sku.Generate("Phone")

	require.True(t, strings.HasPrefix(a, "PHONE-"), "el SKU debe iniciar con el slug: %s", a)
	require.Len(t, a, len("PHONE-")+8)
	assert.NotEqual(t, a, b, "dos SKU del mismo nombre deben diferir por el sufijo")
}

// Un nombre sin caracteres utilizables cae al slug de respaldo.
func TestGenerate_NombreVacioUsaFallback(t *testing.T) {
	got := sku.Generate("   ")
	assert.True(t, strings.HasPrefix(got, "PRODUCT-"), got)
}
