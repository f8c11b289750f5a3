// Package sku genera códigos SKU para productos del catálogo.
//
// El SKU no lo suministra el usuario en la importación masiva: se deriva del
// nombre del producto (slug sin acentos, mayúsculas) más un sufijo aleatorio
// que garantiza unicidad frente a nombres repetidos entre categorías.
package sku

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	slugMaxLen   = 12
	suffixLen    = 8
	separator    = "-"
	fallbackSlug = "PRODUCT"
)

// stripAccents descompone (NFD) y elimina marcas diacríticas ("Café" -> "Cafe").
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Generate construye un SKU con la forma SLUG-XXXXXXXX a partir del nombre.
func Generate(name string) string {
	slug := Slug(name)
	if slug == "" {
		slug = fallbackSlug
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:suffixLen]
	return slug + separator + suffix
}

// Slug normaliza un nombre a su parte estable del SKU: sin acentos, en
// mayúsculas, solo alfanuméricos, truncado a slugMaxLen.
func Slug(name string) string {
	clean, _, err := transform.String(stripAccents, name)
	if err != nil {
		clean = name
	}

	var b strings.Builder
	for _, r := range strings.ToUpper(clean) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() >= slugMaxLen {
			break
		}
	}
	return b.String()
}
