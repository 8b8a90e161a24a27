// Package searchtext normaliza texto del catálogo (francés: "unité",
// "Outils manuels") para generar códigos y comparar términos sin acentos.
package searchtext

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold elimina las marcas diacríticas: "unité" → "unite", "Marteau Arrache-Clous" → "Marteau Arrache-Clous".
// Si la transformación falla devuelve el texto original sin tocar.
func Fold(s string) string {
	out, _, err := transform.String(foldChain, s)
	if err != nil {
		return s
	}
	return out
}

// Slug genera un código apto para SKU a partir de un nombre: pliega acentos,
// pasa a mayúsculas y reemplaza los separadores por guiones.
// "Clé à molette 250mm" → "CLE-A-MOLETTE-250MM".
func Slug(s string) string {
	folded := strings.ToUpper(Fold(strings.TrimSpace(s)))
	var b strings.Builder
	lastDash := true // evita guión inicial
	for _, r := range folded {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
