package searchtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Caso 1: Fold elimina las diacríticas habituales del catálogo en francés.
func TestFold(t *testing.T) {
	casos := map[string]string{
		"unité":              "unite",
		"Clé à molette":      "Cle a molette",
		"Pièce détachée":     "Piece detachee",
		"Marteau":            "Marteau",
		"outillage électro":  "outillage electro",
		"":                   "",
	}
	for entrada, quiere := range casos {
		assert.Equal(t, quiere, Fold(entrada), "Fold(%q)", entrada)
	}
}

// Caso 2: Slug genera códigos aptos para SKU, sin guiones en los bordes ni
// repetidos.
func TestSlug(t *testing.T) {
	casos := map[string]string{
		"Clé à molette 250mm":   "CLE-A-MOLETTE-250MM",
		"  Marteau arrache-clous ": "MARTEAU-ARRACHE-CLOUS",
		"Vis (x100) — 4.5mm":    "VIS-X100-4-5MM",
		"":                      "",
		"---":                   "",
	}
	for entrada, quiere := range casos {
		assert.Equal(t, quiere, Slug(entrada), "Slug(%q)", entrada)
	}
}
