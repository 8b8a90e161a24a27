package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleDDL(t *testing.T) string {
	t.Helper()
	for _, stmt := range schemaStatements {
		if strings.Contains(stmt, "CREATE TABLE IF NOT EXISTS sales") {
			return stmt
		}
	}
	t.Fatal("no hay DDL para la tabla sales")
	return ""
}

// Caso 1: la positividad de precio, cantidad y total se exige también en la
// capa de almacenamiento, no solo en los casos de uso; un INSERT directo con
// total cero debe rechazarse.
func TestSchema_VentasExigenPositividad(t *testing.T) {
	ddl := saleDDL(t)

	assert.Contains(t, ddl, "CHECK (price > 0)")
	assert.Contains(t, ddl, "CHECK (quantity > 0)")
	assert.Contains(t, ddl, "CHECK (total_price > 0)")
}

// Caso 2: todas las sentencias del bootstrap son idempotentes (IF NOT EXISTS),
// para que el arranque repetido no falle.
func TestSchema_Idempotente(t *testing.T) {
	require.NotEmpty(t, schemaStatements)
	for _, stmt := range schemaStatements {
		assert.Contains(t, stmt, "IF NOT EXISTS", "sentencia no idempotente:\n%s", stmt)
	}
}
