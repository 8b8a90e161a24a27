package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Caso 1: cada '?' se reescribe a $N en orden de llegada y los binds
// conservan ese mismo orden.
func TestQueryBuilder_NumeraPlaceholders(t *testing.T) {
	q := newQuery("SELECT id FROM sales WHERE TRUE").
		and("category = ?", "outillage").
		and("date BETWEEN ? AND ?", "2025-01-01", "2025-01-31").
		orderBy("date DESC, created_at DESC")

	assert.Equal(t,
		"SELECT id FROM sales WHERE TRUE AND category = $1 AND date BETWEEN $2 AND $3 ORDER BY date DESC, created_at DESC",
		q.sql())
	assert.Equal(t, []any{"outillage", "2025-01-01", "2025-01-31"}, q.bind())
}

// Caso 2: sin filtros la consulta base queda intacta y sin binds.
func TestQueryBuilder_SinFiltros(t *testing.T) {
	q := newQuery("SELECT id FROM products WHERE is_active = TRUE")

	assert.Equal(t, "SELECT id FROM products WHERE is_active = TRUE", q.sql())
	assert.Empty(t, q.bind())
}

// Caso 3: LIMIT/OFFSET solo aparecen cuando son positivos; el offset sin
// límite también es válido.
func TestQueryBuilder_Paginacion(t *testing.T) {
	casos := []struct {
		nombre        string
		limit, offset int
		quiere        string
		binds         []any
	}{
		{"sin paginación", 0, 0, "SELECT 1", nil},
		{"solo límite", 25, 0, "SELECT 1 LIMIT $1", []any{25}},
		{"límite y offset", 25, 50, "SELECT 1 LIMIT $1 OFFSET $2", []any{25, 50}},
		{"solo offset", 0, 50, "SELECT 1 OFFSET $1", []any{50}},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			q := newQuery("SELECT 1").page(c.limit, c.offset)
			assert.Equal(t, c.quiere, q.sql())
			if c.binds == nil {
				assert.Empty(t, q.bind())
			} else {
				assert.Equal(t, c.binds, q.bind())
			}
		})
	}
}

// Caso 4: la numeración continúa tras los predicados previos, de modo que
// componer filtros y paginación no colisiona.
func TestQueryBuilder_ComposicionCompleta(t *testing.T) {
	q := newQuery("SELECT id FROM customers WHERE is_active = TRUE").
		and("name ILIKE ?", like("dupont")).
		orderBy("name ASC").
		page(10, 20)

	require.Equal(t,
		"SELECT id FROM customers WHERE is_active = TRUE AND name ILIKE $1 ORDER BY name ASC LIMIT $2 OFFSET $3",
		q.sql())
	assert.Equal(t, []any{"%dupont%", 10, 20}, q.bind())
}

// Caso 5: like envuelve el término, incluido el vacío.
func TestLike(t *testing.T) {
	assert.Equal(t, "%vis%", like("vis"))
	assert.Equal(t, "%%", like(""))
}
