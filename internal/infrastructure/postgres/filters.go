package postgres

import (
	"fmt"
	"strings"
)

// queryBuilder acumula predicados conjuntivos sobre una consulta base y sus
// binds posicionales. Los fragmentos se escriben con '?' y se reescriben a
// $1, $2, ... en orden de llegada; ningún valor se interpola en el SQL.
type queryBuilder struct {
	sb   strings.Builder
	args []any
}

// newQuery inicia el builder con la consulta base (SELECT ... FROM ... WHERE <fijo>).
func newQuery(base string) *queryBuilder {
	q := &queryBuilder{}
	q.sb.WriteString(base)
	return q
}

// and agrega un predicado conjuntivo. Cada '?' del fragmento consume un valor.
func (q *queryBuilder) and(expr string, vals ...any) *queryBuilder {
	for _, v := range vals {
		q.args = append(q.args, v)
		expr = strings.Replace(expr, "?", fmt.Sprintf("$%d", len(q.args)), 1)
	}
	q.sb.WriteString(" AND ")
	q.sb.WriteString(expr)
	return q
}

// orderBy agrega la cláusula de orden (siempre un orden natural estable).
func (q *queryBuilder) orderBy(clause string) *queryBuilder {
	q.sb.WriteString(" ORDER BY ")
	q.sb.WriteString(clause)
	return q
}

// page agrega LIMIT/OFFSET solo cuando vienen suministrados (> 0).
// Un filtro ausente no impone restricción.
func (q *queryBuilder) page(limit, offset int) *queryBuilder {
	if limit > 0 {
		q.args = append(q.args, limit)
		fmt.Fprintf(&q.sb, " LIMIT $%d", len(q.args))
	}
	if offset > 0 {
		q.args = append(q.args, offset)
		fmt.Fprintf(&q.sb, " OFFSET $%d", len(q.args))
	}
	return q
}

// sql devuelve la consulta final.
func (q *queryBuilder) sql() string { return q.sb.String() }

// bind devuelve los binds en el orden de los placeholders.
func (q *queryBuilder) bind() []any { return q.args }

// like envuelve el término para una búsqueda por substring con ILIKE.
func like(term string) string {
	return "%" + term + "%"
}
