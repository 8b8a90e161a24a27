package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/brico-pos/internal/domain/entity"
	"github.com/tu-usuario/brico-pos/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del puerto StockMovementRepository sobre
// PostgreSQL (usable con pool o tx; el registro siempre corre dentro de tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador de persistencia para movimientos. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento de stock y devuelve el ID asignado.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) (int64, error) {
	query := `
		INSERT INTO stock_movements (product_id, movement_type, quantity, reference_type, reference_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		m.ProductID, m.MovementType, m.Quantity, m.ReferenceType, m.ReferenceID, m.Notes,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert stock movement: %w", err)
	}
	return id, nil
}

// ListByProduct devuelve los movimientos de un producto, los más recientes primero.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID int64, limit int) ([]entity.StockMovement, error) {
	query := `
		SELECT id, product_id, movement_type, quantity, reference_type, reference_id, notes, created_at
		FROM stock_movements
		WHERE product_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		err := rows.Scan(&m.ID, &m.ProductID, &m.MovementType, &m.Quantity,
			&m.ReferenceType, &m.ReferenceID, &m.Notes, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
