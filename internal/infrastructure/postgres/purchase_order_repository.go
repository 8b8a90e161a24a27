package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/brico-pos/internal/domain"
	"github.com/tu-usuario/brico-pos/internal/domain/entity"
	"github.com/tu-usuario/brico-pos/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// poColumns columnas de cabecera en el orden que espera scanPurchaseOrder.
// Las fechas opcionales se leen como '' cuando son NULL.
const poColumns = `id, COALESCE(po_number, ''), supplier_id, to_char(order_date, 'YYYY-MM-DD'),
	COALESCE(to_char(expected_date, 'YYYY-MM-DD'), ''),
	COALESCE(to_char(received_date, 'YYYY-MM-DD'), ''),
	status, total_amount, notes, created_at, updated_at`

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre
// PostgreSQL. Mantiene el pool directamente: Create escribe cabecera e ítems
// en una misma transacción.
type PurchaseOrderRepo struct {
	pool *pgxpool.Pool
}

// NewPurchaseOrderRepository construye el adaptador de persistencia para órdenes de compra.
func NewPurchaseOrderRepository(pool *pgxpool.Pool) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{pool: pool}
}

func scanPurchaseOrder(row scanner) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := row.Scan(
		&po.ID, &po.PONumber, &po.SupplierID, &po.OrderDate, &po.ExpectedDate,
		&po.ReceivedDate, &po.Status, &po.TotalAmount, &po.Notes, &po.CreatedAt, &po.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &po, nil
}

// List devuelve cabeceras de órdenes (sin ítems), las más recientes primero.
func (r *PurchaseOrderRepo) List(ctx context.Context, f repository.PurchaseOrderFilter) ([]entity.PurchaseOrder, error) {
	q := newQuery(`SELECT ` + poColumns + ` FROM purchase_orders WHERE TRUE`)
	if f.Status != "" {
		q.and(`status = ?`, f.Status)
	}
	if f.SupplierID > 0 {
		q.and(`supplier_id = ?`, f.SupplierID)
	}
	q.orderBy(`order_date DESC, created_at DESC`).page(f.Limit, f.Offset)

	rows, err := r.pool.Query(ctx, q.sql(), q.bind()...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []entity.PurchaseOrder
	for rows.Next() {
		po, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, *po)
	}
	return list, rows.Err()
}

// GetByID obtiene una orden con sus ítems.
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id int64) (*entity.PurchaseOrder, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+poColumns+` FROM purchase_orders WHERE id = $1`, id)
	po, err := scanPurchaseOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, purchase_order_id, product_id, quantity, unit_cost, total_cost, received_quantity, created_at
		FROM purchase_order_items
		WHERE purchase_order_id = $1
		ORDER BY id ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("get purchase order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.PurchaseOrderItem
		err := rows.Scan(&it.ID, &it.PurchaseOrderID, &it.ProductID, &it.Quantity,
			&it.UnitCost, &it.TotalCost, &it.ReceivedQuantity, &it.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order item: %w", err)
		}
		po.Items = append(po.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return po, nil
}

// Create persiste cabecera e ítems en una transacción y devuelve el ID de la
// cabecera. O entra todo, o no entra nada.
func (r *PurchaseOrderRepo) Create(ctx context.Context, po *entity.PurchaseOrder) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO purchase_orders (po_number, supplier_id, order_date, expected_date, status, total_amount, notes)
		VALUES (NULLIF($1, ''), $2, $3::date, NULLIF($4, '')::date, $5, $6, $7)
		RETURNING id`,
		po.PONumber, po.SupplierID, po.OrderDate, po.ExpectedDate,
		po.Status, po.TotalAmount, po.Notes,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			// supplier_id apunta a una fila inexistente.
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("insert purchase order: %w", err)
	}

	for _, it := range po.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO purchase_order_items (purchase_order_id, product_id, quantity, unit_cost, total_cost)
			VALUES ($1, $2, $3, $4, $5)`,
			id, it.ProductID, it.Quantity, it.UnitCost, it.TotalCost,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return 0, domain.ErrNotFound
			}
			return 0, fmt.Errorf("insert purchase order item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return id, nil
}

// Update actualiza la cabecera de la orden (los ítems no se editan, se
// reemplaza la orden completa).
func (r *PurchaseOrderRepo) Update(ctx context.Context, po *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders
		SET supplier_id = $2, order_date = $3::date, expected_date = NULLIF($4, '')::date,
			status = $5, total_amount = $6, notes = $7, updated_at = now()
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		po.ID, po.SupplierID, po.OrderDate, po.ExpectedDate,
		po.Status, po.TotalAmount, po.Notes,
	)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	return nil
}

// UpdateStatus fija el estado. Cuando pasa a recibida, estampa received_date
// con la fecha del día.
func (r *PurchaseOrderRepo) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	query := `UPDATE purchase_orders SET status = $2, updated_at = now() WHERE id = $1`
	if status == entity.POStatusReceived {
		query = `UPDATE purchase_orders SET status = $2, received_date = CURRENT_DATE, updated_at = now() WHERE id = $1`
	}
	cmd, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return false, fmt.Errorf("update purchase order status: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina cabecera e ítems (ON DELETE CASCADE). Devuelve false si no
// existía.
func (r *PurchaseOrderRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete purchase order: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
