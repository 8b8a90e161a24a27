package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/brico-pos/internal/domain"
	"github.com/tu-usuario/brico-pos/internal/domain/entity"
	"github.com/tu-usuario/brico-pos/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// saleColumns columnas en el orden que espera scanSale. La fecha se lee
// formateada para que el dominio la maneje siempre como YYYY-MM-DD.
const saleColumns = `id, COALESCE(sale_number, ''), to_char(date, 'YYYY-MM-DD'),
	customer_id, product_id, product_name, price, quantity, category,
	total_price, discount, tax_amount, payment_method, notes, created_at, updated_at`

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func scanSale(row scanner) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.ID, &s.SaleNumber, &s.Date, &s.CustomerID, &s.ProductID, &s.ProductName,
		&s.Price, &s.Quantity, &s.Category, &s.TotalPrice, &s.Discount, &s.TaxAmount,
		&s.PaymentMethod, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List devuelve ventas filtradas, las más recientes primero.
func (r *SaleRepo) List(ctx context.Context, f repository.SaleFilter) ([]entity.Sale, error) {
	q := newQuery(`SELECT ` + saleColumns + ` FROM sales WHERE TRUE`)
	if f.Category != "" {
		q.and(`category = ?`, f.Category)
	}
	if f.Date != "" {
		q.and(`date = ?::date`, f.Date)
	}
	if f.StartDate != "" && f.EndDate != "" {
		q.and(`date BETWEEN ?::date AND ?::date`, f.StartDate, f.EndDate)
	}
	if f.Search != "" {
		q.and(`product_name ILIKE ?`, like(f.Search))
	}
	q.orderBy(`date DESC, created_at DESC`).page(f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, q.sql(), q.bind()...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, *s)
	}
	return list, rows.Err()
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	row := r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)
	s, err := scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// Create persiste una nueva venta y devuelve el ID asignado.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) (int64, error) {
	query := `
		INSERT INTO sales (sale_number, date, customer_id, product_id, product_name,
			price, quantity, category, total_price, discount, tax_amount, payment_method, notes)
		VALUES (NULLIF($1, ''), $2::date, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		s.SaleNumber, s.Date, s.CustomerID, s.ProductID, s.ProductName,
		s.Price, s.Quantity, s.Category, s.TotalPrice, s.Discount, s.TaxAmount,
		s.PaymentMethod, s.Notes,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			// customer_id o product_id apuntan a una fila inexistente.
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("insert sale: %w", err)
	}
	return id, nil
}

// Update reescribe todos los campos editables. TotalPrice ya viene calculado
// por el caso de uso (nunca se confía en el valor del cliente HTTP).
func (r *SaleRepo) Update(ctx context.Context, s *entity.Sale) error {
	query := `
		UPDATE sales
		SET date = $2::date, customer_id = $3, product_id = $4, product_name = $5,
			price = $6, quantity = $7, category = $8, total_price = $9,
			discount = $10, tax_amount = $11, payment_method = $12, notes = $13,
			updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Date, s.CustomerID, s.ProductID, s.ProductName,
		s.Price, s.Quantity, s.Category, s.TotalPrice, s.Discount, s.TaxAmount,
		s.PaymentMethod, s.Notes,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// Delete elimina la venta físicamente. Devuelve false si el id no existía.
func (r *SaleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete sale: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Stats devuelve los agregados globales de ventas. Sin filas, todos en cero.
func (r *SaleRepo) Stats(ctx context.Context) (*repository.SaleStats, error) {
	var st repository.SaleStats
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_price), 0), COALESCE(SUM(quantity), 0),
			COALESCE(AVG(total_price), 0)
		FROM sales`,
	).Scan(&st.TotalSales, &st.TotalRevenue, &st.TotalUnits, &st.AverageSale)
	if err != nil {
		return nil, fmt.Errorf("sale stats: %w", err)
	}
	return &st, nil
}

// TopCategories agrupa las ventas por categoría, mayores ingresos primero.
func (r *SaleRepo) TopCategories(ctx context.Context, limit int) ([]repository.CategorySummary, error) {
	query := `
		SELECT category, COUNT(*), COALESCE(SUM(total_price), 0)
		FROM sales
		GROUP BY category
		ORDER BY SUM(total_price) DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top categories: %w", err)
	}
	defer rows.Close()
	var list []repository.CategorySummary
	for rows.Next() {
		var cs repository.CategorySummary
		if err := rows.Scan(&cs.Name, &cs.Sales, &cs.Revenue); err != nil {
			return nil, fmt.Errorf("scan category summary: %w", err)
		}
		list = append(list, cs)
	}
	return list, rows.Err()
}

// RecentSales devuelve la vista reducida de las últimas ventas.
func (r *SaleRepo) RecentSales(ctx context.Context, limit int) ([]repository.RecentSale, error) {
	query := `
		SELECT id, product_name, total_price, to_char(date, 'YYYY-MM-DD')
		FROM sales
		ORDER BY date DESC, created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent sales: %w", err)
	}
	defer rows.Close()
	var list []repository.RecentSale
	for rows.Next() {
		var rs repository.RecentSale
		if err := rows.Scan(&rs.ID, &rs.ProductName, &rs.TotalPrice, &rs.Date); err != nil {
			return nil, fmt.Errorf("scan recent sale: %w", err)
		}
		list = append(list, rs)
	}
	return list, rows.Err()
}

// DailyRevenue agrupa los ingresos por día dentro de la ventana de los últimos
// 'days' días, en orden ascendente. Como máximo devuelve 'days' filas.
func (r *SaleRepo) DailyRevenue(ctx context.Context, days int) ([]repository.DailyRevenue, error) {
	query := `
		SELECT to_char(date, 'YYYY-MM-DD'), SUM(total_price)
		FROM sales
		WHERE date > CURRENT_DATE - $1::int
		GROUP BY date
		ORDER BY date ASC`
	rows, err := r.q.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("daily revenue: %w", err)
	}
	defer rows.Close()
	var list []repository.DailyRevenue
	for rows.Next() {
		var dr repository.DailyRevenue
		if err := rows.Scan(&dr.Date, &dr.Revenue); err != nil {
			return nil, fmt.Errorf("scan daily revenue: %w", err)
		}
		list = append(list, dr)
	}
	return list, rows.Err()
}

// Categories devuelve las categorías distintas usadas en ventas.
func (r *SaleRepo) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT DISTINCT category FROM sales WHERE category <> '' ORDER BY category ASC`)
	if err != nil {
		return nil, fmt.Errorf("sale categories: %w", err)
	}
	defer rows.Close()
	var list []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
