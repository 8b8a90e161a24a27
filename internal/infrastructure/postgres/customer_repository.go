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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// customerColumns columnas en el orden que espera scanCustomer. El email es
// nullable en la tabla (UNIQUE permite varios NULL); aquí se lee como ''.
const customerColumns = `id, name, COALESCE(email, ''), phone, address, city, postal_code,
	customer_type, credit_limit, notes, is_active, created_at, updated_at`

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de persistencia para clientes. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func scanCustomer(row scanner) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.City, &c.PostalCode,
		&c.CustomerType, &c.CreditLimit, &c.Notes, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List devuelve los clientes activos, filtrados y ordenados por nombre.
func (r *CustomerRepo) List(ctx context.Context, f repository.CustomerFilter) ([]entity.Customer, error) {
	q := newQuery(`SELECT ` + customerColumns + ` FROM customers WHERE is_active = TRUE`)
	if f.Search != "" {
		t := like(f.Search)
		q.and(`(name ILIKE ? OR email ILIKE ? OR phone ILIKE ?)`, t, t, t)
	}
	if f.CustomerType != "" {
		q.and(`customer_type = ?`, f.CustomerType)
	}
	if f.City != "" {
		q.and(`city ILIKE ?`, like(f.City))
	}
	q.orderBy(`name ASC`).page(f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, q.sql(), q.bind()...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, *c)
	}
	return list, rows.Err()
}

// GetByID obtiene un cliente por ID (incluye inactivos).
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	row := r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// GetByEmail obtiene un cliente por email exacto.
func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	row := r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE email = $1`, email)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by email: %w", err)
	}
	return c, nil
}

// Create persiste un nuevo cliente y devuelve el ID asignado.
// Un email vacío se guarda como NULL para no chocar con el UNIQUE.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) (int64, error) {
	query := `
		INSERT INTO customers (name, email, phone, address, city, postal_code, customer_type, credit_limit, notes, is_active)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		c.Name, c.Email, c.Phone, c.Address, c.City, c.PostalCode,
		c.CustomerType, c.CreditLimit, c.Notes, c.IsActive,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert customer: %w", err)
	}
	return id, nil
}

// Update actualiza todos los campos editables de un cliente.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, email = NULLIF($3, ''), phone = $4, address = $5, city = $6,
			postal_code = $7, customer_type = $8, credit_limit = $9, notes = $10,
			is_active = $11, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.City, c.PostalCode,
		c.CustomerType, c.CreditLimit, c.Notes, c.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// SoftDelete desactiva el cliente y conserva la fila (las ventas lo referencian).
func (r *CustomerRepo) SoftDelete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE customers SET is_active = FALSE, updated_at = now() WHERE id = $1 AND is_active = TRUE`, id)
	if err != nil {
		return false, fmt.Errorf("soft delete customer: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Search busca clientes activos por término sobre nombre, email y teléfono.
func (r *CustomerRepo) Search(ctx context.Context, term string, limit int) ([]entity.Customer, error) {
	t := like(term)
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE is_active = TRUE AND (name ILIKE $1 OR email ILIKE $1 OR phone ILIKE $1)
		ORDER BY name ASC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, t, limit)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	defer rows.Close()
	var list []entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, *c)
	}
	return list, rows.Err()
}

// Types cuenta los clientes activos por tipo.
func (r *CustomerRepo) Types(ctx context.Context) ([]repository.CustomerTypeCount, error) {
	query := `
		SELECT customer_type, COUNT(*)
		FROM customers
		WHERE is_active = TRUE
		GROUP BY customer_type
		ORDER BY COUNT(*) DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("customer types: %w", err)
	}
	defer rows.Close()
	var list []repository.CustomerTypeCount
	for rows.Next() {
		var tc repository.CustomerTypeCount
		if err := rows.Scan(&tc.CustomerType, &tc.Count); err != nil {
			return nil, fmt.Errorf("scan customer type: %w", err)
		}
		list = append(list, tc)
	}
	return list, rows.Err()
}

// Top devuelve los clientes con mayores ingresos acumulados. Los clientes sin
// ventas quedan fuera (HAVING > 0).
func (r *CustomerRepo) Top(ctx context.Context, limit int) ([]repository.TopCustomer, error) {
	query := `
		SELECT c.id, c.name, COALESCE(c.email, ''), c.phone, c.address, c.city, c.postal_code,
			c.customer_type, c.credit_limit, c.notes, c.is_active, c.created_at, c.updated_at,
			COUNT(s.id), COALESCE(SUM(s.total_price), 0), COALESCE(AVG(s.total_price), 0),
			COALESCE(to_char(MAX(s.date), 'YYYY-MM-DD'), '')
		FROM customers c
		JOIN sales s ON s.customer_id = c.id
		WHERE c.is_active = TRUE
		GROUP BY c.id
		HAVING SUM(s.total_price) > 0
		ORDER BY SUM(s.total_price) DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}
	defer rows.Close()
	var list []repository.TopCustomer
	for rows.Next() {
		var tc repository.TopCustomer
		c := &tc.Customer
		err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.City, &c.PostalCode,
			&c.CustomerType, &c.CreditLimit, &c.Notes, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
			&tc.TotalOrders, &tc.TotalRevenue, &tc.AvgOrderValue, &tc.LastOrderDate,
		)
		if err != nil {
			return nil, fmt.Errorf("scan top customer: %w", err)
		}
		list = append(list, tc)
	}
	return list, rows.Err()
}

// Inactive devuelve los clientes activos sin compras en los últimos 'days'
// días. Los que nunca compraron van primero (NULLS FIRST).
func (r *CustomerRepo) Inactive(ctx context.Context, days int) ([]repository.InactiveCustomer, error) {
	query := `
		SELECT c.id, c.name, COALESCE(c.email, ''), c.phone, c.address, c.city, c.postal_code,
			c.customer_type, c.credit_limit, c.notes, c.is_active, c.created_at, c.updated_at,
			COALESCE(to_char(MAX(s.date), 'YYYY-MM-DD'), '')
		FROM customers c
		LEFT JOIN sales s ON s.customer_id = c.id
		WHERE c.is_active = TRUE
		GROUP BY c.id
		HAVING MAX(s.date) IS NULL OR MAX(s.date) < CURRENT_DATE - $1::int
		ORDER BY MAX(s.date) ASC NULLS FIRST`
	rows, err := r.q.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("inactive customers: %w", err)
	}
	defer rows.Close()
	var list []repository.InactiveCustomer
	for rows.Next() {
		var ic repository.InactiveCustomer
		c := &ic.Customer
		err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.City, &c.PostalCode,
			&c.CustomerType, &c.CreditLimit, &c.Notes, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
			&ic.LastPurchaseDate,
		)
		if err != nil {
			return nil, fmt.Errorf("scan inactive customer: %w", err)
		}
		list = append(list, ic)
	}
	return list, rows.Err()
}

// Stats resume las compras de un cliente. Los importes son cero cuando no hay
// ventas; LastSale* refleja la venta más reciente.
func (r *CustomerRepo) Stats(ctx context.Context, customerID int64) (*repository.CustomerStats, error) {
	var st repository.CustomerStats
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_price), 0), COALESCE(AVG(total_price), 0),
			COALESCE(to_char(MAX(date), 'YYYY-MM-DD'), '')
		FROM sales WHERE customer_id = $1`, customerID,
	).Scan(&st.TotalSales, &st.TotalRevenue, &st.AverageSale, &st.LastSaleDate)
	if err != nil {
		return nil, fmt.Errorf("customer stats: %w", err)
	}
	if st.TotalSales > 0 {
		err = r.q.QueryRow(ctx, `
			SELECT total_price FROM sales
			WHERE customer_id = $1
			ORDER BY date DESC, created_at DESC
			LIMIT 1`, customerID,
		).Scan(&st.LastSaleAmount)
		if err != nil {
			return nil, fmt.Errorf("customer last sale: %w", err)
		}
	}
	return &st, nil
}

// PurchaseHistory devuelve las ventas más recientes del cliente con el nombre
// actual del producto en catálogo (vacío si la venta no referencia producto).
func (r *CustomerRepo) PurchaseHistory(ctx context.Context, customerID int64, limit int) ([]repository.PurchaseHistoryEntry, error) {
	query := `
		SELECT s.id, COALESCE(s.sale_number, ''), to_char(s.date, 'YYYY-MM-DD'),
			s.customer_id, s.product_id, s.product_name, s.price, s.quantity, s.category,
			s.total_price, s.discount, s.tax_amount, s.payment_method, s.notes,
			s.created_at, s.updated_at, COALESCE(p.name, '')
		FROM sales s
		LEFT JOIN products p ON p.id = s.product_id
		WHERE s.customer_id = $1
		ORDER BY s.date DESC, s.created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("purchase history: %w", err)
	}
	defer rows.Close()
	var list []repository.PurchaseHistoryEntry
	for rows.Next() {
		var e repository.PurchaseHistoryEntry
		s := &e.Sale
		err := rows.Scan(
			&s.ID, &s.SaleNumber, &s.Date, &s.CustomerID, &s.ProductID, &s.ProductName,
			&s.Price, &s.Quantity, &s.Category, &s.TotalPrice, &s.Discount, &s.TaxAmount,
			&s.PaymentMethod, &s.Notes, &s.CreatedAt, &s.UpdatedAt, &e.ProductName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan purchase history: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
