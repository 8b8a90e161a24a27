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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productColumns columnas en el orden que espera scanProduct. SKU y barcode
// son nullable en la tabla; aquí se leen como ''.
const productColumns = `id, name, description, COALESCE(sku, ''), COALESCE(barcode, ''), category,
	price, cost, stock_quantity, min_stock_level, max_stock_level, unit,
	supplier_id, image_url, is_active, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row scanner) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.SKU, &p.Barcode, &p.Category,
		&p.Price, &p.Cost, &p.StockQuantity, &p.MinStockLevel, &p.MaxStockLevel, &p.Unit,
		&p.SupplierID, &p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List devuelve los productos activos, filtrados y ordenados por nombre.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]entity.Product, error) {
	q := newQuery(`SELECT ` + productColumns + ` FROM products WHERE is_active = TRUE`)
	if f.Search != "" {
		t := like(f.Search)
		q.and(`(name ILIKE ? OR sku ILIKE ? OR barcode ILIKE ?)`, t, t, t)
	}
	if f.Category != "" {
		q.and(`category = ?`, f.Category)
	}
	if f.SupplierID > 0 {
		q.and(`supplier_id = ?`, f.SupplierID)
	}
	if f.LowStock {
		q.and(`stock_quantity <= min_stock_level`)
	}
	q.orderBy(`name ASC`).page(f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, q.sql(), q.bind()...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, *p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por ID (incluye inactivos).
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetBySKU obtiene un producto por SKU exacto.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE sku = $1`, sku)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return p, nil
}

// Create persiste un nuevo producto y devuelve el ID asignado.
// SKU y barcode vacíos se guardan como NULL para no chocar con el UNIQUE.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) (int64, error) {
	query := `
		INSERT INTO products (name, description, sku, barcode, category, price, cost,
			stock_quantity, min_stock_level, max_stock_level, unit, supplier_id, image_url, is_active)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		p.Name, p.Description, p.SKU, p.Barcode, p.Category, p.Price, p.Cost,
		p.StockQuantity, p.MinStockLevel, p.MaxStockLevel, p.Unit, p.SupplierID,
		p.ImageURL, p.IsActive,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

// Update actualiza los campos editables. No toca stock_quantity: el stock se
// mueve solo a través de movimientos transaccionales.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, sku = NULLIF($4, ''), barcode = NULLIF($5, ''),
			category = $6, price = $7, cost = $8, min_stock_level = $9, max_stock_level = $10,
			unit = $11, supplier_id = $12, image_url = $13, is_active = $14, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.SKU, p.Barcode, p.Category, p.Price, p.Cost,
		p.MinStockLevel, p.MaxStockLevel, p.Unit, p.SupplierID, p.ImageURL, p.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SoftDelete desactiva el producto y conserva la fila.
func (r *ProductRepo) SoftDelete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET is_active = FALSE, updated_at = now() WHERE id = $1 AND is_active = TRUE`, id)
	if err != nil {
		return false, fmt.Errorf("soft delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// UpdateStock fija la cantidad absoluta de stock (solo desde el registro
// transaccional de movimientos).
func (r *ProductRepo) UpdateStock(ctx context.Context, id int64, quantity int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET stock_quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// Categories devuelve las categorías distintas del catálogo activo.
func (r *ProductRepo) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT DISTINCT category FROM products WHERE is_active = TRUE AND category <> '' ORDER BY category ASC`)
	if err != nil {
		return nil, fmt.Errorf("product categories: %w", err)
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

// LowStock devuelve los productos activos en o bajo su umbral mínimo, los más
// críticos primero.
func (r *ProductRepo) LowStock(ctx context.Context) ([]entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_active = TRUE AND stock_quantity <= min_stock_level
		ORDER BY stock_quantity ASC, name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("low stock products: %w", err)
	}
	defer rows.Close()
	var list []entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, *p)
	}
	return list, rows.Err()
}
