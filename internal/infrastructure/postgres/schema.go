package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea las tablas e índices si no existen. Es idempotente y se
// ejecuta en el arranque, antes de aceptar tráfico.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS suppliers (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		contact_person TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		postal_code TEXT NOT NULL DEFAULT '',
		payment_terms TEXT NOT NULL DEFAULT 'Net 30',
		notes TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS customers (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE,
		phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		postal_code TEXT NOT NULL DEFAULT '',
		customer_type TEXT NOT NULL DEFAULT 'retail'
			CHECK (customer_type IN ('retail', 'wholesale', 'commercial')),
		credit_limit NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (credit_limit >= 0),
		notes TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		sku TEXT UNIQUE,
		barcode TEXT UNIQUE,
		category TEXT NOT NULL DEFAULT '',
		price NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (price >= 0),
		cost NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (cost >= 0),
		stock_quantity INTEGER NOT NULL DEFAULT 0 CHECK (stock_quantity >= 0),
		min_stock_level INTEGER NOT NULL DEFAULT 5,
		max_stock_level INTEGER NOT NULL DEFAULT 100,
		unit TEXT NOT NULL DEFAULT 'unité',
		supplier_id BIGINT REFERENCES suppliers(id),
		image_url TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS sales (
		id BIGSERIAL PRIMARY KEY,
		sale_number TEXT UNIQUE,
		date DATE NOT NULL,
		customer_id BIGINT REFERENCES customers(id),
		product_id BIGINT REFERENCES products(id),
		product_name TEXT NOT NULL,
		price NUMERIC(12,2) NOT NULL CHECK (price > 0),
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		category TEXT NOT NULL,
		total_price NUMERIC(12,2) NOT NULL CHECK (total_price > 0),
		discount NUMERIC(12,2) NOT NULL DEFAULT 0,
		tax_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
		payment_method TEXT NOT NULL DEFAULT 'cash'
			CHECK (payment_method IN ('cash', 'credit', 'check', 'bank_transfer')),
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS purchase_orders (
		id BIGSERIAL PRIMARY KEY,
		po_number TEXT UNIQUE,
		supplier_id BIGINT NOT NULL REFERENCES suppliers(id),
		order_date DATE NOT NULL,
		expected_date DATE,
		received_date DATE,
		status TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'ordered', 'partial', 'received', 'cancelled')),
		total_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS purchase_order_items (
		id BIGSERIAL PRIMARY KEY,
		purchase_order_id BIGINT NOT NULL REFERENCES purchase_orders(id) ON DELETE CASCADE,
		product_id BIGINT NOT NULL REFERENCES products(id),
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		unit_cost NUMERIC(12,2) NOT NULL CHECK (unit_cost >= 0),
		total_cost NUMERIC(12,2) NOT NULL,
		received_quantity INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS stock_movements (
		id BIGSERIAL PRIMARY KEY,
		product_id BIGINT NOT NULL REFERENCES products(id),
		movement_type TEXT NOT NULL
			CHECK (movement_type IN ('in', 'out', 'adjustment')),
		quantity INTEGER NOT NULL,
		reference_type TEXT NOT NULL DEFAULT '',
		reference_id BIGINT,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT 'employee'
			CHECK (role IN ('admin', 'manager', 'employee')),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		last_login TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales (date)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_category ON sales (category)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_customer ON sales (customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products (category)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_movements_product ON stock_movements (product_id)`,
	`CREATE INDEX IF NOT EXISTS idx_po_supplier ON purchase_orders (supplier_id)`,
}
