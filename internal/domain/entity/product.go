package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo de la ferretería.
// SKU y Barcode son únicos cuando no están vacíos; el stock se mueve a través
// de StockMovement, nunca por escritura directa desde los handlers.
type Product struct {
	ID            int64
	Name          string
	Description   string
	SKU           string
	Barcode       string
	Category      string
	Price         decimal.Decimal // precio de venta, >= 0
	Cost          decimal.Decimal // costo de compra, >= 0
	StockQuantity int             // >= 0
	MinStockLevel int
	MaxStockLevel int
	Unit          string // "unité", "kg", "m", ...
	SupplierID    *int64
	ImageURL      string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LowStock indica si el producto está en o por debajo del umbral mínimo.
func (p *Product) LowStock() bool {
	return p.StockQuantity <= p.MinStockLevel
}
