package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/brico-pos/internal/domain/entity"
)

// CustomerFilter son los predicados opcionales de un listado de clientes.
// Un campo en su valor cero no impone restricción. Los predicados presentes
// se aplican de forma conjuntiva sobre el filtro implícito is_active.
type CustomerFilter struct {
	Search       string // substring insensible a mayúsculas sobre name/email/phone
	CustomerType string
	City         string
	Limit        int
	Offset       int
}

// CustomerStats resumen de compras de un cliente.
type CustomerStats struct {
	TotalSales     int
	TotalRevenue   decimal.Decimal
	AverageSale    decimal.Decimal
	LastSaleDate   string
	LastSaleAmount decimal.Decimal
}

// TopCustomer cliente con agregados de venta (solo clientes con ingresos > 0).
type TopCustomer struct {
	Customer      entity.Customer
	TotalOrders   int
	TotalRevenue  decimal.Decimal
	AvgOrderValue decimal.Decimal
	LastOrderDate string
}

// InactiveCustomer cliente activo sin compras recientes.
type InactiveCustomer struct {
	Customer         entity.Customer
	LastPurchaseDate string // vacío si nunca compró
}

// CustomerTypeCount conteo de clientes activos por tipo.
type CustomerTypeCount struct {
	CustomerType string
	Count        int
}

// PurchaseHistoryEntry venta de un cliente con el nombre actual del producto.
type PurchaseHistoryEntry struct {
	Sale        entity.Sale
	ProductName string // nombre actual en catálogo; vacío si la venta no referencia producto
}

// CustomerRepository puerto de persistencia para Customer.
// Las búsquedas por fila única devuelven (nil, nil) cuando no hay fila;
// los callers traducen eso a "no encontrado", nunca a un error.
type CustomerRepository interface {
	List(ctx context.Context, f CustomerFilter) ([]entity.Customer, error)
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	Create(ctx context.Context, c *entity.Customer) (int64, error)
	Update(ctx context.Context, c *entity.Customer) error
	// SoftDelete marca is_active=false. Devuelve false si el id no existía.
	SoftDelete(ctx context.Context, id int64) (bool, error)
	Search(ctx context.Context, term string, limit int) ([]entity.Customer, error)
	Types(ctx context.Context) ([]CustomerTypeCount, error)
	Top(ctx context.Context, limit int) ([]TopCustomer, error)
	Inactive(ctx context.Context, days int) ([]InactiveCustomer, error)
	Stats(ctx context.Context, customerID int64) (*CustomerStats, error)
	PurchaseHistory(ctx context.Context, customerID int64, limit int) ([]PurchaseHistoryEntry, error)
}
