package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/brico-pos/internal/domain/entity"
)

// SaleFilter predicados opcionales de un listado de ventas.
// StartDate/EndDate solo aplican cuando ambos están presentes (rango cerrado).
type SaleFilter struct {
	Category  string
	Date      string // igualdad exacta, YYYY-MM-DD
	StartDate string
	EndDate   string
	Search    string // substring insensible a mayúsculas sobre productName
	Limit     int
	Offset    int
}

// SaleStats agregados globales del módulo de ventas. Los importes son cero
// cuando no hay filas, nunca null.
type SaleStats struct {
	TotalSales   int
	TotalRevenue decimal.Decimal
	TotalUnits   int
	AverageSale  decimal.Decimal
}

// CategorySummary ingresos y número de ventas de una categoría.
type CategorySummary struct {
	Name    string
	Sales   int
	Revenue decimal.Decimal
}

// RecentSale vista reducida para el dashboard.
type RecentSale struct {
	ID          int64
	ProductName string
	TotalPrice  decimal.Decimal
	Date        string
}

// DailyRevenue ingresos agregados de un día.
type DailyRevenue struct {
	Date    string
	Revenue decimal.Decimal
}

// SaleRepository puerto de persistencia para Sale. A diferencia de Customer,
// el borrado es físico (la fila desaparece).
type SaleRepository interface {
	List(ctx context.Context, f SaleFilter) ([]entity.Sale, error)
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	Create(ctx context.Context, s *entity.Sale) (int64, error)
	Update(ctx context.Context, s *entity.Sale) error
	// Delete elimina la fila. Devuelve false si el id no existía.
	Delete(ctx context.Context, id int64) (bool, error)
	Stats(ctx context.Context) (*SaleStats, error)
	TopCategories(ctx context.Context, limit int) ([]CategorySummary, error)
	RecentSales(ctx context.Context, limit int) ([]RecentSale, error)
	// DailyRevenue agrupa los ingresos por día dentro de la ventana de los
	// últimos 'days' días, en orden de fecha ascendente.
	DailyRevenue(ctx context.Context, days int) ([]DailyRevenue, error)
	Categories(ctx context.Context) ([]string, error)
}
