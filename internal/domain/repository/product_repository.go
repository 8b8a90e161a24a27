package repository

import (
	"context"

	"github.com/tu-usuario/brico-pos/internal/domain/entity"
)

// ProductFilter predicados opcionales de un listado de productos.
type ProductFilter struct {
	Search     string // substring insensible a mayúsculas sobre name/sku/barcode
	Category   string
	SupplierID int64 // 0 = sin restricción
	LowStock   bool  // solo productos en o bajo su umbral mínimo
	Limit      int
	Offset     int
}

// ProductRepository puerto de persistencia para Product (borrado lógico).
type ProductRepository interface {
	List(ctx context.Context, f ProductFilter) ([]entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Create(ctx context.Context, p *entity.Product) (int64, error)
	Update(ctx context.Context, p *entity.Product) error
	SoftDelete(ctx context.Context, id int64) (bool, error)
	// UpdateStock fija la cantidad absoluta de stock. Solo debe invocarse
	// desde el registro transaccional de movimientos.
	UpdateStock(ctx context.Context, id int64, quantity int) error
	Categories(ctx context.Context) ([]string, error)
	LowStock(ctx context.Context) ([]entity.Product, error)
}
