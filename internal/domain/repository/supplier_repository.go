package repository

import (
	"context"

	"github.com/tu-usuario/brico-pos/internal/domain/entity"
)

// SupplierFilter predicados opcionales de un listado de proveedores.
type SupplierFilter struct {
	Search string // substring insensible a mayúsculas sobre name/contact_person/email
	City   string
	Limit  int
	Offset int
}

// SupplierRepository puerto de persistencia para Supplier (borrado lógico).
type SupplierRepository interface {
	List(ctx context.Context, f SupplierFilter) ([]entity.Supplier, error)
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	Create(ctx context.Context, s *entity.Supplier) (int64, error)
	Update(ctx context.Context, s *entity.Supplier) error
	SoftDelete(ctx context.Context, id int64) (bool, error)
}
