package repository

import (
	"context"

	"github.com/tu-usuario/brico-pos/internal/domain/entity"
)

// PurchaseOrderFilter predicados opcionales de un listado de órdenes de compra.
type PurchaseOrderFilter struct {
	Status     string
	SupplierID int64 // 0 = sin restricción
	Limit      int
	Offset     int
}

// PurchaseOrderRepository puerto de persistencia para PurchaseOrder.
// Create persiste cabecera e ítems; GetByID devuelve la orden con sus ítems.
// El estado lo fija el caller (no hay máquina de transiciones).
type PurchaseOrderRepository interface {
	List(ctx context.Context, f PurchaseOrderFilter) ([]entity.PurchaseOrder, error)
	GetByID(ctx context.Context, id int64) (*entity.PurchaseOrder, error)
	Create(ctx context.Context, po *entity.PurchaseOrder) (int64, error)
	Update(ctx context.Context, po *entity.PurchaseOrder) error
	// UpdateStatus fija el estado; cuando status es "received" estampa
	// received_date. Devuelve false si el id no existía.
	UpdateStatus(ctx context.Context, id int64, status string) (bool, error)
	// Delete elimina cabecera e ítems (cascade). Devuelve false si no existía.
	Delete(ctx context.Context, id int64) (bool, error)
}
