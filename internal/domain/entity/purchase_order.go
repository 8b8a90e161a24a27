package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra. No hay máquina de transiciones: el estado
// lo fija el caller directamente (pending → ordered → partial → received, o
// cancelled en cualquier punto antes de received).
const (
	POStatusPending   = "pending"
	POStatusOrdered   = "ordered"
	POStatusPartial   = "partial"
	POStatusReceived  = "received"
	POStatusCancelled = "cancelled"
)

// PurchaseOrder es la cabecera de una orden de compra a un proveedor.
type PurchaseOrder struct {
	ID           int64
	PONumber     string // único
	SupplierID   int64
	OrderDate    string // YYYY-MM-DD
	ExpectedDate string
	ReceivedDate string
	Status       string
	TotalAmount  decimal.Decimal
	Notes        string
	Items        []PurchaseOrderItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PurchaseOrderItem es una línea de la orden: cantidad pedida vs recibida.
type PurchaseOrderItem struct {
	ID               int64
	PurchaseOrderID  int64
	ProductID        int64
	Quantity         int // > 0
	UnitCost         decimal.Decimal
	TotalCost        decimal.Decimal
	ReceivedQuantity int
	CreatedAt        time.Time
}
