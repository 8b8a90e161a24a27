package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementIn         = "in"
	MovementOut        = "out"
	MovementAdjustment = "adjustment"
)

// StockMovement es el registro de auditoría de un cambio de inventario.
// Reference* apunta opcionalmente al documento que lo originó (venta u orden
// de compra).
type StockMovement struct {
	ID            int64
	ProductID     int64
	MovementType  string // in | out | adjustment
	Quantity      int
	ReferenceType string // "sale" | "purchase_order" | ""
	ReferenceID   *int64
	Notes         string
	CreatedAt     time.Time
}
