package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cliente soportados.
const (
	CustomerTypeRetail     = "retail"
	CustomerTypeWholesale  = "wholesale"
	CustomerTypeCommercial = "commercial"
)

// Customer representa un cliente de la tienda.
// El borrado es lógico: IsActive pasa a false y la fila se conserva.
type Customer struct {
	ID           int64
	Name         string
	Email        string // único cuando no está vacío
	Phone        string
	Address      string
	City         string
	PostalCode   string
	CustomerType string          // retail | wholesale | commercial
	CreditLimit  decimal.Decimal // nunca negativo
	Notes        string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
