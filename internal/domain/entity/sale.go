package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	PaymentCash         = "cash"
	PaymentCredit       = "credit"
	PaymentCheck        = "check"
	PaymentBankTransfer = "bank_transfer"
)

// Sale es una línea de venta del punto de venta.
// ProductName es texto denormalizado: la venta conserva el nombre tal como se
// vendió aunque el producto cambie o se borre después. Invariante: TotalPrice
// siempre es Price × Quantity y los tres son positivos.
type Sale struct {
	ID            int64
	SaleNumber    string // identificador legible, único
	Date          string // fecha de la venta, formato YYYY-MM-DD
	CustomerID    *int64
	ProductID     *int64
	ProductName   string
	Price         decimal.Decimal
	Quantity      int
	Category      string
	TotalPrice    decimal.Decimal
	Discount      decimal.Decimal
	TaxAmount     decimal.Decimal
	PaymentMethod string // cash | credit | check | bank_transfer
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
