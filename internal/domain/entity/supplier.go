package entity

import "time"

// Supplier agrupa los datos de contacto y condiciones de pago de un proveedor.
type Supplier struct {
	ID            int64
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	City          string
	PostalCode    string
	PaymentTerms  string // "Net 30" por defecto
	Notes         string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
