package dto

// CreateSupplierRequest datos para crear un proveedor. Solo name es obligatorio.
type CreateSupplierRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	PaymentTerms  string `json:"payment_terms"`
	Notes         string `json:"notes"`
}

// UpdateSupplierRequest reemplazo de los campos del proveedor.
type UpdateSupplierRequest struct {
	CreateSupplierRequest
	IsActive *bool `json:"is_active"`
}

// SupplierResponse proveedor serializado.
type SupplierResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	PaymentTerms  string `json:"payment_terms"`
	Notes         string `json:"notes,omitempty"`
	IsActive      bool   `json:"is_active"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}
