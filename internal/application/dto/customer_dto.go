package dto

// CreateCustomerRequest datos para crear un cliente. Solo name es obligatorio.
type CreateCustomerRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	PostalCode   string  `json:"postal_code"`
	CustomerType string  `json:"customer_type"`
	CreditLimit  float64 `json:"credit_limit"`
	Notes        string  `json:"notes"`
}

// UpdateCustomerRequest reemplazo de los campos del cliente. CreditLimit e
// IsActive son punteros para distinguir "omitido" (se conserva el valor
// almacenado) de "enviado en cero".
type UpdateCustomerRequest struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	PostalCode   string   `json:"postal_code"`
	CustomerType string   `json:"customer_type"`
	CreditLimit  *float64 `json:"credit_limit"`
	Notes        string   `json:"notes"`
	IsActive     *bool    `json:"is_active"`
}

// CustomerResponse cliente serializado.
type CustomerResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email,omitempty"`
	Phone        string  `json:"phone,omitempty"`
	Address      string  `json:"address,omitempty"`
	City         string  `json:"city,omitempty"`
	PostalCode   string  `json:"postal_code,omitempty"`
	CustomerType string  `json:"customer_type"`
	CreditLimit  float64 `json:"credit_limit"`
	Notes        string  `json:"notes,omitempty"`
	IsActive     bool    `json:"is_active"`
	CreatedAt    string  `json:"created_at,omitempty"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
}

// CustomerStatsResponse resumen de compras de un cliente.
type CustomerStatsResponse struct {
	TotalSales     int     `json:"totalSales"`
	TotalRevenue   float64 `json:"totalRevenue"`
	AverageSale    float64 `json:"averageSale"`
	LastSaleDate   string  `json:"lastSaleDate,omitempty"`
	LastSaleAmount float64 `json:"lastSaleAmount"`
}

// CustomerTypeCountResponse conteo de clientes activos por tipo.
type CustomerTypeCountResponse struct {
	CustomerType string `json:"customer_type"`
	Count        int    `json:"count"`
}

// TopCustomerResponse cliente con agregados de venta.
type TopCustomerResponse struct {
	CustomerResponse
	TotalOrders   int     `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgOrderValue float64 `json:"avg_order_value"`
	LastOrderDate string  `json:"last_order_date,omitempty"`
}

// InactiveCustomerResponse cliente activo sin compras recientes.
type InactiveCustomerResponse struct {
	CustomerResponse
	LastPurchaseDate string `json:"last_purchase_date,omitempty"`
}

// PurchaseHistoryResponse venta del historial de un cliente con el nombre
// actual del producto en catálogo (si la venta referencia producto).
type PurchaseHistoryResponse struct {
	SaleResponse
	CatalogProductName string `json:"product_name,omitempty"`
}
