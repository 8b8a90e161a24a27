package dto

// CreateSaleRequest datos para registrar una venta. totalPrice nunca se acepta
// del cliente: siempre se calcula como price × quantity.
type CreateSaleRequest struct {
	Date          string  `json:"date"`
	ProductName   string  `json:"productName"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	Category      string  `json:"category"`
	CustomerID    *int64  `json:"customer_id"`
	ProductID     *int64  `json:"product_id"`
	Discount      float64 `json:"discount"`
	TaxAmount     float64 `json:"tax_amount"`
	PaymentMethod string  `json:"payment_method"`
	Notes         string  `json:"notes"`
}

// UpdateSaleRequest reemplazo completo de los campos de la venta.
type UpdateSaleRequest = CreateSaleRequest

// SaleResponse venta serializada. productName y totalPrice conservan el
// camelCase del API original; el resto va en snake_case.
type SaleResponse struct {
	ID            int64   `json:"id"`
	SaleNumber    string  `json:"sale_number,omitempty"`
	Date          string  `json:"date"`
	CustomerID    *int64  `json:"customer_id,omitempty"`
	ProductID     *int64  `json:"product_id,omitempty"`
	ProductName   string  `json:"productName"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	Category      string  `json:"category"`
	TotalPrice    float64 `json:"totalPrice"`
	Discount      float64 `json:"discount"`
	TaxAmount     float64 `json:"tax_amount"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}

// CategorySummaryResponse fila de "top categorías" del dashboard.
type CategorySummaryResponse struct {
	Name    string  `json:"name"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

// RecentSaleResponse fila de "ventas recientes" del dashboard.
type RecentSaleResponse struct {
	ID          int64   `json:"id"`
	ProductName string  `json:"productName"`
	TotalPrice  float64 `json:"totalPrice"`
	Date        string  `json:"date"`
}

// DailyRevenueResponse ingresos de un día dentro de la ventana consultada.
type DailyRevenueResponse struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// SaleStatsResponse respuesta combinada de GET /api/sales/stats.
// Cuando el almacenamiento falla se devuelve esta misma forma con ceros y
// colecciones vacías (el dashboard degrada, no rompe).
type SaleStatsResponse struct {
	TotalSales    int                       `json:"totalSales"`
	TotalRevenue  float64                   `json:"totalRevenue"`
	TotalProducts int                       `json:"totalProducts"`
	AverageSale   float64                   `json:"averageSale"`
	TopCategories []CategorySummaryResponse `json:"topCategories"`
	RecentSales   []RecentSaleResponse      `json:"recentSales"`
	DailyRevenue  []DailyRevenueResponse    `json:"dailyRevenue"`
}
