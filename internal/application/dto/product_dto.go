package dto

// CreateProductRequest datos para crear un producto. Si SKU viene vacío se
// genera un slug a partir del nombre.
type CreateProductRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	SKU           string  `json:"sku"`
	Barcode       string  `json:"barcode"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	Cost          float64 `json:"cost"`
	StockQuantity int     `json:"stock_quantity"`
	MinStockLevel *int    `json:"min_stock_level"`
	MaxStockLevel *int    `json:"max_stock_level"`
	Unit          string  `json:"unit"`
	SupplierID    *int64  `json:"supplier_id"`
	ImageURL      string  `json:"image_url"`
}

// UpdateProductRequest reemplazo de los campos del producto.
type UpdateProductRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	SKU           string  `json:"sku"`
	Barcode       string  `json:"barcode"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	Cost          float64 `json:"cost"`
	MinStockLevel *int    `json:"min_stock_level"`
	MaxStockLevel *int    `json:"max_stock_level"`
	Unit          string  `json:"unit"`
	SupplierID    *int64  `json:"supplier_id"`
	ImageURL      string  `json:"image_url"`
	IsActive      *bool   `json:"is_active"`
}

// ProductResponse producto serializado.
type ProductResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	SKU           string  `json:"sku,omitempty"`
	Barcode       string  `json:"barcode,omitempty"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	Cost          float64 `json:"cost"`
	StockQuantity int     `json:"stock_quantity"`
	MinStockLevel int     `json:"min_stock_level"`
	MaxStockLevel int     `json:"max_stock_level"`
	Unit          string  `json:"unit"`
	SupplierID    *int64  `json:"supplier_id,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`
	IsActive      bool    `json:"is_active"`
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}
