package dto

// PurchaseOrderItemRequest línea de una orden de compra.
type PurchaseOrderItemRequest struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitCost  float64 `json:"unit_cost"`
}

// CreatePurchaseOrderRequest cabecera + líneas. El total se calcula de las
// líneas, nunca se acepta del cliente. po_number se genera si viene vacío.
type CreatePurchaseOrderRequest struct {
	PONumber     string                     `json:"po_number"`
	SupplierID   int64                      `json:"supplier_id"`
	OrderDate    string                     `json:"order_date"`
	ExpectedDate string                     `json:"expected_date"`
	Notes        string                     `json:"notes"`
	Items        []PurchaseOrderItemRequest `json:"items"`
}

// UpdatePurchaseOrderRequest actualización de la cabecera.
type UpdatePurchaseOrderRequest struct {
	OrderDate    string `json:"order_date"`
	ExpectedDate string `json:"expected_date"`
	Notes        string `json:"notes"`
}

// UpdatePOStatusRequest cambio de estado (lo fija el caller directamente).
type UpdatePOStatusRequest struct {
	Status string `json:"status"`
}

// PurchaseOrderItemResponse línea serializada.
type PurchaseOrderItemResponse struct {
	ID               int64   `json:"id"`
	ProductID        int64   `json:"product_id"`
	Quantity         int     `json:"quantity"`
	UnitCost         float64 `json:"unit_cost"`
	TotalCost        float64 `json:"total_cost"`
	ReceivedQuantity int     `json:"received_quantity"`
}

// PurchaseOrderResponse orden serializada; Items solo se incluye en el GET
// por id.
type PurchaseOrderResponse struct {
	ID           int64                       `json:"id"`
	PONumber     string                      `json:"po_number"`
	SupplierID   int64                       `json:"supplier_id"`
	OrderDate    string                      `json:"order_date"`
	ExpectedDate string                      `json:"expected_date,omitempty"`
	ReceivedDate string                      `json:"received_date,omitempty"`
	Status       string                      `json:"status"`
	TotalAmount  float64                     `json:"total_amount"`
	Notes        string                      `json:"notes,omitempty"`
	Items        []PurchaseOrderItemResponse `json:"items,omitempty"`
	CreatedAt    string                      `json:"created_at,omitempty"`
	UpdatedAt    string                      `json:"updated_at,omitempty"`
}
