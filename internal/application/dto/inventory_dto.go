package dto

// RegisterMovementRequest registra un movimiento de inventario.
// "in" suma al stock, "out" resta (rechazado si no alcanza), "adjustment"
// fija la cantidad absoluta.
type RegisterMovementRequest struct {
	ProductID     int64  `json:"product_id"`
	MovementType  string `json:"movement_type"`
	Quantity      int    `json:"quantity"`
	ReferenceType string `json:"reference_type"`
	ReferenceID   *int64 `json:"reference_id"`
	Notes         string `json:"notes"`
}

// StockMovementResponse movimiento serializado.
type StockMovementResponse struct {
	ID            int64  `json:"id"`
	ProductID     int64  `json:"product_id"`
	MovementType  string `json:"movement_type"`
	Quantity      int    `json:"quantity"`
	ReferenceType string `json:"reference_type,omitempty"`
	ReferenceID   *int64 `json:"reference_id,omitempty"`
	Notes         string `json:"notes,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}
