package repository

import (
	"context"

	"github.com/tu-usuario/brico-pos/internal/domain/entity"
)

// StockMovementRepository puerto de persistencia para la auditoría de stock.
type StockMovementRepository interface {
	Create(ctx context.Context, m *entity.StockMovement) (int64, error)
	ListByProduct(ctx context.Context, productID int64, limit int) ([]entity.StockMovement, error)
}
