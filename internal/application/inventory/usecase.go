package inventory

import (
	"context"
	"time"

	"github.com/tu-usuario/brico-pos/internal/application/dto"
	"github.com/tu-usuario/brico-pos/internal/domain"
	"github.com/tu-usuario/brico-pos/internal/domain/repository"
)

// UseCase consultas de solo lectura sobre la auditoría de inventario.
type UseCase struct {
	movements repository.StockMovementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(movements repository.StockMovementRepository) *UseCase {
	return &UseCase{movements: movements}
}

// ListByProduct últimos movimientos de un producto, más reciente primero.
func (uc *UseCase) ListByProduct(ctx context.Context, productID int64, limit int) ([]dto.StockMovementResponse, error) {
	if productID <= 0 {
		return nil, domain.NewValidationError("product_id", "")
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := uc.movements.ListByProduct(ctx, productID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(rows))
	for _, m := range rows {
		created := ""
		if !m.CreatedAt.IsZero() {
			created = m.CreatedAt.Format(time.RFC3339)
		}
		out = append(out, dto.StockMovementResponse{
			ID:            m.ID,
			ProductID:     m.ProductID,
			MovementType:  m.MovementType,
			Quantity:      m.Quantity,
			ReferenceType: m.ReferenceType,
			ReferenceID:   m.ReferenceID,
			Notes:         m.Notes,
			CreatedAt:     created,
		})
	}
	return out, nil
}
