package inventory

import (
	"context"
	"strings"

	"github.com/tu-usuario/brico-pos/internal/application/dto"
	"github.com/tu-usuario/brico-pos/internal/domain"
	"github.com/tu-usuario/brico-pos/internal/domain/entity"
	"github.com/tu-usuario/brico-pos/internal/domain/repository"
)

// RegisterMovementUseCase registra un movimiento de inventario y ajusta el
// stock del producto en la misma transacción: o se persisten ambos o ninguno.
type RegisterMovementUseCase struct {
	tx TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(tx TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{tx: tx}
}

// Register valida y aplica el movimiento:
//   - "in" suma Quantity al stock.
//   - "out" resta Quantity; domain.ErrInsufficientStock si no alcanza.
//   - "adjustment" fija Quantity como cantidad absoluta.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, in dto.RegisterMovementRequest) (*dto.StockMovementResponse, error) {
	if in.ProductID <= 0 {
		return nil, domain.NewValidationError("product_id", "")
	}
	switch in.MovementType {
	case entity.MovementIn, entity.MovementOut:
		if in.Quantity <= 0 {
			return nil, domain.NewValidationError("quantity", "debe ser mayor que 0")
		}
	case entity.MovementAdjustment:
		if in.Quantity < 0 {
			return nil, domain.NewValidationError("quantity", "no puede ser negativo")
		}
	default:
		return nil, domain.NewValidationError("movement_type", "tipo de movimiento desconocido")
	}

	movement := &entity.StockMovement{
		ProductID:     in.ProductID,
		MovementType:  in.MovementType,
		Quantity:      in.Quantity,
		ReferenceType: strings.TrimSpace(in.ReferenceType),
		ReferenceID:   in.ReferenceID,
		Notes:         strings.TrimSpace(in.Notes),
	}

	err := uc.tx.Run(ctx, func(
		movements repository.StockMovementRepository,
		products repository.ProductRepository,
	) error {
		product, err := products.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newStock := product.StockQuantity
		switch in.MovementType {
		case entity.MovementIn:
			newStock += in.Quantity
		case entity.MovementOut:
			if in.Quantity > product.StockQuantity {
				return domain.ErrInsufficientStock
			}
			newStock -= in.Quantity
		case entity.MovementAdjustment:
			newStock = in.Quantity
		}

		id, err := movements.Create(ctx, movement)
		if err != nil {
			return err
		}
		movement.ID = id
		return products.UpdateStock(ctx, in.ProductID, newStock)
	})
	if err != nil {
		return nil, err
	}

	return &dto.StockMovementResponse{
		ID:            movement.ID,
		ProductID:     movement.ProductID,
		MovementType:  movement.MovementType,
		Quantity:      movement.Quantity,
		ReferenceType: movement.ReferenceType,
		ReferenceID:   movement.ReferenceID,
		Notes:         movement.Notes,
	}, nil
}
