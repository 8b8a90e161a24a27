package inventory

import (
	"context"

	"github.com/tu-usuario/brico-pos/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con repositorios atados a la
// misma tx. Si fn devuelve error se hace rollback; si no, commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movements repository.StockMovementRepository,
		products repository.ProductRepository,
	) error) error
}
