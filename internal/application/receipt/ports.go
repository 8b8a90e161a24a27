package receipt

import (
	"context"

	"github.com/tu-usuario/brico-pos/internal/domain/entity"
)

// Generator renderiza el recibo de una venta. customer puede ser nil
// (venta de mostrador sin cliente asociado).
type Generator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale, customer *entity.Customer) ([]byte, error)
}
