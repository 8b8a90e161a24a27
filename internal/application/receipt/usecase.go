package receipt

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tu-usuario/brico-pos/internal/domain"
	"github.com/tu-usuario/brico-pos/internal/domain/entity"
	"github.com/tu-usuario/brico-pos/internal/domain/repository"
)

// UseCase genera el recibo PDF de una venta.
type UseCase struct {
	sales     repository.SaleRepository
	customers repository.CustomerRepository
	generator Generator
}

// NewUseCase construye el caso de uso inyectando sus dependencias.
func NewUseCase(sales repository.SaleRepository, customers repository.CustomerRepository, generator Generator) *UseCase {
	return &UseCase{sales: sales, customers: customers, generator: generator}
}

// Download carga la venta (y su cliente si lo hay) y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la venta no existe.
func (uc *UseCase) Download(ctx context.Context, saleID int64) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.sales.GetByID(ctx, saleID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}

	var customer *entity.Customer
	if sale.CustomerID != nil {
		customer, err = uc.customers.GetByID(ctx, *sale.CustomerID)
		if err != nil {
			return nil, "", fmt.Errorf("recibo: obtener cliente: %w", err)
		}
	}

	pdf, err := uc.generator.GenerateReceiptPDF(ctx, sale, customer)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generar PDF: %w", err)
	}
	return pdf, receiptFilename(sale.SaleNumber, sale.ID), nil
}

func receiptFilename(saleNumber string, id int64) string {
	if saleNumber != "" {
		return "recibo-" + saleNumber + ".pdf"
	}
	return "recibo-" + strconv.FormatInt(id, 10) + ".pdf"
}
