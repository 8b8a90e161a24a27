package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/brico-pos/internal/application/dto"
	"github.com/tu-usuario/brico-pos/internal/domain"
	"github.com/tu-usuario/brico-pos/internal/domain/entity"
	"github.com/tu-usuario/brico-pos/internal/domain/repository"
)

// SaleUseCase casos de uso de ventas: CRUD, categorías y dashboard.
type SaleUseCase struct {
	repo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo}
}

// List lista ventas aplicando los filtros presentes. Orden estable:
// fecha descendente y, a igual fecha, creación descendente.
func (uc *SaleUseCase) List(ctx context.Context, f repository.SaleFilter) ([]dto.SaleResponse, error) {
	sales, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		out = append(out, toSaleResponse(&sales[i]))
	}
	return out, nil
}

// GetByID devuelve la venta o domain.ErrNotFound.
func (uc *SaleUseCase) GetByID(ctx context.Context, id int64) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSaleResponse(sale)
	return &resp, nil
}

// Create valida y registra una venta. totalPrice se calcula siempre como
// price × quantity; nunca se acepta del cliente. La respuesta es el payload
// de entrada más el id generado, sin relectura de la fila.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := saleFromRequest(in)
	if err != nil {
		return nil, err
	}
	sale.SaleNumber = newSaleNumber()
	id, err := uc.repo.Create(ctx, sale)
	if err != nil {
		return nil, err
	}
	sale.ID = id
	resp := toSaleResponse(sale)
	return &resp, nil
}

// Update reemplaza todos los campos de la venta. ErrNotFound si el id no existe.
func (uc *SaleUseCase) Update(ctx context.Context, id int64, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	sale, err := saleFromRequest(in)
	if err != nil {
		return nil, err
	}
	sale.ID = id
	sale.SaleNumber = existing.SaleNumber
	if err := uc.repo.Update(ctx, sale); err != nil {
		return nil, err
	}
	resp := toSaleResponse(sale)
	return &resp, nil
}

// Delete borra físicamente la venta. ErrNotFound si no afectó ninguna fila.
func (uc *SaleUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// Stats arma la respuesta combinada del dashboard: agregados globales,
// top 5 categorías, 5 ventas recientes e ingresos de los últimos 7 días.
func (uc *SaleUseCase) Stats(ctx context.Context) (*dto.SaleStatsResponse, error) {
	stats, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	top, err := uc.repo.TopCategories(ctx, 5)
	if err != nil {
		return nil, err
	}
	recent, err := uc.repo.RecentSales(ctx, 5)
	if err != nil {
		return nil, err
	}
	daily, err := uc.repo.DailyRevenue(ctx, 7)
	if err != nil {
		return nil, err
	}

	out := &dto.SaleStatsResponse{
		TotalSales:    stats.TotalSales,
		TotalRevenue:  stats.TotalRevenue.InexactFloat64(),
		TotalProducts: stats.TotalUnits,
		AverageSale:   stats.AverageSale.InexactFloat64(),
		TopCategories: make([]dto.CategorySummaryResponse, 0, len(top)),
		RecentSales:   make([]dto.RecentSaleResponse, 0, len(recent)),
		DailyRevenue:  make([]dto.DailyRevenueResponse, 0, len(daily)),
	}
	for _, c := range top {
		out.TopCategories = append(out.TopCategories, dto.CategorySummaryResponse{
			Name: c.Name, Sales: c.Sales, Revenue: c.Revenue.InexactFloat64(),
		})
	}
	for _, r := range recent {
		out.RecentSales = append(out.RecentSales, dto.RecentSaleResponse{
			ID: r.ID, ProductName: r.ProductName, TotalPrice: r.TotalPrice.InexactFloat64(), Date: r.Date,
		})
	}
	for _, d := range daily {
		out.DailyRevenue = append(out.DailyRevenue, dto.DailyRevenueResponse{
			Date: d.Date, Revenue: d.Revenue.InexactFloat64(),
		})
	}
	return out, nil
}

// Categories devuelve las categorías distintas en orden alfabético.
func (uc *SaleUseCase) Categories(ctx context.Context) ([]string, error) {
	return uc.repo.Categories(ctx)
}

// saleFromRequest valida el payload y construye la entidad con el total calculado.
func saleFromRequest(in dto.CreateSaleRequest) (*entity.Sale, error) {
	in.Date = strings.TrimSpace(in.Date)
	in.ProductName = strings.TrimSpace(in.ProductName)
	in.Category = strings.TrimSpace(in.Category)

	switch {
	case in.Date == "":
		return nil, domain.NewValidationError("date", "")
	case in.ProductName == "":
		return nil, domain.NewValidationError("productName", "")
	case in.Category == "":
		return nil, domain.NewValidationError("category", "")
	case in.Price <= 0:
		return nil, domain.NewValidationError("price", "debe ser mayor que 0")
	case in.Quantity <= 0:
		return nil, domain.NewValidationError("quantity", "debe ser mayor que 0")
	}

	payment := in.PaymentMethod
	if payment == "" {
		payment = entity.PaymentCash
	}
	switch payment {
	case entity.PaymentCash, entity.PaymentCredit, entity.PaymentCheck, entity.PaymentBankTransfer:
	default:
		return nil, domain.NewValidationError("payment_method", "método de pago desconocido")
	}

	price := decimal.NewFromFloat(in.Price)
	total := price.Mul(decimal.NewFromInt(int64(in.Quantity)))

	return &entity.Sale{
		Date:          in.Date,
		CustomerID:    in.CustomerID,
		ProductID:     in.ProductID,
		ProductName:   in.ProductName,
		Price:         price,
		Quantity:      in.Quantity,
		Category:      in.Category,
		TotalPrice:    total,
		Discount:      decimal.NewFromFloat(in.Discount),
		TaxAmount:     decimal.NewFromFloat(in.TaxAmount),
		PaymentMethod: payment,
		Notes:         strings.TrimSpace(in.Notes),
	}, nil
}

// newSaleNumber genera un identificador legible y único para la venta.
func newSaleNumber() string {
	return "S-" + strings.ToUpper(uuid.New().String()[:8])
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:            s.ID,
		SaleNumber:    s.SaleNumber,
		Date:          s.Date,
		CustomerID:    s.CustomerID,
		ProductID:     s.ProductID,
		ProductName:   s.ProductName,
		Price:         s.Price.InexactFloat64(),
		Quantity:      s.Quantity,
		Category:      s.Category,
		TotalPrice:    s.TotalPrice.InexactFloat64(),
		Discount:      s.Discount.InexactFloat64(),
		TaxAmount:     s.TaxAmount.InexactFloat64(),
		PaymentMethod: s.PaymentMethod,
		Notes:         s.Notes,
		CreatedAt:     fmtTime(s.CreatedAt),
		UpdatedAt:     fmtTime(s.UpdatedAt),
	}
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
