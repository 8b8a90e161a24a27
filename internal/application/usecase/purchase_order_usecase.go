package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/brico-pos/internal/application/dto"
	"github.com/tu-usuario/brico-pos/internal/domain"
	"github.com/tu-usuario/brico-pos/internal/domain/entity"
	"github.com/tu-usuario/brico-pos/internal/domain/repository"
)

// PurchaseOrderUseCase casos de uso de órdenes de compra. El estado lo fija
// el caller directamente: no hay máquina de transiciones.
type PurchaseOrderUseCase struct {
	repo repository.PurchaseOrderRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(repo repository.PurchaseOrderRepository) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{repo: repo}
}

// List lista órdenes con los filtros presentes, fecha de orden descendente.
func (uc *PurchaseOrderUseCase) List(ctx context.Context, f repository.PurchaseOrderFilter) ([]dto.PurchaseOrderResponse, error) {
	orders, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toPurchaseOrderResponse(&orders[i], false))
	}
	return out, nil
}

// GetByID devuelve la orden con sus ítems, o domain.ErrNotFound.
func (uc *PurchaseOrderUseCase) GetByID(ctx context.Context, id int64) (*dto.PurchaseOrderResponse, error) {
	po, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.ErrNotFound
	}
	resp := toPurchaseOrderResponse(po, true)
	return &resp, nil
}

// Create valida cabecera e ítems y persiste la orden completa. El total se
// calcula de las líneas; po_number se genera si viene vacío.
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if in.SupplierID <= 0 {
		return nil, domain.NewValidationError("supplier_id", "")
	}
	in.OrderDate = strings.TrimSpace(in.OrderDate)
	if in.OrderDate == "" {
		return nil, domain.NewValidationError("order_date", "")
	}
	if len(in.Items) == 0 {
		return nil, domain.NewValidationError("items", "la orden necesita al menos una línea")
	}

	total := decimal.Zero
	items := make([]entity.PurchaseOrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		switch {
		case it.ProductID <= 0:
			return nil, domain.NewValidationError("items.product_id", "")
		case it.Quantity <= 0:
			return nil, domain.NewValidationError("items.quantity", "debe ser mayor que 0")
		case it.UnitCost < 0:
			return nil, domain.NewValidationError("items.unit_cost", "no puede ser negativo")
		}
		unitCost := decimal.NewFromFloat(it.UnitCost)
		lineTotal := unitCost.Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(lineTotal)
		items = append(items, entity.PurchaseOrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitCost:  unitCost,
			TotalCost: lineTotal,
		})
	}

	poNumber := strings.TrimSpace(in.PONumber)
	if poNumber == "" {
		poNumber = "PO-" + strings.ToUpper(uuid.New().String()[:8])
	}

	po := &entity.PurchaseOrder{
		PONumber:     poNumber,
		SupplierID:   in.SupplierID,
		OrderDate:    in.OrderDate,
		ExpectedDate: strings.TrimSpace(in.ExpectedDate),
		Status:       entity.POStatusPending,
		TotalAmount:  total,
		Notes:        strings.TrimSpace(in.Notes),
		Items:        items,
	}
	id, err := uc.repo.Create(ctx, po)
	if err != nil {
		return nil, err
	}
	po.ID = id
	resp := toPurchaseOrderResponse(po, true)
	return &resp, nil
}

// Update reemplaza los campos editables de la cabecera.
func (uc *PurchaseOrderUseCase) Update(ctx context.Context, id int64, in dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if d := strings.TrimSpace(in.OrderDate); d != "" {
		existing.OrderDate = d
	}
	if d := strings.TrimSpace(in.ExpectedDate); d != "" {
		existing.ExpectedDate = d
	}
	if n := strings.TrimSpace(in.Notes); n != "" {
		existing.Notes = n
	}
	if err := uc.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	resp := toPurchaseOrderResponse(existing, true)
	return &resp, nil
}

// UpdateStatus fija el estado indicado por el caller. Valida solo que el
// valor pertenezca al enum; las transiciones no se controlan.
func (uc *PurchaseOrderUseCase) UpdateStatus(ctx context.Context, id int64, status string) error {
	switch status {
	case entity.POStatusPending, entity.POStatusOrdered, entity.POStatusPartial,
		entity.POStatusReceived, entity.POStatusCancelled:
	default:
		return domain.NewValidationError("status", "estado desconocido")
	}
	updated, err := uc.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !updated {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la orden y sus ítems.
func (uc *PurchaseOrderUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toPurchaseOrderResponse(po *entity.PurchaseOrder, withItems bool) dto.PurchaseOrderResponse {
	resp := dto.PurchaseOrderResponse{
		ID:           po.ID,
		PONumber:     po.PONumber,
		SupplierID:   po.SupplierID,
		OrderDate:    po.OrderDate,
		ExpectedDate: po.ExpectedDate,
		ReceivedDate: po.ReceivedDate,
		Status:       po.Status,
		TotalAmount:  po.TotalAmount.InexactFloat64(),
		Notes:        po.Notes,
		CreatedAt:    fmtTime(po.CreatedAt),
		UpdatedAt:    fmtTime(po.UpdatedAt),
	}
	if withItems {
		resp.Items = make([]dto.PurchaseOrderItemResponse, 0, len(po.Items))
		for _, it := range po.Items {
			resp.Items = append(resp.Items, dto.PurchaseOrderItemResponse{
				ID:               it.ID,
				ProductID:        it.ProductID,
				Quantity:         it.Quantity,
				UnitCost:         it.UnitCost.InexactFloat64(),
				TotalCost:        it.TotalCost.InexactFloat64(),
				ReceivedQuantity: it.ReceivedQuantity,
			})
		}
	}
	return resp
}
