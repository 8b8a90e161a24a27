package usecase

import (
	"context"
	"strings"

	"github.com/tu-usuario/brico-pos/internal/application/dto"
	"github.com/tu-usuario/brico-pos/internal/domain"
	"github.com/tu-usuario/brico-pos/internal/domain/entity"
	"github.com/tu-usuario/brico-pos/internal/domain/repository"
)

// SupplierUseCase casos de uso de proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// List lista proveedores activos en orden alfabético por nombre.
func (uc *SupplierUseCase) List(ctx context.Context, f repository.SupplierFilter) ([]dto.SupplierResponse, error) {
	suppliers, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		out = append(out, toSupplierResponse(&suppliers[i]))
	}
	return out, nil
}

// GetByID devuelve el proveedor o domain.ErrNotFound.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id int64) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSupplierResponse(s)
	return &resp, nil
}

// Create valida y persiste un proveedor. payment_terms por defecto "Net 30".
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "")
	}
	terms := strings.TrimSpace(in.PaymentTerms)
	if terms == "" {
		terms = "Net 30"
	}
	supplier := &entity.Supplier{
		Name:          in.Name,
		ContactPerson: strings.TrimSpace(in.ContactPerson),
		Email:         strings.TrimSpace(in.Email),
		Phone:         strings.TrimSpace(in.Phone),
		Address:       strings.TrimSpace(in.Address),
		City:          strings.TrimSpace(in.City),
		PostalCode:    strings.TrimSpace(in.PostalCode),
		PaymentTerms:  terms,
		Notes:         strings.TrimSpace(in.Notes),
		IsActive:      true,
	}
	id, err := uc.repo.Create(ctx, supplier)
	if err != nil {
		return nil, err
	}
	supplier.ID = id
	resp := toSupplierResponse(supplier)
	return &resp, nil
}

// Update reemplaza los campos del proveedor; is_active omitido se conserva.
func (uc *SupplierUseCase) Update(ctx context.Context, id int64, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "")
	}
	terms := strings.TrimSpace(in.PaymentTerms)
	if terms == "" {
		terms = existing.PaymentTerms
	}
	isActive := existing.IsActive
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	supplier := &entity.Supplier{
		ID:            id,
		Name:          in.Name,
		ContactPerson: strings.TrimSpace(in.ContactPerson),
		Email:         strings.TrimSpace(in.Email),
		Phone:         strings.TrimSpace(in.Phone),
		Address:       strings.TrimSpace(in.Address),
		City:          strings.TrimSpace(in.City),
		PostalCode:    strings.TrimSpace(in.PostalCode),
		PaymentTerms:  terms,
		Notes:         strings.TrimSpace(in.Notes),
		IsActive:      isActive,
	}
	if err := uc.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	resp := toSupplierResponse(supplier)
	return &resp, nil
}

// Delete marca el proveedor como inactivo (borrado lógico).
func (uc *SupplierUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toSupplierResponse(s *entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		City:          s.City,
		PostalCode:    s.PostalCode,
		PaymentTerms:  s.PaymentTerms,
		Notes:         s.Notes,
		IsActive:      s.IsActive,
		CreatedAt:     fmtTime(s.CreatedAt),
		UpdatedAt:     fmtTime(s.UpdatedAt),
	}
}
