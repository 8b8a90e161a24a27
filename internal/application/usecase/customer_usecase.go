package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/brico-pos/internal/application/dto"
	"github.com/tu-usuario/brico-pos/internal/domain"
	"github.com/tu-usuario/brico-pos/internal/domain/entity"
	"github.com/tu-usuario/brico-pos/internal/domain/repository"
)

// CustomerUseCase casos de uso de clientes: CRUD con borrado lógico,
// búsqueda y reportes (top, inactivos, historial).
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List lista clientes activos en orden alfabético por nombre.
func (uc *CustomerUseCase) List(ctx context.Context, f repository.CustomerFilter) ([]dto.CustomerResponse, error) {
	customers, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, toCustomerResponse(&customers[i]))
	}
	return out, nil
}

// GetByID devuelve el cliente aunque esté inactivo (el filtro implícito de
// is_active solo aplica a los listados). ErrNotFound si el id no existe.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := toCustomerResponse(c)
	return &resp, nil
}

// Create valida y persiste un cliente nuevo. El email, si viene, se verifica
// contra duplicados antes de insertar; la constraint UNIQUE del almacenamiento
// cierra la ventana de carrera entre verificación e inserción.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "")
	}
	if in.CreditLimit < 0 {
		return nil, domain.NewValidationError("credit_limit", "no puede ser negativo")
	}
	ctype := in.CustomerType
	if ctype == "" {
		ctype = entity.CustomerTypeRetail
	}
	switch ctype {
	case entity.CustomerTypeRetail, entity.CustomerTypeWholesale, entity.CustomerTypeCommercial:
	default:
		return nil, domain.NewValidationError("customer_type", "tipo de cliente desconocido")
	}

	email := strings.TrimSpace(in.Email)
	if email != "" {
		existing, err := uc.repo.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}

	customer := &entity.Customer{
		Name:         in.Name,
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		City:         strings.TrimSpace(in.City),
		PostalCode:   strings.TrimSpace(in.PostalCode),
		CustomerType: ctype,
		CreditLimit:  decimal.NewFromFloat(in.CreditLimit),
		Notes:        strings.TrimSpace(in.Notes),
		IsActive:     true,
	}
	id, err := uc.repo.Create(ctx, customer)
	if err != nil {
		return nil, err
	}
	customer.ID = id
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// Update reemplaza los campos del cliente. CreditLimit e IsActive omitidos
// conservan el valor almacenado (el merge ocurre aquí, no en el repo).
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
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
	ctype := in.CustomerType
	if ctype == "" {
		ctype = entity.CustomerTypeRetail
	}
	switch ctype {
	case entity.CustomerTypeRetail, entity.CustomerTypeWholesale, entity.CustomerTypeCommercial:
	default:
		return nil, domain.NewValidationError("customer_type", "tipo de cliente desconocido")
	}

	email := strings.TrimSpace(in.Email)
	if email != "" && email != existing.Email {
		dup, err := uc.repo.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, domain.ErrDuplicate
		}
	}

	creditLimit := existing.CreditLimit
	if in.CreditLimit != nil {
		if *in.CreditLimit < 0 {
			return nil, domain.NewValidationError("credit_limit", "no puede ser negativo")
		}
		creditLimit = decimal.NewFromFloat(*in.CreditLimit)
	}
	isActive := existing.IsActive
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	customer := &entity.Customer{
		ID:           id,
		Name:         in.Name,
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		City:         strings.TrimSpace(in.City),
		PostalCode:   strings.TrimSpace(in.PostalCode),
		CustomerType: ctype,
		CreditLimit:  creditLimit,
		Notes:        strings.TrimSpace(in.Notes),
		IsActive:     isActive,
	}
	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// Delete marca el cliente como inactivo (borrado lógico). La fila se conserva
// y sigue siendo accesible por id. ErrNotFound si no afectó ninguna fila.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// Search busca clientes activos por nombre, email o teléfono (tope 20 filas).
func (uc *CustomerUseCase) Search(ctx context.Context, term string) ([]dto.CustomerResponse, error) {
	term = strings.TrimSpace(term)
	if len([]rune(term)) < 2 {
		return nil, domain.NewValidationError("q", "mínimo 2 caracteres")
	}
	customers, err := uc.repo.Search(ctx, term, 20)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, toCustomerResponse(&customers[i]))
	}
	return out, nil
}

// Types conteo de clientes activos por tipo.
func (uc *CustomerUseCase) Types(ctx context.Context) ([]dto.CustomerTypeCountResponse, error) {
	counts, err := uc.repo.Types(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerTypeCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.CustomerTypeCountResponse{CustomerType: c.CustomerType, Count: c.Count})
	}
	return out, nil
}

// Top clientes con mayores ingresos (solo con ingresos > 0).
func (uc *CustomerUseCase) Top(ctx context.Context, limit int) ([]dto.TopCustomerResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := uc.repo.Top(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopCustomerResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.TopCustomerResponse{
			CustomerResponse: toCustomerResponse(&rows[i].Customer),
			TotalOrders:      rows[i].TotalOrders,
			TotalRevenue:     rows[i].TotalRevenue.InexactFloat64(),
			AvgOrderValue:    rows[i].AvgOrderValue.InexactFloat64(),
			LastOrderDate:    rows[i].LastOrderDate,
		})
	}
	return out, nil
}

// Inactive clientes activos sin compras en los últimos 'days' días
// (o que nunca compraron).
func (uc *CustomerUseCase) Inactive(ctx context.Context, days int) ([]dto.InactiveCustomerResponse, error) {
	if days <= 0 {
		days = 90
	}
	rows, err := uc.repo.Inactive(ctx, days)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InactiveCustomerResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.InactiveCustomerResponse{
			CustomerResponse: toCustomerResponse(&rows[i].Customer),
			LastPurchaseDate: rows[i].LastPurchaseDate,
		})
	}
	return out, nil
}

// Stats resumen de compras del cliente. Los importes son cero cuando no hay
// ventas, nunca null.
func (uc *CustomerUseCase) Stats(ctx context.Context, id int64) (*dto.CustomerStatsResponse, error) {
	stats, err := uc.repo.Stats(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.CustomerStatsResponse{
		TotalSales:     stats.TotalSales,
		TotalRevenue:   stats.TotalRevenue.InexactFloat64(),
		AverageSale:    stats.AverageSale.InexactFloat64(),
		LastSaleDate:   stats.LastSaleDate,
		LastSaleAmount: stats.LastSaleAmount.InexactFloat64(),
	}, nil
}

// PurchaseHistory últimas ventas del cliente con el nombre actual de catálogo.
func (uc *CustomerUseCase) PurchaseHistory(ctx context.Context, id int64, limit int) ([]dto.PurchaseHistoryResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := uc.repo.PurchaseHistory(ctx, id, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseHistoryResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.PurchaseHistoryResponse{
			SaleResponse:       toSaleResponse(&rows[i].Sale),
			CatalogProductName: rows[i].ProductName,
		})
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      c.Address,
		City:         c.City,
		PostalCode:   c.PostalCode,
		CustomerType: c.CustomerType,
		CreditLimit:  c.CreditLimit.InexactFloat64(),
		Notes:        c.Notes,
		IsActive:     c.IsActive,
		CreatedAt:    fmtTime(c.CreatedAt),
		UpdatedAt:    fmtTime(c.UpdatedAt),
	}
}
