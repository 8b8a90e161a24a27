package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/brico-pos/internal/application/dto"
	"github.com/tu-usuario/brico-pos/internal/domain"
	"github.com/tu-usuario/brico-pos/internal/domain/entity"
	"github.com/tu-usuario/brico-pos/internal/domain/repository"
	"github.com/tu-usuario/brico-pos/pkg/searchtext"
)

// Umbrales de stock por defecto cuando el alta no los especifica.
const (
	defaultMinStock = 5
	defaultMaxStock = 100
)

// ProductUseCase casos de uso del catálogo de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista productos activos en orden alfabético por nombre.
func (uc *ProductUseCase) List(ctx context.Context, f repository.ProductFilter) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out, nil
}

// GetByID devuelve el producto o domain.ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// Create valida y persiste un producto. Si no viene SKU se genera un slug a
// partir del nombre ("Clé à molette" → "CLE-A-MOLETTE"); el SKU se verifica
// contra duplicados antes de insertar y la constraint UNIQUE lo respalda.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	switch {
	case in.Name == "":
		return nil, domain.NewValidationError("name", "")
	case in.Category == "":
		return nil, domain.NewValidationError("category", "")
	case in.Price < 0:
		return nil, domain.NewValidationError("price", "no puede ser negativo")
	case in.Cost < 0:
		return nil, domain.NewValidationError("cost", "no puede ser negativo")
	case in.StockQuantity < 0:
		return nil, domain.NewValidationError("stock_quantity", "no puede ser negativo")
	}

	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		sku = searchtext.Slug(in.Name)
	}
	existing, err := uc.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	minStock := defaultMinStock
	if in.MinStockLevel != nil {
		minStock = *in.MinStockLevel
	}
	maxStock := defaultMaxStock
	if in.MaxStockLevel != nil {
		maxStock = *in.MaxStockLevel
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = "unité"
	}

	product := &entity.Product{
		Name:          in.Name,
		Description:   strings.TrimSpace(in.Description),
		SKU:           sku,
		Barcode:       strings.TrimSpace(in.Barcode),
		Category:      in.Category,
		Price:         decimal.NewFromFloat(in.Price),
		Cost:          decimal.NewFromFloat(in.Cost),
		StockQuantity: in.StockQuantity,
		MinStockLevel: minStock,
		MaxStockLevel: maxStock,
		Unit:          unit,
		SupplierID:    in.SupplierID,
		ImageURL:      strings.TrimSpace(in.ImageURL),
		IsActive:      true,
	}
	id, err := uc.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = id
	resp := toProductResponse(product)
	return &resp, nil
}

// Update reemplaza los campos del producto. El stock no se toca aquí: los
// cambios de inventario pasan por el registro de movimientos. Umbrales e
// is_active omitidos conservan el valor almacenado.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	switch {
	case in.Name == "":
		return nil, domain.NewValidationError("name", "")
	case in.Category == "":
		return nil, domain.NewValidationError("category", "")
	case in.Price < 0:
		return nil, domain.NewValidationError("price", "no puede ser negativo")
	case in.Cost < 0:
		return nil, domain.NewValidationError("cost", "no puede ser negativo")
	}

	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		sku = existing.SKU
	}
	if sku != existing.SKU {
		dup, err := uc.repo.GetBySKU(ctx, sku)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, domain.ErrDuplicate
		}
	}

	minStock := existing.MinStockLevel
	if in.MinStockLevel != nil {
		minStock = *in.MinStockLevel
	}
	maxStock := existing.MaxStockLevel
	if in.MaxStockLevel != nil {
		maxStock = *in.MaxStockLevel
	}
	isActive := existing.IsActive
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = existing.Unit
	}

	product := &entity.Product{
		ID:            id,
		Name:          in.Name,
		Description:   strings.TrimSpace(in.Description),
		SKU:           sku,
		Barcode:       strings.TrimSpace(in.Barcode),
		Category:      in.Category,
		Price:         decimal.NewFromFloat(in.Price),
		Cost:          decimal.NewFromFloat(in.Cost),
		StockQuantity: existing.StockQuantity,
		MinStockLevel: minStock,
		MaxStockLevel: maxStock,
		Unit:          unit,
		SupplierID:    in.SupplierID,
		ImageURL:      strings.TrimSpace(in.ImageURL),
		IsActive:      isActive,
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Delete marca el producto como inactivo (borrado lógico).
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// Categories categorías distintas del catálogo activo.
func (uc *ProductUseCase) Categories(ctx context.Context) ([]string, error) {
	return uc.repo.Categories(ctx)
}

// LowStock productos activos en o bajo su umbral mínimo.
func (uc *ProductUseCase) LowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		SKU:           p.SKU,
		Barcode:       p.Barcode,
		Category:      p.Category,
		Price:         p.Price.InexactFloat64(),
		Cost:          p.Cost.InexactFloat64(),
		StockQuantity: p.StockQuantity,
		MinStockLevel: p.MinStockLevel,
		MaxStockLevel: p.MaxStockLevel,
		Unit:          p.Unit,
		SupplierID:    p.SupplierID,
		ImageURL:      p.ImageURL,
		IsActive:      p.IsActive,
		CreatedAt:     fmtTime(p.CreatedAt),
		UpdatedAt:     fmtTime(p.UpdatedAt),
	}
}
