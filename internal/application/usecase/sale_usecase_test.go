package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/brico-pos/internal/application/dto"
	"github.com/tu-usuario/brico-pos/internal/application/usecase"
	"github.com/tu-usuario/brico-pos/internal/domain"
	"github.com/tu-usuario/brico-pos/internal/domain/entity"
	"github.com/tu-usuario/brico-pos/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del puerto SaleRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeSaleRepo struct {
	sales  map[int64]entity.Sale
	nextID int64
	stats  repository.SaleStats
	top    []repository.CategorySummary
	recent []repository.RecentSale
	daily  []repository.DailyRevenue
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: map[int64]entity.Sale{}}
}

func (f *fakeSaleRepo) List(_ context.Context, _ repository.SaleFilter) ([]entity.Sale, error) {
	out := make([]entity.Sale, 0, len(f.sales))
	for _, s := range f.sales {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSaleRepo) GetByID(_ context.Context, id int64) (*entity.Sale, error) {
	s, ok := f.sales[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeSaleRepo) Create(_ context.Context, s *entity.Sale) (int64, error) {
	f.nextID++
	cp := *s
	cp.ID = f.nextID
	f.sales[f.nextID] = cp
	return f.nextID, nil
}

func (f *fakeSaleRepo) Update(_ context.Context, s *entity.Sale) error {
	f.sales[s.ID] = *s
	return nil
}

func (f *fakeSaleRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.sales[id]; !ok {
		return false, nil
	}
	delete(f.sales, id)
	return true, nil
}

func (f *fakeSaleRepo) Stats(_ context.Context) (*repository.SaleStats, error) {
	st := f.stats
	return &st, nil
}

func (f *fakeSaleRepo) TopCategories(_ context.Context, _ int) ([]repository.CategorySummary, error) {
	return f.top, nil
}

func (f *fakeSaleRepo) RecentSales(_ context.Context, _ int) ([]repository.RecentSale, error) {
	return f.recent, nil
}

func (f *fakeSaleRepo) DailyRevenue(_ context.Context, _ int) ([]repository.DailyRevenue, error) {
	return f.daily, nil
}

func (f *fakeSaleRepo) Categories(_ context.Context) ([]string, error) {
	return []string{"outillage", "peinture"}, nil
}

func validSaleRequest() dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		Date:        "2026-08-30",
		ProductName: "Marteau arrache-clous",
		Category:    "outillage",
		Price:       12.5,
		Quantity:    4,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el total siempre se calcula en el servidor como price × quantity.
func TestSaleCreate_CalculaTotal(t *testing.T) {
	repo := newFakeSaleRepo()
	uc := usecase.NewSaleUseCase(repo)

	out, err := uc.Create(context.Background(), validSaleRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.ID, "el id debe ser el asignado por el repo")
	assert.Equal(t, 50.0, out.TotalPrice, "totalPrice debe ser price × quantity")
	assert.Equal(t, entity.PaymentCash, out.PaymentMethod, "el método de pago por defecto es cash")
	assert.True(t, strings.HasPrefix(out.SaleNumber, "S-"), "el número de venta lleva prefijo S-")
}

// Caso 2: cada campo requerido ausente produce un 400 que nombra el campo.
func TestSaleCreate_ValidaCampos(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CreateSaleRequest)
		field  string
	}{
		{"sin fecha", func(r *dto.CreateSaleRequest) { r.Date = "" }, "date"},
		{"sin producto", func(r *dto.CreateSaleRequest) { r.ProductName = "  " }, "productName"},
		{"sin categoría", func(r *dto.CreateSaleRequest) { r.Category = "" }, "category"},
		{"precio cero", func(r *dto.CreateSaleRequest) { r.Price = 0 }, "price"},
		{"precio negativo", func(r *dto.CreateSaleRequest) { r.Price = -3 }, "price"},
		{"cantidad cero", func(r *dto.CreateSaleRequest) { r.Quantity = 0 }, "quantity"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeSaleRepo()
			uc := usecase.NewSaleUseCase(repo)

			in := validSaleRequest()
			tc.mutate(&in)

			_, err := uc.Create(context.Background(), in)
			require.Error(t, err)

			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve), "debe ser un error de validación")
			assert.Equal(t, tc.field, ve.Field, "el error debe nombrar el campo inválido")
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			assert.Empty(t, repo.sales, "nada debe persistirse ante un payload inválido")
		})
	}
}

// Caso 3: un método de pago fuera del enum se rechaza.
func TestSaleCreate_MetodoPagoDesconocido(t *testing.T) {
	uc := usecase.NewSaleUseCase(newFakeSaleRepo())

	in := validSaleRequest()
	in.PaymentMethod = "trueque"

	_, err := uc.Create(context.Background(), in)
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "payment_method", ve.Field)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

// Caso 4: actualizar un id inexistente devuelve ErrNotFound, nunca un upsert.
func TestSaleUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewSaleUseCase(newFakeSaleRepo())

	_, err := uc.Update(context.Background(), 99, validSaleRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 5: el update recalcula el total y conserva el número de venta original.
func TestSaleUpdate_RecalculaTotalYConservaNumero(t *testing.T) {
	repo := newFakeSaleRepo()
	uc := usecase.NewSaleUseCase(repo)

	created, err := uc.Create(context.Background(), validSaleRequest())
	require.NoError(t, err)

	in := validSaleRequest()
	in.Price = 9.99
	in.Quantity = 3

	out, err := uc.Update(context.Background(), created.ID, in)
	require.NoError(t, err)

	expected := decimal.NewFromFloat(9.99).Mul(decimal.NewFromInt(3)).InexactFloat64()
	assert.Equal(t, expected, out.TotalPrice, "el total se recalcula con los valores nuevos")
	assert.Equal(t, created.SaleNumber, out.SaleNumber, "el número de venta no cambia en updates")
}

// Caso 6: borrar un id inexistente devuelve ErrNotFound; borrar uno existente
// elimina la fila (borrado físico).
func TestSaleDelete(t *testing.T) {
	repo := newFakeSaleRepo()
	uc := usecase.NewSaleUseCase(repo)

	created, err := uc.Create(context.Background(), validSaleRequest())
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(context.Background(), 99), domain.ErrNotFound)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.sales, "el borrado de ventas es físico")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Stats
// ──────────────────────────────────────────────────────────────────────────────

// Caso 7: la respuesta del dashboard combina agregados, top categorías,
// ventas recientes e ingresos diarios; las colecciones nunca son null.
func TestSaleStats_Combina(t *testing.T) {
	repo := newFakeSaleRepo()
	repo.stats = repository.SaleStats{
		TotalSales:   3,
		TotalRevenue: decimal.NewFromInt(150),
		TotalUnits:   12,
		AverageSale:  decimal.NewFromInt(50),
	}
	repo.top = []repository.CategorySummary{
		{Name: "outillage", Sales: 2, Revenue: decimal.NewFromInt(100)},
	}
	uc := usecase.NewSaleUseCase(repo)

	out, err := uc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, out.TotalSales)
	assert.Equal(t, 150.0, out.TotalRevenue)
	assert.Equal(t, 12, out.TotalProducts)
	assert.Equal(t, 50.0, out.AverageSale)
	require.Len(t, out.TopCategories, 1)
	assert.Equal(t, "outillage", out.TopCategories[0].Name)
	assert.NotNil(t, out.RecentSales, "colección vacía, nunca null")
	assert.NotNil(t, out.DailyRevenue, "colección vacía, nunca null")
}
