package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/brico-pos/internal/application/dto"
	"github.com/tu-usuario/brico-pos/internal/application/usecase"
	"github.com/tu-usuario/brico-pos/internal/domain/entity"
	"github.com/tu-usuario/brico-pos/internal/domain/repository"
	apihttp "github.com/tu-usuario/brico-pos/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de ventas. Con fail=true todas las lecturas fallan,
// para ejercitar la degradación de los listados.
// ──────────────────────────────────────────────────────────────────────────────

type stubSaleRepo struct {
	sales  map[int64]entity.Sale
	nextID int64
	fail   bool
}

var errStorage = errors.New("conexión rechazada")

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{sales: map[int64]entity.Sale{}}
}

func (s *stubSaleRepo) List(_ context.Context, _ repository.SaleFilter) ([]entity.Sale, error) {
	if s.fail {
		return nil, errStorage
	}
	out := make([]entity.Sale, 0, len(s.sales))
	for _, v := range s.sales {
		out = append(out, v)
	}
	return out, nil
}

func (s *stubSaleRepo) GetByID(_ context.Context, id int64) (*entity.Sale, error) {
	if s.fail {
		return nil, errStorage
	}
	v, ok := s.sales[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (s *stubSaleRepo) Create(_ context.Context, v *entity.Sale) (int64, error) {
	s.nextID++
	cp := *v
	cp.ID = s.nextID
	s.sales[s.nextID] = cp
	return s.nextID, nil
}

func (s *stubSaleRepo) Update(_ context.Context, v *entity.Sale) error {
	s.sales[v.ID] = *v
	return nil
}

func (s *stubSaleRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := s.sales[id]; !ok {
		return false, nil
	}
	delete(s.sales, id)
	return true, nil
}

func (s *stubSaleRepo) Stats(_ context.Context) (*repository.SaleStats, error) {
	if s.fail {
		return nil, errStorage
	}
	return &repository.SaleStats{}, nil
}

func (s *stubSaleRepo) TopCategories(_ context.Context, _ int) ([]repository.CategorySummary, error) {
	if s.fail {
		return nil, errStorage
	}
	return nil, nil
}

func (s *stubSaleRepo) RecentSales(_ context.Context, _ int) ([]repository.RecentSale, error) {
	if s.fail {
		return nil, errStorage
	}
	return nil, nil
}

func (s *stubSaleRepo) DailyRevenue(_ context.Context, _ int) ([]repository.DailyRevenue, error) {
	if s.fail {
		return nil, errStorage
	}
	return nil, nil
}

func (s *stubSaleRepo) Categories(_ context.Context) ([]string, error) {
	if s.fail {
		return nil, errStorage
	}
	return []string{"outillage"}, nil
}

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

// newSaleApp monta las rutas de ventas sobre una app limpia, igual que hace
// el router pero sin el resto de módulos.
func newSaleApp(repo *stubSaleRepo) *fiber.App {
	h := apihttp.NewSaleHandler(usecase.NewSaleUseCase(repo), nil, zerolog.Nop())
	app := fiber.New()
	g := app.Group("/api/sales")
	g.Get("/stats", h.Stats)
	g.Get("/categories", h.Categories)
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*nethttp.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: POST /api/sales responde 201 con el total calculado en el servidor,
// aunque el cliente mande otro.
func TestSaleCreate_201ConTotalCalculado(t *testing.T) {
	app := newSaleApp(newStubSaleRepo())

	resp, raw := doJSON(t, app, "POST", "/api/sales/", dto.CreateSaleRequest{
		Date:        "2025-03-10",
		ProductName: "Perceuse sans fil 18V",
		Category:    "outillage électro",
		Price:       89.90,
		Quantity:    2,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out dto.SaleResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.True(t, out.ID > 0)
	want, _ := decimal.NewFromFloat(89.90).Mul(decimal.NewFromInt(2)).Float64()
	assert.Equal(t, want, out.TotalPrice)
}

// Caso 2: body inválido → 400 nombrando el campo que falla.
func TestSaleCreate_400NombraCampo(t *testing.T) {
	app := newSaleApp(newStubSaleRepo())

	resp, raw := doJSON(t, app, "POST", "/api/sales/", dto.CreateSaleRequest{
		Date:        "2025-03-10",
		ProductName: "Perceuse",
		Category:    "outillage",
		Price:       89.90,
		Quantity:    0, // inválido
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Contains(t, out.Message, "quantity")
}

// Caso 3: id inexistente → 404.
func TestSaleGet_404(t *testing.T) {
	app := newSaleApp(newStubSaleRepo())

	resp, _ := doJSON(t, app, "GET", "/api/sales/99", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// Caso 4: id no numérico → 400, nunca llega al repositorio.
func TestSaleGet_IDInvalido(t *testing.T) {
	app := newSaleApp(newStubSaleRepo())

	resp, _ := doJSON(t, app, "GET", "/api/sales/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// Caso 5: si el almacenamiento falla, el listado degrada a [] con 200 en vez
// de propagar un 500; el dashboard no se cae por una consulta.
func TestSaleList_DegradaAVacio(t *testing.T) {
	repo := newStubSaleRepo()
	repo.fail = true
	app := newSaleApp(repo)

	resp, raw := doJSON(t, app, "GET", "/api/sales/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", string(raw))

	resp, raw = doJSON(t, app, "GET", "/api/sales/categories", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", string(raw))
}

// Caso 6: stats degrada a contadores a cero y listas vacías (no null).
func TestSaleStats_DegradaACeros(t *testing.T) {
	repo := newStubSaleRepo()
	repo.fail = true
	app := newSaleApp(repo)

	resp, raw := doJSON(t, app, "GET", "/api/sales/stats", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.SaleStatsResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, 0, out.TotalSales)
	assert.NotNil(t, out.TopCategories)
	assert.NotNil(t, out.RecentSales)
}

// Caso 7: un fallo de almacenamiento en un endpoint de recurso único responde
// 500 con mensaje genérico; el texto del error interno nunca llega al cliente.
func TestSaleGet_500Generico(t *testing.T) {
	repo := newStubSaleRepo()
	repo.fail = true
	app := newSaleApp(repo)

	resp, raw := doJSON(t, app, "GET", "/api/sales/7", nil)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "INTERNAL", out.Code)
	assert.Equal(t, "error interno del servidor", out.Message)
	assert.NotContains(t, string(raw), errStorage.Error())
}

// Caso 8: DELETE físico; el segundo borrado ya responde 404.
func TestSaleDelete_Fisico(t *testing.T) {
	repo := newStubSaleRepo()
	app := newSaleApp(repo)

	resp, _ := doJSON(t, app, "POST", "/api/sales/", dto.CreateSaleRequest{
		Date: "2025-03-10", ProductName: "Scie sauteuse", Category: "outillage", Price: 45, Quantity: 1,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", "/api/sales/1", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", "/api/sales/1", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
