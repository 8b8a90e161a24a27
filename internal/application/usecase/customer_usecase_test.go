package usecase_test

import (
	"context"
	"errors"
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
// Fake en memoria del puerto CustomerRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	customers   map[int64]entity.Customer
	nextID      int64
	searchLimit int // último limit recibido por Search
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[int64]entity.Customer{}}
}

func (f *fakeCustomerRepo) List(_ context.Context, _ repository.CustomerFilter) ([]entity.Customer, error) {
	out := make([]entity.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCustomerRepo) GetByEmail(_ context.Context, email string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.Email == email {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) (int64, error) {
	f.nextID++
	cp := *c
	cp.ID = f.nextID
	f.customers[f.nextID] = cp
	return f.nextID, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	f.customers[c.ID] = *c
	return nil
}

func (f *fakeCustomerRepo) SoftDelete(_ context.Context, id int64) (bool, error) {
	c, ok := f.customers[id]
	if !ok || !c.IsActive {
		return false, nil
	}
	c.IsActive = false
	f.customers[id] = c
	return true, nil
}

func (f *fakeCustomerRepo) Search(_ context.Context, _ string, limit int) ([]entity.Customer, error) {
	f.searchLimit = limit
	return nil, nil
}

func (f *fakeCustomerRepo) Types(_ context.Context) ([]repository.CustomerTypeCount, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) Top(_ context.Context, _ int) ([]repository.TopCustomer, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) Inactive(_ context.Context, _ int) ([]repository.InactiveCustomer, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) Stats(_ context.Context, _ int64) (*repository.CustomerStats, error) {
	return &repository.CustomerStats{}, nil
}

func (f *fakeCustomerRepo) PurchaseHistory(_ context.Context, _ int64, _ int) ([]repository.PurchaseHistoryEntry, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: solo name es obligatorio; el tipo por defecto es retail y el
// cliente nace activo.
func TestCustomerCreate_Defaults(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo())

	out, err := uc.Create(context.Background(), dto.CreateCustomerRequest{Name: "  Dupont SARL  "})
	require.NoError(t, err)

	assert.Equal(t, "Dupont SARL", out.Name, "el nombre se normaliza sin espacios")
	assert.Equal(t, entity.CustomerTypeRetail, out.CustomerType)
	assert.True(t, out.IsActive)
}

// Caso 2: sin nombre → error de validación que nombra el campo.
func TestCustomerCreate_SinNombre(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo())

	_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{Email: "x@y.fr"})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "name", ve.Field)
}

// Caso 3: un email ya registrado se rechaza como duplicado (los handlers lo
// traducen a 400, no a 409).
func TestCustomerCreate_EmailDuplicado(t *testing.T) {
	repo := newFakeCustomerRepo()
	uc := usecase.NewCustomerUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{Name: "Uno", Email: "a@b.fr"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateCustomerRequest{Name: "Dos", Email: "a@b.fr"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update
// ──────────────────────────────────────────────────────────────────────────────

// Caso 4: CreditLimit e IsActive omitidos conservan el valor almacenado;
// enviados en cero/false lo sobreescriben.
func TestCustomerUpdate_MergeCamposOmitidos(t *testing.T) {
	repo := newFakeCustomerRepo()
	repo.nextID = 1
	repo.customers[1] = entity.Customer{
		ID:           1,
		Name:         "Atelier Brun",
		CustomerType: entity.CustomerTypeCommercial,
		CreditLimit:  decimal.NewFromInt(500),
		IsActive:     true,
	}
	uc := usecase.NewCustomerUseCase(repo)

	// Omitidos: se conservan
	out, err := uc.Update(context.Background(), 1, dto.UpdateCustomerRequest{
		Name:         "Atelier Brun",
		CustomerType: entity.CustomerTypeCommercial,
	})
	require.NoError(t, err)
	assert.Equal(t, 500.0, out.CreditLimit, "credit_limit omitido conserva el valor almacenado")
	assert.True(t, out.IsActive, "is_active omitido conserva el valor almacenado")

	// Enviados en cero/false: se sobreescriben
	zero := 0.0
	inactive := false
	out, err = uc.Update(context.Background(), 1, dto.UpdateCustomerRequest{
		Name:        "Atelier Brun",
		CreditLimit: &zero,
		IsActive:    &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, out.CreditLimit)
	assert.False(t, out.IsActive)
}

// Caso 5: actualizar un id inexistente devuelve ErrNotFound antes de validar.
func TestCustomerUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo())

	_, err := uc.Update(context.Background(), 42, dto.UpdateCustomerRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Delete / Search
// ──────────────────────────────────────────────────────────────────────────────

// Caso 6: el borrado es lógico: la fila se conserva y sigue accesible por id;
// un segundo borrado ya no afecta filas y devuelve ErrNotFound.
func TestCustomerDelete_Logico(t *testing.T) {
	repo := newFakeCustomerRepo()
	uc := usecase.NewCustomerUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateCustomerRequest{Name: "Martin"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))

	got, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err, "el cliente desactivado sigue accesible por id")
	assert.False(t, got.IsActive)

	assert.ErrorIs(t, uc.Delete(context.Background(), created.ID), domain.ErrNotFound,
		"el segundo borrado no afecta filas")
}

// Caso 7: la búsqueda siempre acota a 20 filas.
func TestCustomerSearch_Tope(t *testing.T) {
	repo := newFakeCustomerRepo()
	uc := usecase.NewCustomerUseCase(repo)

	_, err := uc.Search(context.Background(), "dup")
	require.NoError(t, err)
	assert.Equal(t, 20, repo.searchLimit)
}

// Caso 8: un término de menos de 2 caracteres se rechaza antes de tocar el
// repositorio.
func TestCustomerSearch_TerminoCorto(t *testing.T) {
	repo := newFakeCustomerRepo()
	uc := usecase.NewCustomerUseCase(repo)

	_, err := uc.Search(context.Background(), " d ")
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "q", ve.Field)
	assert.Zero(t, repo.searchLimit, "no debe llegar al repositorio")
}
