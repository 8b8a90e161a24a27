package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/brico-pos/internal/application/dto"
	"github.com/tu-usuario/brico-pos/internal/application/inventory"
	"github.com/tu-usuario/brico-pos/internal/domain"
	"github.com/tu-usuario/brico-pos/internal/domain/entity"
	"github.com/tu-usuario/brico-pos/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes: TxRunner en memoria con rollback real
//
// El runner copia el estado antes de ejecutar el callback y lo restaura si
// éste falla, de modo que los tests verifican la atomicidad del caso de uso
// (movimiento y stock entran juntos o no entra nada).
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	products  map[int64]entity.Product
	movements []entity.StockMovement
}

type memTxRunner struct {
	state memState
}

func newMemTxRunner(products ...entity.Product) *memTxRunner {
	st := memState{products: map[int64]entity.Product{}}
	for _, p := range products {
		st.products[p.ID] = p
	}
	return &memTxRunner{state: st}
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	movements repository.StockMovementRepository,
	products repository.ProductRepository,
) error) error {
	snapshot := memState{products: map[int64]entity.Product{}}
	for id, p := range r.state.products {
		snapshot.products[id] = p
	}
	snapshot.movements = append([]entity.StockMovement(nil), r.state.movements...)

	err := fn(&memMovementRepo{state: &r.state}, &memProductRepo{state: &r.state})
	if err != nil {
		r.state = snapshot
		return err
	}
	return nil
}

type memMovementRepo struct {
	state *memState
}

func (m *memMovementRepo) Create(_ context.Context, mv *entity.StockMovement) (int64, error) {
	id := int64(len(m.state.movements) + 1)
	cp := *mv
	cp.ID = id
	m.state.movements = append(m.state.movements, cp)
	return id, nil
}

func (m *memMovementRepo) ListByProduct(_ context.Context, productID int64, _ int) ([]entity.StockMovement, error) {
	var out []entity.StockMovement
	for _, mv := range m.state.movements {
		if mv.ProductID == productID {
			out = append(out, mv)
		}
	}
	return out, nil
}

type memProductRepo struct {
	state *memState
}

func (m *memProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := m.state.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memProductRepo) UpdateStock(_ context.Context, id int64, quantity int) error {
	p, ok := m.state.products[id]
	if !ok {
		return errors.New("producto inexistente")
	}
	p.StockQuantity = quantity
	m.state.products[id] = p
	return nil
}

func (m *memProductRepo) List(_ context.Context, _ repository.ProductFilter) ([]entity.Product, error) {
	return nil, nil
}
func (m *memProductRepo) GetBySKU(_ context.Context, _ string) (*entity.Product, error) {
	return nil, nil
}
func (m *memProductRepo) Create(_ context.Context, _ *entity.Product) (int64, error) { return 0, nil }
func (m *memProductRepo) Update(_ context.Context, _ *entity.Product) error          { return nil }
func (m *memProductRepo) SoftDelete(_ context.Context, _ int64) (bool, error)        { return false, nil }
func (m *memProductRepo) Categories(_ context.Context) ([]string, error)             { return nil, nil }
func (m *memProductRepo) LowStock(_ context.Context) ([]entity.Product, error)       { return nil, nil }

func tournevis(stock int) entity.Product {
	return entity.Product{ID: 1, Name: "Tournevis cruciforme", StockQuantity: stock}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: "in" suma al stock y deja rastro de auditoría.
func TestRegister_Entrada(t *testing.T) {
	runner := newMemTxRunner(tournevis(10))
	uc := inventory.NewRegisterMovementUseCase(runner)

	out, err := uc.Register(context.Background(), dto.RegisterMovementRequest{
		ProductID: 1, MovementType: entity.MovementIn, Quantity: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, 15, runner.state.products[1].StockQuantity)
	assert.Len(t, runner.state.movements, 1)
}

// Caso 2: "out" resta; si la cantidad excede el stock, nada se persiste.
func TestRegister_SalidaInsuficiente(t *testing.T) {
	runner := newMemTxRunner(tournevis(3))
	uc := inventory.NewRegisterMovementUseCase(runner)

	_, err := uc.Register(context.Background(), dto.RegisterMovementRequest{
		ProductID: 1, MovementType: entity.MovementOut, Quantity: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 3, runner.state.products[1].StockQuantity, "el stock no cambia")
	assert.Empty(t, runner.state.movements, "el movimiento no se registra")
}

// Caso 3: "adjustment" fija la cantidad absoluta, incluso a cero.
func TestRegister_Ajuste(t *testing.T) {
	runner := newMemTxRunner(tournevis(42))
	uc := inventory.NewRegisterMovementUseCase(runner)

	_, err := uc.Register(context.Background(), dto.RegisterMovementRequest{
		ProductID: 1, MovementType: entity.MovementAdjustment, Quantity: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, runner.state.products[1].StockQuantity)
}

// Caso 4: producto inexistente → ErrNotFound y rollback.
func TestRegister_ProductoNoExiste(t *testing.T) {
	runner := newMemTxRunner()
	uc := inventory.NewRegisterMovementUseCase(runner)

	_, err := uc.Register(context.Background(), dto.RegisterMovementRequest{
		ProductID: 9, MovementType: entity.MovementIn, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, runner.state.movements)
}

// Caso 5: payload inválido → error de validación que nombra el campo, sin
// tocar la transacción.
func TestRegister_Validacion(t *testing.T) {
	cases := []struct {
		name  string
		in    dto.RegisterMovementRequest
		field string
	}{
		{"sin producto", dto.RegisterMovementRequest{MovementType: entity.MovementIn, Quantity: 1}, "product_id"},
		{"tipo desconocido", dto.RegisterMovementRequest{ProductID: 1, MovementType: "transfer", Quantity: 1}, "movement_type"},
		{"entrada sin cantidad", dto.RegisterMovementRequest{ProductID: 1, MovementType: entity.MovementIn}, "quantity"},
		{"ajuste negativo", dto.RegisterMovementRequest{ProductID: 1, MovementType: entity.MovementAdjustment, Quantity: -1}, "quantity"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runner := newMemTxRunner(tournevis(10))
			uc := inventory.NewRegisterMovementUseCase(runner)

			_, err := uc.Register(context.Background(), tc.in)
			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.field, ve.Field)
			assert.Empty(t, runner.state.movements)
		})
	}
}
