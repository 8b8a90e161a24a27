package receipt_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/brico-pos/internal/application/receipt"
	"github.com/tu-usuario/brico-pos/internal/domain"
	"github.com/tu-usuario/brico-pos/internal/domain/entity"
	"github.com/tu-usuario/brico-pos/internal/domain/repository"
)

// Stubs: se embebe la interfaz y se sobreescribe solo GetByID; los demás
// métodos no se tocan en estos casos.

type saleRepoStub struct {
	repository.SaleRepository
	sale *entity.Sale
}

func (s *saleRepoStub) GetByID(_ context.Context, _ int64) (*entity.Sale, error) {
	return s.sale, nil
}

type customerRepoStub struct {
	repository.CustomerRepository
	customer *entity.Customer
	asked    bool
}

func (s *customerRepoStub) GetByID(_ context.Context, _ int64) (*entity.Customer, error) {
	s.asked = true
	return s.customer, nil
}

type generatorStub struct {
	gotSale     *entity.Sale
	gotCustomer *entity.Customer
}

func (g *generatorStub) GenerateReceiptPDF(_ context.Context, sale *entity.Sale, customer *entity.Customer) ([]byte, error) {
	g.gotSale = sale
	g.gotCustomer = customer
	return []byte("%PDF-1.7"), nil
}

// Caso 1: venta inexistente → ErrNotFound sin llegar al generador.
func TestDownload_VentaNoExiste(t *testing.T) {
	gen := &generatorStub{}
	uc := receipt.NewUseCase(&saleRepoStub{}, &customerRepoStub{}, gen)

	_, _, err := uc.Download(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, gen.gotSale)
}

// Caso 2: venta de mostrador sin cliente asociado; el generador recibe
// customer nil y el nombre de archivo usa el número de venta.
func TestDownload_SinCliente(t *testing.T) {
	sale := &entity.Sale{ID: 7, SaleNumber: "S-AB12CD34", ProductName: "Pince multiprise",
		Price: decimal.NewFromInt(18), Quantity: 1, TotalPrice: decimal.NewFromInt(18)}
	customers := &customerRepoStub{}
	gen := &generatorStub{}
	uc := receipt.NewUseCase(&saleRepoStub{sale: sale}, customers, gen)

	pdf, filename, err := uc.Download(context.Background(), 7)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "recibo-S-AB12CD34.pdf", filename)
	assert.Nil(t, gen.gotCustomer)
	assert.False(t, customers.asked, "sin customer_id no se consulta el cliente")
}

// Caso 3: con cliente asociado, el generador lo recibe; sin número de venta
// el archivo cae al ID.
func TestDownload_ConCliente(t *testing.T) {
	cid := int64(3)
	sale := &entity.Sale{ID: 9, CustomerID: &cid, ProductName: "Niveau à bulle",
		Price: decimal.NewFromInt(22), Quantity: 1, TotalPrice: decimal.NewFromInt(22)}
	customer := &entity.Customer{ID: 3, Name: "Dupont BTP"}
	gen := &generatorStub{}
	uc := receipt.NewUseCase(&saleRepoStub{sale: sale}, &customerRepoStub{customer: customer}, gen)

	_, filename, err := uc.Download(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "recibo-9.pdf", filename)
	require.NotNil(t, gen.gotCustomer)
	assert.Equal(t, "Dupont BTP", gen.gotCustomer.Name)
}
