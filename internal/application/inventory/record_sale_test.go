package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sales-ledger/internal/application/dto"
	"github.com/jhoicas/sales-ledger/internal/application/inventory"
	"github.com/jhoicas/sales-ledger/internal/application/usecase"
	"github.com/jhoicas/sales-ledger/internal/domain"
	"github.com/jhoicas/sales-ledger/internal/infrastructure/sqlite"
	"github.com/jhoicas/sales-ledger/internal/infrastructure/sqlite/sqlitetest"
	"github.com/jhoicas/sales-ledger/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2024, time.March, 15, 18, 30, 0, 0, time.Local)

type fixture struct {
	products *usecase.ProductUseCase
	sales    *inventory.RecordSaleUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := sqlitetest.Open(t)
	tx := sqlite.NewTxRunner(db)
	return &fixture{
		products: usecase.NewProductUseCase(sqlite.NewProductRepository(db), tx, logger.Nop()),
		sales: inventory.NewRecordSaleUseCase(tx, sqlite.NewSaleRepository(db), logger.Nop()).
			WithClock(func() time.Time { return fixedNow }),
	}
}

func (f *fixture) addProduct(t *testing.T, name, price string, qty int) int64 {
	t.Helper()
	out, err := f.products.Create(context.Background(), dto.CreateProductRequest{
		Name: name, Price: decimal.RequireFromString(price), Quantity: qty,
	})
	require.NoError(t, err)
	return out.ID
}

func (f *fixture) stock(t *testing.T, id int64) int {
	t.Helper()
	p, err := f.products.GetByID(context.Background(), id)
	require.NoError(t, err)
	return p.Quantity
}

func (f *fixture) salesCount(t *testing.T) int {
	t.Helper()
	list, err := f.sales.ListSales(context.Background())
	require.NoError(t, err)
	return len(list)
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordSale
// ──────────────────────────────────────────────────────────────────────────────

// Escenario completo: crear, vender, rechazar por stock y borrar en cascada.
func TestRecordSale_WidgetScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	id := f.addProduct(t, "Widget", "2.50", 10)
	require.Equal(t, int64(1), id)

	sale, err := f.sales.RecordSale(ctx, dto.RecordSaleRequest{ProductID: id, QuantitySold: 3})
	require.NoError(t, err)
	assert.True(t, sale.TotalAmount.Equal(decimal.RequireFromString("7.50")), "total: %s", sale.TotalAmount)
	assert.Equal(t, 7, sale.RemainingStock)
	assert.Equal(t, 7, f.stock(t, id))

	_, err = f.sales.RecordSale(ctx, dto.RecordSaleRequest{ProductID: id, QuantitySold: 8})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 7, f.stock(t, id))
	assert.Equal(t, 1, f.salesCount(t))

	_, err = f.products.Delete(ctx, id)
	require.NoError(t, err)

	products, err := f.products.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Equal(t, 0, f.salesCount(t))
}

func TestRecordSale_RepeatedSales(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	id := f.addProduct(t, "Widget", "2.50", 10)
	for i := 0; i < 2; i++ {
		_, err := f.sales.RecordSale(ctx, dto.RecordSaleRequest{ProductID: id, QuantitySold: 4})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, f.stock(t, id))

	sales, err := f.sales.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	for _, s := range sales {
		assert.Equal(t, 4, s.QuantitySold)
		assert.True(t, s.TotalAmount.Equal(decimal.RequireFromString("10")), "total: %s", s.TotalAmount)
		assert.Equal(t, "Widget", s.ProductName)
	}
	assert.Less(t, sales[0].ID, sales[1].ID)
}

func TestRecordSale_SellEntireStock(t *testing.T) {
	f := newFixture(t)
	id := f.addProduct(t, "Widget", "1.00", 5)

	_, err := f.sales.RecordSale(context.Background(), dto.RecordSaleRequest{ProductID: id, QuantitySold: 5})
	require.NoError(t, err)
	assert.Equal(t, 0, f.stock(t, id))

	_, err = f.sales.RecordSale(context.Background(), dto.RecordSaleRequest{ProductID: id, QuantitySold: 1})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestRecordSale_Rejections_LeaveStateUnchanged(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	id := f.addProduct(t, "Widget", "2.50", 10)

	cases := map[string]struct {
		in  dto.RecordSaleRequest
		err error
	}{
		"cantidad cero":        {dto.RecordSaleRequest{ProductID: id, QuantitySold: 0}, domain.ErrInvalidInput},
		"cantidad negativa":    {dto.RecordSaleRequest{ProductID: id, QuantitySold: -2}, domain.ErrInvalidInput},
		"producto inexistente": {dto.RecordSaleRequest{ProductID: 404, QuantitySold: 1}, domain.ErrNotFound},
		"stock insuficiente":   {dto.RecordSaleRequest{ProductID: id, QuantitySold: 11}, domain.ErrInsufficientStock},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.sales.RecordSale(ctx, tc.in)
			require.ErrorIs(t, err, tc.err)
			assert.Equal(t, 10, f.stock(t, id))
			assert.Equal(t, 0, f.salesCount(t))
		})
	}
}

func TestRecordSale_TotalOutOfRange_RejectedBeforeInsert(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	id := f.addProduct(t, "Big", "1e308", 10)

	_, err := f.sales.RecordSale(ctx, dto.RecordSaleRequest{ProductID: id, QuantitySold: 10})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "total_amount", ve.Field)

	assert.Equal(t, 10, f.stock(t, id))
	assert.Equal(t, 0, f.salesCount(t))

	// Una venta cuyo total sí cabe sigue funcionando.
	out, err := f.sales.RecordSale(ctx, dto.RecordSaleRequest{ProductID: id, QuantitySold: 1})
	require.NoError(t, err)
	assert.True(t, out.TotalAmount.Equal(decimal.RequireFromString("1e308")))
	assert.Equal(t, 1, f.salesCount(t))
}

func TestRecordSale_DatedTodayAndPriceFrozen(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	id := f.addProduct(t, "Widget", "2.50", 10)

	sale, err := f.sales.RecordSale(ctx, dto.RecordSaleRequest{ProductID: id, QuantitySold: 2})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", sale.SaleDate.Format("2006-01-02"))

	// Cambiar el precio después no recalcula ventas ya registradas.
	newPrice := decimal.RequireFromString("9.99")
	_, err = f.products.Update(ctx, id, dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)

	sales, err := f.sales.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.True(t, sales[0].TotalAmount.Equal(decimal.RequireFromString("5")))
	assert.True(t, sales[0].SaleDate.Equal(sale.SaleDate))
}

func TestListSales_Empty(t *testing.T) {
	f := newFixture(t)

	sales, err := f.sales.ListSales(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sales)
}
