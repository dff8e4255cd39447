package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sales-ledger/internal/domain"
	"github.com/jhoicas/sales-ledger/internal/domain/entity"
)

func TestProduct_Validate(t *testing.T) {
	valid := entity.Product{Name: "Widget", Price: decimal.RequireFromString("2.50"), Quantity: 0}
	require.NoError(t, valid.Validate())

	cases := map[string]entity.Product{
		"name":     {Name: " ", Price: decimal.NewFromInt(1), Quantity: 1},
		"price":    {Name: "A", Price: decimal.Zero, Quantity: 1},
		"quantity": {Name: "A", Price: decimal.NewFromInt(1), Quantity: -1},
	}
	for field, p := range cases {
		err := p.Validate()
		require.ErrorIs(t, err, domain.ErrInvalidInput, field)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, field, ve.Field)
	}
}

func TestProduct_Validate_PriceMustSurviveREALStorage(t *testing.T) {
	for _, price := range []string{"1e400", "1e-400"} {
		p := entity.Product{Name: "A", Price: decimal.RequireFromString(price), Quantity: 1}
		err := p.Validate()
		require.ErrorIs(t, err, domain.ErrInvalidInput, price)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "price", ve.Field)
		assert.Equal(t, "Price is out of range.", ve.Message)
	}

	big := entity.Product{Name: "A", Price: decimal.RequireFromString("1e308"), Quantity: 1}
	assert.NoError(t, big.Validate())
}

func TestAmountFitsStorage(t *testing.T) {
	assert.True(t, entity.AmountFitsStorage(decimal.RequireFromString("0.01")))
	assert.False(t, entity.AmountFitsStorage(decimal.Zero))
	assert.False(t, entity.AmountFitsStorage(decimal.RequireFromString("1e309")))
	assert.False(t, entity.AmountFitsStorage(decimal.RequireFromString("1e-400")))
}

func TestProduct_CanSell(t *testing.T) {
	p := entity.Product{Quantity: 5}

	assert.True(t, p.CanSell(1))
	assert.True(t, p.CanSell(5))
	assert.False(t, p.CanSell(6))
	assert.False(t, p.CanSell(0))
	assert.False(t, p.CanSell(-1))
}
