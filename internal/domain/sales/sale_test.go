package sales

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSale(t *testing.T) {
	t.Run("creates sale with valid inputs", func(t *testing.T) {
		sale, err := NewSale(decimal.NewFromInt(150), "T-0001")
		require.NoError(t, err)
		require.NotNil(t, sale)

		assert.True(t, sale.Amount.Equal(decimal.NewFromInt(150)))
		assert.Equal(t, "T-0001", sale.TicketNumber)
		assert.False(t, sale.CreatedAt.IsZero())
		assert.Empty(t, sale.Items)
	})

	t.Run("allows empty ticket number", func(t *testing.T) {
		sale, err := NewSale(decimal.NewFromInt(10), "")
		require.NoError(t, err)
		assert.Empty(t, sale.TicketNumber)
	})

	t.Run("allows zero amount", func(t *testing.T) {
		_, err := NewSale(decimal.Zero, "")
		assert.NoError(t, err)
	})

	t.Run("fails with negative amount", func(t *testing.T) {
		_, err := NewSale(decimal.NewFromInt(-1), "")
		require.Error(t, err)
	})
}

func TestSale_AddItem(t *testing.T) {
	t.Run("appends line items", func(t *testing.T) {
		sale, err := NewSale(decimal.NewFromInt(75), "")
		require.NoError(t, err)

		item, err := sale.AddItem(4, 3, decimal.NewFromInt(75))
		require.NoError(t, err)
		assert.Equal(t, uint(4), item.ProductID)
		assert.Equal(t, 3, item.Quantity)
		assert.Len(t, sale.Items, 1)

		_, err = sale.AddItem(5, 1, decimal.NewFromInt(25))
		require.NoError(t, err)
		assert.Len(t, sale.Items, 2)
	})

	t.Run("fails with missing product", func(t *testing.T) {
		sale, _ := NewSale(decimal.NewFromInt(10), "")
		_, err := sale.AddItem(0, 1, decimal.NewFromInt(10))
		require.Error(t, err)
	})

	t.Run("fails with non-positive quantity", func(t *testing.T) {
		sale, _ := NewSale(decimal.NewFromInt(10), "")
		_, err := sale.AddItem(1, 0, decimal.NewFromInt(10))
		require.Error(t, err)
		_, err = sale.AddItem(1, -2, decimal.NewFromInt(10))
		require.Error(t, err)
	})
}

func TestNewTicketItem(t *testing.T) {
	t.Run("creates standalone item", func(t *testing.T) {
		item, err := NewTicketItem(2, 9, 4, decimal.NewFromInt(100), `{"label":"x"}`)
		require.NoError(t, err)

		assert.Equal(t, uint(2), item.SaleID)
		assert.Equal(t, uint(9), item.ProductID)
		assert.Equal(t, 4, item.Quantity)
		assert.Equal(t, `{"label":"x"}`, item.Print)
	})

	t.Run("fails without sale", func(t *testing.T) {
		_, err := NewTicketItem(0, 9, 1, decimal.Zero, "")
		require.Error(t, err)
	})

	t.Run("fails without product", func(t *testing.T) {
		_, err := NewTicketItem(2, 0, 1, decimal.Zero, "")
		require.Error(t, err)
	})

	t.Run("fails with non-positive quantity", func(t *testing.T) {
		_, err := NewTicketItem(2, 9, 0, decimal.Zero, "")
		require.Error(t, err)
	})
}
