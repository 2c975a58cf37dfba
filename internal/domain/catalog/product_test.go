package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product with valid inputs", func(t *testing.T) {
		product, err := NewProduct("Coca Cola 600ml", "Bottle", 25, 18, 40)
		require.NoError(t, err)
		require.NotNil(t, product)

		assert.Equal(t, "Coca Cola 600ml", product.Name)
		assert.Equal(t, "Bottle", product.Description)
		assert.Equal(t, 25, product.AmountToSale)
		assert.Equal(t, 18, product.AmountSupplier)
		assert.Equal(t, 40, product.Stock)
		assert.False(t, product.LastModified.IsZero())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewProduct("", "desc", 10, 5, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with name too long", func(t *testing.T) {
		_, err := NewProduct(strings.Repeat("a", 201), "desc", 10, 5, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed 200 characters")
	})

	t.Run("fails with negative sale price", func(t *testing.T) {
		_, err := NewProduct("P", "", -1, 5, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be negative")
	})

	t.Run("fails with negative supplier price", func(t *testing.T) {
		_, err := NewProduct("P", "", 10, -5, 0)
		require.Error(t, err)
	})

	t.Run("fails with negative stock", func(t *testing.T) {
		_, err := NewProduct("P", "", 10, 5, -1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "stock cannot be negative")
	})

	t.Run("allows zero stock and zero prices", func(t *testing.T) {
		product, err := NewProduct("Free sample", "", 0, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, product.Stock)
	})
}

func TestProduct_HasStock(t *testing.T) {
	product := &Product{Stock: 5}

	assert.True(t, product.HasStock(5))
	assert.True(t, product.HasStock(1))
	assert.False(t, product.HasStock(6))
	assert.True(t, product.HasStock(0))
}

func TestProduct_DecreaseStock(t *testing.T) {
	t.Run("decreases stock", func(t *testing.T) {
		product := &Product{Stock: 10}
		err := product.DecreaseStock(4)
		require.NoError(t, err)
		assert.Equal(t, 6, product.Stock)
	})

	t.Run("allows draining stock to zero", func(t *testing.T) {
		product := &Product{Stock: 3}
		err := product.DecreaseStock(3)
		require.NoError(t, err)
		assert.Equal(t, 0, product.Stock)
	})

	t.Run("fails when stock insufficient", func(t *testing.T) {
		product := &Product{Stock: 2}
		err := product.DecreaseStock(3)
		require.Error(t, err)
		assert.Equal(t, 2, product.Stock, "stock must not change on failure")
	})

	t.Run("fails with non-positive quantity", func(t *testing.T) {
		product := &Product{Stock: 2}
		require.Error(t, product.DecreaseStock(0))
		require.Error(t, product.DecreaseStock(-1))
		assert.Equal(t, 2, product.Stock)
	})
}

func TestProduct_IncreaseStock(t *testing.T) {
	t.Run("increases stock", func(t *testing.T) {
		product := &Product{Stock: 1}
		require.NoError(t, product.IncreaseStock(9))
		assert.Equal(t, 10, product.Stock)
	})

	t.Run("fails with non-positive quantity", func(t *testing.T) {
		product := &Product{Stock: 1}
		require.Error(t, product.IncreaseStock(0))
		require.Error(t, product.IncreaseStock(-2))
	})
}

func TestProduct_UpdateSupplierAmount(t *testing.T) {
	product := &Product{AmountSupplier: 10}

	require.NoError(t, product.UpdateSupplierAmount(8))
	assert.Equal(t, 8, product.AmountSupplier)

	require.Error(t, product.UpdateSupplierAmount(-1))
	assert.Equal(t, 8, product.AmountSupplier)
}

func TestProduct_StockValue(t *testing.T) {
	product := &Product{Stock: 7, AmountSupplier: 12}
	assert.Equal(t, 84, product.StockValue())

	empty := &Product{Stock: 0, AmountSupplier: 12}
	assert.Equal(t, 0, empty.StockValue())
}
