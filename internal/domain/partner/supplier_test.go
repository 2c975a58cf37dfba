package partner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSupplier(t *testing.T) {
	t.Run("creates supplier", func(t *testing.T) {
		supplier, err := NewSupplier("Distribuidora Norte")
		require.NoError(t, err)
		assert.Equal(t, "Distribuidora Norte", supplier.Name)
		assert.False(t, supplier.CreatedAt.IsZero())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewSupplier("")
		require.Error(t, err)
	})

	t.Run("fails with name too long", func(t *testing.T) {
		_, err := NewSupplier(strings.Repeat("a", 201))
		require.Error(t, err)
	})
}

func TestSupplier_Rename(t *testing.T) {
	supplier, err := NewSupplier("Old name")
	require.NoError(t, err)

	require.NoError(t, supplier.Rename("New name"))
	assert.Equal(t, "New name", supplier.Name)

	require.Error(t, supplier.Rename(""))
	require.Error(t, supplier.Rename(strings.Repeat("b", 201)))
	assert.Equal(t, "New name", supplier.Name)
}
