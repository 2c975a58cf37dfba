package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMovement(t *testing.T) {
	t.Run("creates movement", func(t *testing.T) {
		m, err := NewMovement(5, MovementIn, ReasonPurchase, 12)
		require.NoError(t, err)
		assert.Equal(t, uint(5), m.ProductID)
		assert.Equal(t, MovementIn, m.Type)
		assert.Equal(t, ReasonPurchase, m.Reason)
		assert.Equal(t, 12, m.Quantity)
		assert.False(t, m.CreatedAt.IsZero())
	})

	t.Run("fails without product", func(t *testing.T) {
		_, err := NewMovement(0, MovementIn, ReasonPurchase, 1)
		require.Error(t, err)
	})

	t.Run("fails with unknown type", func(t *testing.T) {
		_, err := NewMovement(5, MovementType("SIDEWAYS"), ReasonPurchase, 1)
		require.Error(t, err)
	})

	t.Run("fails with unknown reason", func(t *testing.T) {
		_, err := NewMovement(5, MovementOut, MovementReason("GIFT"), 1)
		require.Error(t, err)
	})

	t.Run("fails with non-positive quantity", func(t *testing.T) {
		_, err := NewMovement(5, MovementOut, ReasonSale, 0)
		require.Error(t, err)
		_, err = NewMovement(5, MovementOut, ReasonSale, -3)
		require.Error(t, err)
	})

	t.Run("accepts every valid reason", func(t *testing.T) {
		for _, reason := range []MovementReason{ReasonSale, ReasonPurchase, ReasonAdjustment, ReasonLoss} {
			_, err := NewMovement(5, MovementOut, reason, 1)
			assert.NoError(t, err)
		}
	})
}

func TestNewBusinessState(t *testing.T) {
	t.Run("creates snapshot", func(t *testing.T) {
		state, err := NewBusinessState(decimal.NewFromInt(500), decimal.NewFromInt(1200), "month close", time.Now())
		require.NoError(t, err)
		assert.True(t, state.TotalStockValue.Equal(decimal.NewFromInt(500)))
		assert.True(t, state.Balance.Equal(decimal.NewFromInt(1200)))
	})

	t.Run("fails without date", func(t *testing.T) {
		_, err := NewBusinessState(decimal.Zero, decimal.Zero, "", time.Time{})
		require.Error(t, err)
	})
}

func TestBusinessState_Balance(t *testing.T) {
	state := &BusinessState{Balance: decimal.NewFromInt(100)}

	state.AddBalance(decimal.NewFromInt(50))
	assert.True(t, state.Balance.Equal(decimal.NewFromInt(150)))

	state.SubtractBalance(decimal.NewFromInt(200))
	assert.True(t, state.Balance.Equal(decimal.NewFromInt(-50)), "balance may go negative")
}
