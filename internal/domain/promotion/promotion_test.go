package promotion

import (
	"testing"
	"time"

	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPromotion(t *testing.T) {
	t.Run("creates promotion with valid inputs", func(t *testing.T) {
		start := time.Now()
		end := start.AddDate(0, 1, 0)

		promo, err := NewPromotion("Combo breakfast", "Coffee plus bread", decimal.NewFromInt(50), &start, &end, true)
		require.NoError(t, err)
		require.NotNil(t, promo)

		assert.Equal(t, "Combo breakfast", promo.Name)
		assert.True(t, promo.IsActive)
		assert.Equal(t, &start, promo.StartDate)
		assert.Equal(t, &end, promo.EndDate)
	})

	t.Run("allows open-ended window", func(t *testing.T) {
		promo, err := NewPromotion("Always on", "", decimal.NewFromInt(10), nil, nil, true)
		require.NoError(t, err)
		assert.Nil(t, promo.StartDate)
		assert.Nil(t, promo.EndDate)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewPromotion("", "", decimal.NewFromInt(10), nil, nil, true)
		require.Error(t, err)
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewPromotion("Bad", "", decimal.NewFromInt(-1), nil, nil, true)
		require.Error(t, err)
	})
}

func TestPromotion_AddItem(t *testing.T) {
	promo := &Promotion{ID: 3}

	t.Run("appends item with explicit quantity", func(t *testing.T) {
		item, err := promo.AddItem(7, 2)
		require.NoError(t, err)
		assert.Equal(t, uint(3), item.PromotionID)
		assert.Equal(t, uint(7), item.ProductID)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("defaults zero quantity to one", func(t *testing.T) {
		item, err := promo.AddItem(8, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, item.Quantity)
	})

	t.Run("fails with missing product", func(t *testing.T) {
		_, err := promo.AddItem(0, 1)
		require.Error(t, err)
	})

	t.Run("fails with negative quantity", func(t *testing.T) {
		_, err := promo.AddItem(9, -1)
		require.Error(t, err)
	})
}

func TestPromotion_CheckWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -7)
	future := now.AddDate(0, 0, 7)

	t.Run("passes inside window", func(t *testing.T) {
		promo := &Promotion{IsActive: true, StartDate: &past, EndDate: &future}
		assert.NoError(t, promo.CheckWindow(now))
		assert.True(t, promo.IsAvailableAt(now))
	})

	t.Run("passes with open-ended window", func(t *testing.T) {
		promo := &Promotion{IsActive: true}
		assert.NoError(t, promo.CheckWindow(now))
	})

	t.Run("fails when inactive", func(t *testing.T) {
		promo := &Promotion{IsActive: false, StartDate: &past, EndDate: &future}
		err := promo.CheckWindow(now)
		assert.ErrorIs(t, err, shared.ErrPromotionInactive)
	})

	t.Run("fails before start", func(t *testing.T) {
		promo := &Promotion{IsActive: true, StartDate: &future}
		err := promo.CheckWindow(now)
		assert.ErrorIs(t, err, shared.ErrPromotionNotStarted)
	})

	t.Run("fails after end", func(t *testing.T) {
		promo := &Promotion{IsActive: true, EndDate: &past}
		err := promo.CheckWindow(now)
		assert.ErrorIs(t, err, shared.ErrPromotionExpired)
		assert.False(t, promo.IsAvailableAt(now))
	})

	t.Run("boundary instants are inclusive", func(t *testing.T) {
		promo := &Promotion{IsActive: true, StartDate: &now, EndDate: &now}
		assert.NoError(t, promo.CheckWindow(now))
	})
}
