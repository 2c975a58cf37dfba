package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	appsales "github.com/retail/backend/internal/application/sales"
	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/sales"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSaleService(db *gorm.DB) *appsales.SaleService {
	return appsales.NewSaleService(NewGormSaleRepository(db), NewGormSaleTransactionScope(db))
}

func TestSaleWorkflow_CreateWithItems(t *testing.T) {
	ctx := context.Background()

	t.Run("persists sale, items, and stock decrements atomically", func(t *testing.T) {
		db := newTestDB(t)
		cola := seedProduct(t, db, "Cola", 25, 18, 10)
		chips := seedProduct(t, db, "Chips", 15, 9, 4)

		sale, err := newSaleService(db).CreateWithItems(ctx, appsales.CreateSaleWithItemsRequest{
			Amount:        decimal.NewFromInt(65),
			PaymentAmount: decimal.NewFromInt(100),
			TicketNumber:  "T-100",
			Items: []appsales.SaleItemRequest{
				{ProductID: cola.ID, Quantity: 2, Amount: decimal.NewFromInt(50)},
				{ProductID: chips.ID, Quantity: 1, Amount: decimal.NewFromInt(15)},
			},
		})
		require.NoError(t, err)
		require.NotNil(t, sale)
		assert.Len(t, sale.Items, 2)
		assert.Equal(t, "T-100", sale.TicketNumber)

		var gotCola, gotChips catalog.Product
		require.NoError(t, db.First(&gotCola, cola.ID).Error)
		require.NoError(t, db.First(&gotChips, chips.ID).Error)
		assert.Equal(t, 8, gotCola.Stock)
		assert.Equal(t, 3, gotChips.Stock)
	})

	t.Run("rejects payment below total before touching the database", func(t *testing.T) {
		db := newTestDB(t)
		cola := seedProduct(t, db, "Cola", 25, 18, 10)

		_, err := newSaleService(db).CreateWithItems(ctx, appsales.CreateSaleWithItemsRequest{
			Amount:        decimal.NewFromInt(50),
			PaymentAmount: decimal.NewFromInt(49),
			Items: []appsales.SaleItemRequest{
				{ProductID: cola.ID, Quantity: 2, Amount: decimal.NewFromInt(50)},
			},
		})
		assert.ErrorIs(t, err, shared.ErrInsufficientPayment)

		var saleCount int64
		require.NoError(t, db.Model(&sales.Sale{}).Count(&saleCount).Error)
		assert.Zero(t, saleCount)
	})

	t.Run("exact payment is accepted", func(t *testing.T) {
		db := newTestDB(t)
		cola := seedProduct(t, db, "Cola", 25, 18, 10)

		_, err := newSaleService(db).CreateWithItems(ctx, appsales.CreateSaleWithItemsRequest{
			Amount:        decimal.NewFromInt(25),
			PaymentAmount: decimal.NewFromInt(25),
			Items: []appsales.SaleItemRequest{
				{ProductID: cola.ID, Quantity: 1, Amount: decimal.NewFromInt(25)},
			},
		})
		assert.NoError(t, err)
	})

	t.Run("rolls back everything when any line lacks stock", func(t *testing.T) {
		db := newTestDB(t)
		cola := seedProduct(t, db, "Cola", 25, 18, 10)
		chips := seedProduct(t, db, "Chips", 15, 9, 1)

		_, err := newSaleService(db).CreateWithItems(ctx, appsales.CreateSaleWithItemsRequest{
			Amount:        decimal.NewFromInt(80),
			PaymentAmount: decimal.NewFromInt(100),
			Items: []appsales.SaleItemRequest{
				{ProductID: cola.ID, Quantity: 2, Amount: decimal.NewFromInt(50)},
				{ProductID: chips.ID, Quantity: 2, Amount: decimal.NewFromInt(30)},
			},
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)

		var saleCount, itemCount int64
		require.NoError(t, db.Model(&sales.Sale{}).Count(&saleCount).Error)
		require.NoError(t, db.Model(&sales.TicketItem{}).Count(&itemCount).Error)
		assert.Zero(t, saleCount, "no sale row may survive the rollback")
		assert.Zero(t, itemCount, "no item row may survive the rollback")

		var gotCola catalog.Product
		require.NoError(t, db.First(&gotCola, cola.ID).Error)
		assert.Equal(t, 10, gotCola.Stock, "stock must be untouched after rollback")
	})

	t.Run("fails when a line references a missing product", func(t *testing.T) {
		db := newTestDB(t)

		_, err := newSaleService(db).CreateWithItems(ctx, appsales.CreateSaleWithItemsRequest{
			Amount:        decimal.NewFromInt(10),
			PaymentAmount: decimal.NewFromInt(10),
			Items: []appsales.SaleItemRequest{
				{ProductID: 999, Quantity: 1, Amount: decimal.NewFromInt(10)},
			},
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("fails with an empty item list", func(t *testing.T) {
		db := newTestDB(t)

		_, err := newSaleService(db).CreateWithItems(ctx, appsales.CreateSaleWithItemsRequest{
			Amount:        decimal.NewFromInt(10),
			PaymentAmount: decimal.NewFromInt(10),
		})
		require.Error(t, err)
	})

	t.Run("repeated product lines decrement the same stock", func(t *testing.T) {
		db := newTestDB(t)
		cola := seedProduct(t, db, "Cola", 25, 18, 5)

		sale, err := newSaleService(db).CreateWithItems(ctx, appsales.CreateSaleWithItemsRequest{
			Amount:        decimal.NewFromInt(75),
			PaymentAmount: decimal.NewFromInt(75),
			Items: []appsales.SaleItemRequest{
				{ProductID: cola.ID, Quantity: 2, Amount: decimal.NewFromInt(50)},
				{ProductID: cola.ID, Quantity: 1, Amount: decimal.NewFromInt(25)},
			},
		})
		require.NoError(t, err)
		assert.Len(t, sale.Items, 2)

		var got catalog.Product
		require.NoError(t, db.First(&got, cola.ID).Error)
		assert.Equal(t, 2, got.Stock)
	})
}

func TestGormSaleRepository_FindBetween(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormSaleRepository(db)

	base := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	inside := &sales.Sale{Amount: decimal.NewFromInt(10), CreatedAt: base}
	before := &sales.Sale{Amount: decimal.NewFromInt(20), CreatedAt: base.Add(-48 * time.Hour)}
	after := &sales.Sale{Amount: decimal.NewFromInt(30), CreatedAt: base.Add(48 * time.Hour)}
	require.NoError(t, db.Create(inside).Error)
	require.NoError(t, db.Create(before).Error)
	require.NoError(t, db.Create(after).Error)

	got, err := repo.FindBetween(ctx, base.Add(-time.Hour), base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, inside.ID, got[0].ID)

	// Boundaries are inclusive on both ends.
	got, err = repo.FindBetween(ctx, base, base)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
