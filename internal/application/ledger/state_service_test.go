package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/ledger"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStateRepository is a mock implementation of StateRepository
type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) FindByID(ctx context.Context, id uint) (*ledger.BusinessState, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.BusinessState), args.Error(1)
}

func (m *MockStateRepository) FindAll(ctx context.Context) ([]ledger.BusinessState, error) {
	args := m.Called(ctx)
	return args.Get(0).([]ledger.BusinessState), args.Error(1)
}

func (m *MockStateRepository) FindLatest(ctx context.Context) (*ledger.BusinessState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.BusinessState), args.Error(1)
}

func (m *MockStateRepository) AdjustBalance(ctx context.Context, id uint, fn func(*ledger.BusinessState) error) (*ledger.BusinessState, error) {
	args := m.Called(ctx, id, fn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	state := args.Get(0).(*ledger.BusinessState)
	if err := fn(state); err != nil {
		return nil, err
	}
	return state, args.Error(1)
}

func (m *MockStateRepository) Save(ctx context.Context, state *ledger.BusinessState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockStateRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uint) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uint) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindLowStock(ctx context.Context, threshold int) ([]catalog.Product, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestStateService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("enriches the row with the current stock value", func(t *testing.T) {
		states := new(MockStateRepository)
		products := new(MockProductRepository)
		svc := NewStateService(states, products)

		state := &ledger.BusinessState{ID: 1, Balance: decimal.NewFromInt(500)}
		states.On("FindByID", ctx, uint(1)).Return(state, nil)
		products.On("FindAll", ctx).Return([]catalog.Product{
			{ID: 1, AmountSupplier: 7, Stock: 12},
			{ID: 2, AmountSupplier: 3, Stock: 5},
		}, nil)

		resp, err := svc.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "500", resp.Balance.String())
		// 7*12 + 3*5
		assert.Equal(t, "99", resp.CurrentStockValue.String())
	})

	t.Run("propagates not found", func(t *testing.T) {
		states := new(MockStateRepository)
		products := new(MockProductRepository)
		svc := NewStateService(states, products)

		states.On("FindByID", ctx, uint(404)).Return(nil, shared.ErrNotFound)

		_, err := svc.GetByID(ctx, 404)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		products.AssertNotCalled(t, "FindAll")
	})
}

func TestStateService_Balance(t *testing.T) {
	ctx := context.Background()

	t.Run("add targets the singleton row", func(t *testing.T) {
		states := new(MockStateRepository)
		svc := NewStateService(states, nil)

		state := &ledger.BusinessState{ID: ledger.BalanceStateID, Balance: decimal.NewFromInt(100)}
		states.On("AdjustBalance", ctx, uint(ledger.BalanceStateID), mock.Anything).Return(state, nil)

		got, err := svc.AddBalance(ctx, decimal.NewFromInt(40))
		require.NoError(t, err)
		assert.Equal(t, "140", got.Balance.String())
	})

	t.Run("subtract may drive the balance negative", func(t *testing.T) {
		states := new(MockStateRepository)
		svc := NewStateService(states, nil)

		state := &ledger.BusinessState{ID: ledger.BalanceStateID, Balance: decimal.NewFromInt(30)}
		states.On("AdjustBalance", ctx, uint(ledger.BalanceStateID), mock.Anything).Return(state, nil)

		got, err := svc.SubtractBalance(ctx, decimal.NewFromInt(50))
		require.NoError(t, err)
		assert.Equal(t, "-20", got.Balance.String())
	})
}

func TestStateService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults the date when omitted", func(t *testing.T) {
		states := new(MockStateRepository)
		svc := NewStateService(states, nil)

		states.On("Save", ctx, mock.Anything).Return(nil)

		state, err := svc.Create(ctx, CreateStateRequest{
			TotalStockValue: decimal.NewFromInt(200),
			Balance:         decimal.NewFromInt(50),
			Notes:           "opening",
		})
		require.NoError(t, err)
		assert.False(t, state.Date.IsZero())
		assert.Equal(t, "opening", state.Notes)
	})

	t.Run("keeps an explicit date", func(t *testing.T) {
		states := new(MockStateRepository)
		svc := NewStateService(states, nil)

		states.On("Save", ctx, mock.Anything).Return(nil)

		date := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
		state, err := svc.Create(ctx, CreateStateRequest{Date: &date})
		require.NoError(t, err)
		assert.True(t, state.Date.Equal(date))
	})
}
