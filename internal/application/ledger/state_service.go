package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/ledger"
	"github.com/retail/backend/internal/domain/shared/period"
)

// CreateStateRequest creates a ledger snapshot row. Date defaults to the
// current instant in the business timezone.
type CreateStateRequest struct {
	TotalStockValue decimal.Decimal `json:"total_stock_value"`
	TotalSales      decimal.Decimal `json:"total_sales"`
	TotalPurchases  decimal.Decimal `json:"total_purchases"`
	Balance         decimal.Decimal `json:"balance"`
	Notes           string          `json:"notes"`
	Date            *time.Time      `json:"date"`
}

// UpdateStateRequest applies a partial update to a snapshot row.
type UpdateStateRequest struct {
	TotalStockValue *decimal.Decimal `json:"total_stock_value"`
	TotalSales      *decimal.Decimal `json:"total_sales"`
	TotalPurchases  *decimal.Decimal `json:"total_purchases"`
	Balance         *decimal.Decimal `json:"balance"`
	Notes           *string          `json:"notes"`
	Date            *time.Time       `json:"date"`
}

// BalanceRequest carries the amount of a balance adjustment.
type BalanceRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// StateResponse is a snapshot row enriched with the current stock value
// computed across all products.
type StateResponse struct {
	ledger.BusinessState
	CurrentStockValue decimal.Decimal `json:"current_stock_value"`
}

// StateService handles ledger state rows and the running balance. All
// balance adjustments go through the repository's row-locked
// read-modify-write, so concurrent adjustments never lose updates.
type StateService struct {
	stateRepo   ledger.StateRepository
	productRepo catalog.ProductRepository
}

// NewStateService creates a new StateService
func NewStateService(stateRepo ledger.StateRepository, productRepo catalog.ProductRepository) *StateService {
	return &StateService{
		stateRepo:   stateRepo,
		productRepo: productRepo,
	}
}

// GetAll retrieves all state rows, most recent date first
func (s *StateService) GetAll(ctx context.Context) ([]ledger.BusinessState, error) {
	return s.stateRepo.FindAll(ctx)
}

// GetByID retrieves a state row enriched with the stock value currently
// held across all products
func (s *StateService) GetByID(ctx context.Context, id uint) (*StateResponse, error) {
	state, err := s.stateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	stockValue, err := s.currentStockValue(ctx)
	if err != nil {
		return nil, err
	}
	return &StateResponse{BusinessState: *state, CurrentStockValue: stockValue}, nil
}

// GetLatest retrieves the state row with the most recent date
func (s *StateService) GetLatest(ctx context.Context) (*ledger.BusinessState, error) {
	return s.stateRepo.FindLatest(ctx)
}

// Create creates a snapshot row
func (s *StateService) Create(ctx context.Context, req CreateStateRequest) (*ledger.BusinessState, error) {
	date := period.Now()
	if req.Date != nil {
		date = *req.Date
	}
	state, err := ledger.NewBusinessState(req.TotalStockValue, req.Balance, req.Notes, date)
	if err != nil {
		return nil, err
	}
	state.TotalSales = req.TotalSales
	state.TotalPurchases = req.TotalPurchases

	if err := s.stateRepo.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Update applies a partial update to a snapshot row
func (s *StateService) Update(ctx context.Context, id uint, req UpdateStateRequest) (*ledger.BusinessState, error) {
	state, err := s.stateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.TotalStockValue != nil {
		state.TotalStockValue = *req.TotalStockValue
	}
	if req.TotalSales != nil {
		state.TotalSales = *req.TotalSales
	}
	if req.TotalPurchases != nil {
		state.TotalPurchases = *req.TotalPurchases
	}
	if req.Balance != nil {
		state.Balance = *req.Balance
	}
	if req.Notes != nil {
		state.Notes = *req.Notes
	}
	if req.Date != nil {
		state.Date = *req.Date
	}
	if err := s.stateRepo.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Delete deletes a state row
func (s *StateService) Delete(ctx context.Context, id uint) error {
	return s.stateRepo.Delete(ctx, id)
}

// AddBalance adds amount to the running balance on the singleton row
func (s *StateService) AddBalance(ctx context.Context, amount decimal.Decimal) (*ledger.BusinessState, error) {
	return s.stateRepo.AdjustBalance(ctx, ledger.BalanceStateID, func(state *ledger.BusinessState) error {
		state.AddBalance(amount)
		return nil
	})
}

// SubtractBalance subtracts amount from the running balance on the
// singleton row
func (s *StateService) SubtractBalance(ctx context.Context, amount decimal.Decimal) (*ledger.BusinessState, error) {
	return s.stateRepo.AdjustBalance(ctx, ledger.BalanceStateID, func(state *ledger.BusinessState) error {
		state.SubtractBalance(amount)
		return nil
	})
}

func (s *StateService) currentStockValue(ctx context.Context) (decimal.Decimal, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(decimal.NewFromInt(int64(p.StockValue())))
	}
	return total, nil
}
