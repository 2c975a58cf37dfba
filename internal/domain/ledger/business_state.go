package ledger

import (
	"time"

	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// BalanceStateID is the row that holds the running business balance.
// Historical snapshot rows may exist alongside it, but balance
// adjustments always target this one row.
const BalanceStateID uint = 1

// BusinessState is a point-in-time or running snapshot of the business
// ledger. The row with ID BalanceStateID acts as the singleton balance
// holder; access to it goes through the ledger StateService, which
// serializes adjustments on the row.
type BusinessState struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	TotalStockValue decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_stock_value"`
	TotalSales      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_sales"`
	TotalPurchases  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_purchases"`
	Balance         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"balance"`
	Notes           string          `gorm:"type:text" json:"notes,omitempty"`
	Date            time.Time       `json:"date"`
}

// TableName returns the table name for GORM
func (BusinessState) TableName() string {
	return "business_states"
}

// AddBalance adds amount to the running balance.
func (s *BusinessState) AddBalance(amount decimal.Decimal) {
	s.Balance = s.Balance.Add(amount)
}

// SubtractBalance subtracts amount from the running balance.
func (s *BusinessState) SubtractBalance(amount decimal.Decimal) {
	s.Balance = s.Balance.Sub(amount)
}

// NewBusinessState creates a new snapshot row
func NewBusinessState(totalStockValue, balance decimal.Decimal, notes string, date time.Time) (*BusinessState, error) {
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Snapshot date is required")
	}
	return &BusinessState{
		TotalStockValue: totalStockValue,
		Balance:         balance,
		Notes:           notes,
		Date:            date,
	}, nil
}
