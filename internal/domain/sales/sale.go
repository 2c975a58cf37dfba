package sales

import (
	"time"

	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Sale represents a completed ticket. It owns its TicketItems; items are
// only ever created as part of the sale workflow and the whole set is
// persisted in the same transaction as the sale row.
type Sale struct {
	ID           uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Amount       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	TicketNumber string          `gorm:"type:varchar(50)" json:"ticket_number,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`

	Items []TicketItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// NewSale creates a new sale
func NewSale(amount decimal.Decimal, ticketNumber string) (*Sale, error) {
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Sale amount cannot be negative")
	}
	return &Sale{
		Amount:       amount,
		TicketNumber: ticketNumber,
		CreatedAt:    time.Now(),
	}, nil
}

// AddItem appends a line to the ticket. Validation of stock happens in
// the sale workflow, not here.
func (s *Sale) AddItem(productID uint, quantity int, amount decimal.Decimal) (*TicketItem, error) {
	if productID == 0 {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID is required")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	item := TicketItem{
		ProductID: productID,
		Quantity:  quantity,
		Amount:    amount,
	}
	s.Items = append(s.Items, item)
	return &s.Items[len(s.Items)-1], nil
}
