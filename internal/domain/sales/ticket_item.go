package sales

import (
	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TicketItem is one product line on a sale ticket. Print carries an
// opaque receipt payload as raw JSON; the service never interprets it.
type TicketItem struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	SaleID    uint            `gorm:"not null;index" json:"sale_id"`
	ProductID uint            `gorm:"not null;index" json:"product_id"`
	Quantity  int             `json:"quantity"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	Print     string          `gorm:"type:jsonb" json:"print,omitempty"`

	Product *catalog.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName returns the table name for GORM
func (TicketItem) TableName() string {
	return "item_tickets"
}

// NewTicketItem creates a standalone line item. The sale workflow builds
// its items through Sale.AddItem instead.
func NewTicketItem(saleID, productID uint, quantity int, amount decimal.Decimal, print string) (*TicketItem, error) {
	if saleID == 0 {
		return nil, shared.NewDomainError("INVALID_SALE", "Sale ID is required")
	}
	if productID == 0 {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID is required")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	return &TicketItem{
		SaleID:    saleID,
		ProductID: productID,
		Quantity:  quantity,
		Amount:    amount,
		Print:     print,
	}, nil
}
