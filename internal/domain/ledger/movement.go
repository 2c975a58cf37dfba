package ledger

import (
	"time"

	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/partner"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MovementType is the direction of a stock movement
type MovementType string

// MovementReason is the business cause of a stock movement
type MovementReason string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"

	ReasonSale       MovementReason = "SALE"
	ReasonPurchase   MovementReason = "PURCHASE"
	ReasonAdjustment MovementReason = "ADJUSTMENT"
	ReasonLoss       MovementReason = "LOSS"
)

// Movement is one append-only audit trail entry recording stock going in
// or out of the business.
type Movement struct {
	ID            uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID     uint             `gorm:"not null;index" json:"product_id"`
	SupplierID    *uint            `gorm:"index" json:"supplier_id,omitempty"`
	Type          MovementType     `gorm:"type:varchar(10);not null" json:"type"`
	Reason        MovementReason   `gorm:"type:varchar(20);not null" json:"reason"`
	Quantity      int              `gorm:"not null" json:"quantity"`
	UnitCost      *decimal.Decimal `gorm:"type:decimal(10,2)" json:"unit_cost,omitempty"`
	TotalAmount   *decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount,omitempty"`
	ReferenceID   *uint            `json:"reference_id,omitempty"`
	ReferenceType string           `gorm:"type:varchar(50)" json:"reference_type,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`

	Product  *catalog.Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Supplier *partner.Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// TableName returns the table name for GORM
func (Movement) TableName() string {
	return "business_movements"
}

// NewMovement creates a new movement entry
func NewMovement(productID uint, movType MovementType, reason MovementReason, quantity int) (*Movement, error) {
	if productID == 0 {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID is required")
	}
	if movType != MovementIn && movType != MovementOut {
		return nil, shared.NewDomainError("INVALID_TYPE", "Movement type must be IN or OUT")
	}
	switch reason {
	case ReasonSale, ReasonPurchase, ReasonAdjustment, ReasonLoss:
	default:
		return nil, shared.NewDomainError("INVALID_REASON", "Movement reason must be SALE, PURCHASE, ADJUSTMENT or LOSS")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Movement quantity must be positive")
	}
	return &Movement{
		ProductID: productID,
		Type:      movType,
		Reason:    reason,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}, nil
}
