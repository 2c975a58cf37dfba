package pricing

import (
	"time"

	"github.com/retail/backend/internal/domain/partner"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// SupplierPrice is a supplier's quoted unit price for a product.
// Quotes are overwritten in place; there is no price history, so the
// latest persisted UnitPrice is always the supplier's current quote.
type SupplierPrice struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	SupplierID  uint            `gorm:"not null;index;uniqueIndex:idx_supplier_product,priority:1" json:"supplier_id"`
	ProductID   uint            `gorm:"not null;index;uniqueIndex:idx_supplier_product,priority:2" json:"product_id"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	LastUpdated time.Time       `gorm:"autoUpdateTime" json:"last_updated"`

	Supplier *partner.Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// TableName returns the table name for GORM
func (SupplierPrice) TableName() string {
	return "supplier_product_prices"
}

// NewSupplierPrice creates a new supplier quote
func NewSupplierPrice(supplierID, productID uint, unitPrice decimal.Decimal) (*SupplierPrice, error) {
	if supplierID == 0 {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID is required")
	}
	if productID == 0 {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID is required")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	return &SupplierPrice{
		SupplierID:  supplierID,
		ProductID:   productID,
		UnitPrice:   unitPrice,
		LastUpdated: time.Now(),
	}, nil
}

// UpdatePrice replaces the quoted unit price.
func (p *SupplierPrice) UpdatePrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	p.UnitPrice = unitPrice
	p.LastUpdated = time.Now()
	return nil
}

// BestPrice is the minimum quoted unit price for a product together with
// the supplier that quoted it. BestUnitPrice and SupplierName are nil
// when the product has no quotes. Ties between equal minimum quotes
// resolve to the lowest supplier ID.
type BestPrice struct {
	ProductID     uint             `json:"product_id"`
	ProductName   string           `json:"product_name"`
	BestUnitPrice *decimal.Decimal `json:"best_unit_price"`
	SupplierName  *string          `json:"supplier_name"`
}
