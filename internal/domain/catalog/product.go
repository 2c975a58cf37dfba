package catalog

import (
	"time"

	"github.com/retail/backend/internal/domain/shared"
)

// Product represents a sellable item in the catalog.
// AmountToSale is the unit sale price and AmountSupplier the last known
// supplier cost; both are kept in whole currency units as the business
// prices everything in integers.
type Product struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"type:varchar(200);not null" json:"name"`
	Description    string    `gorm:"type:text" json:"description,omitempty"`
	AmountToSale   int       `gorm:"not null" json:"amount_to_sale"`
	AmountSupplier int       `gorm:"not null" json:"amount_supplier"`
	Stock          int       `gorm:"not null;default:0" json:"stock"`
	LastModified   time.Time `gorm:"autoUpdateTime" json:"last_modified"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, description string, amountToSale, amountSupplier, stock int) (*Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if amountToSale < 0 || amountSupplier < 0 {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product prices cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Initial stock cannot be negative")
	}

	return &Product{
		Name:           name,
		Description:    description,
		AmountToSale:   amountToSale,
		AmountSupplier: amountSupplier,
		Stock:          stock,
		LastModified:   time.Now(),
	}, nil
}

// HasStock reports whether quantity units can be taken from stock.
func (p *Product) HasStock(quantity int) bool {
	return p.Stock >= quantity
}

// DecreaseStock removes quantity units from stock. The sufficiency check
// and the decrement must happen while the caller holds the product row,
// otherwise concurrent sales can oversell.
func (p *Product) DecreaseStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if p.Stock < quantity {
		return shared.ErrInsufficientStock
	}
	p.Stock -= quantity
	p.LastModified = time.Now()
	return nil
}

// IncreaseStock adds quantity units to stock.
func (p *Product) IncreaseStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	p.Stock += quantity
	p.LastModified = time.Now()
	return nil
}

// UpdateSupplierAmount replaces the recorded supplier cost.
func (p *Product) UpdateSupplierAmount(amount int) error {
	if amount < 0 {
		return shared.NewDomainError("INVALID_PRICE", "Supplier amount cannot be negative")
	}
	p.AmountSupplier = amount
	p.LastModified = time.Now()
	return nil
}

// StockValue returns the replacement value of the stock on hand at the
// current supplier cost.
func (p *Product) StockValue() int {
	return p.Stock * p.AmountSupplier
}

func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
