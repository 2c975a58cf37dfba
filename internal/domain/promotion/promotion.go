package promotion

import (
	"time"

	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Promotion is a multi-product bundle sold at a single price within an
// optional availability window. Open-ended StartDate/EndDate bounds are
// treated as unbounded.
type Promotion struct {
	ID           uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string          `gorm:"type:varchar(200);not null" json:"name"`
	Description  string          `gorm:"type:text" json:"description,omitempty"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	StartDate    *time.Time      `json:"start_date,omitempty"`
	EndDate      *time.Time      `json:"end_date,omitempty"`
	IsActive     bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	LastModified time.Time       `gorm:"autoUpdateTime" json:"last_modified"`

	Items []PromotionItem `gorm:"foreignKey:PromotionID" json:"items,omitempty"`
}

// TableName returns the table name for GORM
func (Promotion) TableName() string {
	return "promotions"
}

// PromotionItem defines how many units of a product the bundle draws
// from stock when fulfilled.
type PromotionItem struct {
	ID          uint `gorm:"primaryKey;autoIncrement" json:"id"`
	PromotionID uint `gorm:"not null;index" json:"promotion_id"`
	ProductID   uint `gorm:"not null;index" json:"product_id"`
	Quantity    int  `gorm:"not null;default:1" json:"quantity"`

	Product *catalog.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName returns the table name for GORM
func (PromotionItem) TableName() string {
	return "promotion_items"
}

// NewPromotion creates a new promotion
func NewPromotion(name, description string, price decimal.Decimal, startDate, endDate *time.Time, isActive bool) (*Promotion, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Promotion name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Promotion price cannot be negative")
	}
	now := time.Now()
	return &Promotion{
		Name:         name,
		Description:  description,
		Price:        price,
		StartDate:    startDate,
		EndDate:      endDate,
		IsActive:     isActive,
		CreatedAt:    now,
		LastModified: now,
	}, nil
}

// AddItem appends a bundle line. Quantity defaults to 1 when zero.
func (p *Promotion) AddItem(productID uint, quantity int) (*PromotionItem, error) {
	if productID == 0 {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID is required")
	}
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Promotion item quantity must be at least 1")
	}
	item := PromotionItem{
		PromotionID: p.ID,
		ProductID:   productID,
		Quantity:    quantity,
	}
	p.Items = append(p.Items, item)
	return &p.Items[len(p.Items)-1], nil
}

// CheckWindow validates the promotion's availability window at the given
// instant. Stock sufficiency is checked separately against the resolved
// products.
func (p *Promotion) CheckWindow(now time.Time) error {
	if !p.IsActive {
		return shared.ErrPromotionInactive
	}
	if p.StartDate != nil && p.StartDate.After(now) {
		return shared.ErrPromotionNotStarted
	}
	if p.EndDate != nil && p.EndDate.Before(now) {
		return shared.ErrPromotionExpired
	}
	return nil
}

// IsAvailableAt reports whether the window check passes at now.
func (p *Promotion) IsAvailableAt(now time.Time) bool {
	return p.CheckWindow(now) == nil
}
