package promotion

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/retail/backend/internal/domain/promotion"
)

// PromotionItemRequest is one bundle line in a create/update request.
// Quantity defaults to 1 when omitted.
type PromotionItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// CreatePromotionRequest creates a promotion with its full item set.
type CreatePromotionRequest struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Price       decimal.Decimal        `json:"price"`
	StartDate   *time.Time             `json:"start_date"`
	EndDate     *time.Time             `json:"end_date"`
	IsActive    *bool                  `json:"is_active"`
	Items       []PromotionItemRequest `json:"items"`
}

// UpdatePromotionRequest applies a partial update. A non-nil Items slice
// replaces the promotion's full item set.
type UpdatePromotionRequest struct {
	Name        *string                `json:"name"`
	Description *string                `json:"description"`
	Price       *decimal.Decimal       `json:"price"`
	StartDate   *time.Time             `json:"start_date"`
	EndDate     *time.Time             `json:"end_date"`
	IsActive    *bool                  `json:"is_active"`
	Items       []PromotionItemRequest `json:"items"`
}

// AvailabilityResponse is the result of a successful availability check:
// the promotion with its items and resolved products.
type AvailabilityResponse struct {
	Available bool                 `json:"available"`
	Promotion *promotion.Promotion `json:"promotion"`
}
