package promotion

import (
	"context"
	"time"
)

// PromotionRepository defines the interface for promotion persistence
type PromotionRepository interface {
	// FindByID finds a promotion by its ID with items and their products resolved
	FindByID(ctx context.Context, id uint) (*Promotion, error)

	// FindAll returns all promotions with items, newest first
	FindAll(ctx context.Context) ([]Promotion, error)

	// FindActive returns promotions that are active and within their
	// availability window at the given instant
	FindActive(ctx context.Context, now time.Time) ([]Promotion, error)

	// Save creates or updates a promotion row (without touching items)
	Save(ctx context.Context, promo *Promotion) error

	// ReplaceItems swaps the promotion's full item set: existing rows are
	// deleted and the given ones inserted
	ReplaceItems(ctx context.Context, promotionID uint, items []PromotionItem) error

	// Delete deletes a promotion
	Delete(ctx context.Context, id uint) error
}
