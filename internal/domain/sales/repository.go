package sales

import (
	"context"
	"time"
)

// SaleRepository defines the interface for sale persistence
type SaleRepository interface {
	// FindByID finds a sale by its ID with items resolved
	FindByID(ctx context.Context, id uint) (*Sale, error)

	// FindAll returns all sales with items, newest first
	FindAll(ctx context.Context) ([]Sale, error)

	// FindBetween returns sales created within [from, to], newest first,
	// with items and each item's product resolved
	FindBetween(ctx context.Context, from, to time.Time) ([]Sale, error)

	// Save creates or updates a sale row (without touching items)
	Save(ctx context.Context, sale *Sale) error

	// Delete deletes a sale
	Delete(ctx context.Context, id uint) error
}

// TicketItemRepository defines the interface for raw line-item persistence.
// Items are normally written only by the sale workflow; this repository
// backs the low-level item-ticket endpoints.
type TicketItemRepository interface {
	// FindByID finds a ticket item by its ID
	FindByID(ctx context.Context, id uint) (*TicketItem, error)

	// FindAll returns all ticket items
	FindAll(ctx context.Context) ([]TicketItem, error)

	// FindBySale returns the items belonging to one sale
	FindBySale(ctx context.Context, saleID uint) ([]TicketItem, error)

	// Save creates or updates a ticket item
	Save(ctx context.Context, item *TicketItem) error

	// Delete deletes a ticket item
	Delete(ctx context.Context, id uint) error
}
