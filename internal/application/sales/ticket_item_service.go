package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/retail/backend/internal/domain/sales"
)

// CreateTicketItemRequest creates a raw line item outside the sale
// workflow. No stock is touched through this path.
type CreateTicketItemRequest struct {
	SaleID    uint            `json:"sale_id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
	Print     string          `json:"print"`
}

// UpdateTicketItemRequest applies a partial update to a line item.
type UpdateTicketItemRequest struct {
	Quantity *int             `json:"quantity"`
	Amount   *decimal.Decimal `json:"amount"`
	Print    *string          `json:"print"`
}

// TicketItemService handles raw line-item operations. Line items are
// normally created by the sale workflow; these endpoints exist for
// corrections and receipt payload updates.
type TicketItemService struct {
	itemRepo sales.TicketItemRepository
}

// NewTicketItemService creates a new TicketItemService
func NewTicketItemService(itemRepo sales.TicketItemRepository) *TicketItemService {
	return &TicketItemService{itemRepo: itemRepo}
}

// GetAll retrieves all ticket items
func (s *TicketItemService) GetAll(ctx context.Context) ([]sales.TicketItem, error) {
	return s.itemRepo.FindAll(ctx)
}

// GetByID retrieves a ticket item by ID
func (s *TicketItemService) GetByID(ctx context.Context, id uint) (*sales.TicketItem, error) {
	return s.itemRepo.FindByID(ctx, id)
}

// GetBySale retrieves the items belonging to one sale
func (s *TicketItemService) GetBySale(ctx context.Context, saleID uint) ([]sales.TicketItem, error) {
	return s.itemRepo.FindBySale(ctx, saleID)
}

// Create inserts a raw line item
func (s *TicketItemService) Create(ctx context.Context, req CreateTicketItemRequest) (*sales.TicketItem, error) {
	item, err := sales.NewTicketItem(req.SaleID, req.ProductID, req.Quantity, req.Amount, req.Print)
	if err != nil {
		return nil, err
	}
	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update applies a partial update to a line item
func (s *TicketItemService) Update(ctx context.Context, id uint, req UpdateTicketItemRequest) (*sales.TicketItem, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Amount != nil {
		item.Amount = *req.Amount
	}
	if req.Print != nil {
		item.Print = *req.Print
	}
	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete deletes a ticket item
func (s *TicketItemService) Delete(ctx context.Context, id uint) error {
	return s.itemRepo.Delete(ctx, id)
}
