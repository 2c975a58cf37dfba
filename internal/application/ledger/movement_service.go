package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/ledger"
)

// CreateMovementRequest records a stock movement audit entry.
type CreateMovementRequest struct {
	ProductID     uint                  `json:"product_id"`
	SupplierID    *uint                 `json:"supplier_id"`
	Type          ledger.MovementType   `json:"type"`
	Reason        ledger.MovementReason `json:"reason"`
	Quantity      int                   `json:"quantity"`
	UnitCost      *decimal.Decimal      `json:"unit_cost"`
	ReferenceID   *uint                 `json:"reference_id"`
	ReferenceType string                `json:"reference_type"`
}

// MovementService handles stock movement audit entries
type MovementService struct {
	movementRepo ledger.MovementRepository
	productRepo  catalog.ProductRepository
}

// NewMovementService creates a new MovementService
func NewMovementService(movementRepo ledger.MovementRepository, productRepo catalog.ProductRepository) *MovementService {
	return &MovementService{
		movementRepo: movementRepo,
		productRepo:  productRepo,
	}
}

// Create records a movement. The referenced product must exist. When a
// unit cost is given, the movement's total amount is derived from it.
func (s *MovementService) Create(ctx context.Context, req CreateMovementRequest) (*ledger.Movement, error) {
	movement, err := ledger.NewMovement(req.ProductID, req.Type, req.Reason, req.Quantity)
	if err != nil {
		return nil, err
	}
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	movement.SupplierID = req.SupplierID
	movement.ReferenceID = req.ReferenceID
	movement.ReferenceType = req.ReferenceType
	if req.UnitCost != nil {
		movement.UnitCost = req.UnitCost
		total := req.UnitCost.Mul(decimal.NewFromInt(int64(req.Quantity)))
		movement.TotalAmount = &total
	}

	if err := s.movementRepo.Save(ctx, movement); err != nil {
		return nil, err
	}
	return movement, nil
}

// GetByID retrieves a movement by ID
func (s *MovementService) GetByID(ctx context.Context, id uint) (*ledger.Movement, error) {
	return s.movementRepo.FindByID(ctx, id)
}

// GetAll retrieves all movements, newest first
func (s *MovementService) GetAll(ctx context.Context) ([]ledger.Movement, error) {
	return s.movementRepo.FindAll(ctx)
}

// GetByProduct retrieves the movements touching one product
func (s *MovementService) GetByProduct(ctx context.Context, productID uint) ([]ledger.Movement, error) {
	return s.movementRepo.FindByProduct(ctx, productID)
}

// Delete deletes a movement
func (s *MovementService) Delete(ctx context.Context, id uint) error {
	return s.movementRepo.Delete(ctx, id)
}
