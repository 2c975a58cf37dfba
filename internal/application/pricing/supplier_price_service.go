package pricing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/partner"
	"github.com/retail/backend/internal/domain/pricing"
)

// CreateSupplierPriceRequest records a supplier's quote for a product.
type CreateSupplierPriceRequest struct {
	SupplierID uint            `json:"supplier_id"`
	ProductID  uint            `json:"product_id"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// UpdateSupplierPriceRequest replaces the quoted unit price.
type UpdateSupplierPriceRequest struct {
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SupplierPriceService handles supplier quote operations
type SupplierPriceService struct {
	priceRepo    pricing.SupplierPriceRepository
	supplierRepo partner.SupplierRepository
	productRepo  catalog.ProductRepository
}

// NewSupplierPriceService creates a new SupplierPriceService
func NewSupplierPriceService(priceRepo pricing.SupplierPriceRepository, supplierRepo partner.SupplierRepository, productRepo catalog.ProductRepository) *SupplierPriceService {
	return &SupplierPriceService{
		priceRepo:    priceRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
	}
}

// Create records a quote. Both the supplier and the product must exist.
func (s *SupplierPriceService) Create(ctx context.Context, req CreateSupplierPriceRequest) (*pricing.SupplierPrice, error) {
	price, err := pricing.NewSupplierPrice(req.SupplierID, req.ProductID, req.UnitPrice)
	if err != nil {
		return nil, err
	}
	if _, err := s.supplierRepo.FindByID(ctx, req.SupplierID); err != nil {
		return nil, err
	}
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		return nil, err
	}
	if err := s.priceRepo.Save(ctx, price); err != nil {
		return nil, err
	}
	return price, nil
}

// GetByID retrieves a quote by ID
func (s *SupplierPriceService) GetByID(ctx context.Context, id uint) (*pricing.SupplierPrice, error) {
	return s.priceRepo.FindByID(ctx, id)
}

// GetAll retrieves all quotes
func (s *SupplierPriceService) GetAll(ctx context.Context) ([]pricing.SupplierPrice, error) {
	return s.priceRepo.FindAll(ctx)
}

// GetBySupplier retrieves all quotes from one supplier
func (s *SupplierPriceService) GetBySupplier(ctx context.Context, supplierID uint) ([]pricing.SupplierPrice, error) {
	return s.priceRepo.FindBySupplier(ctx, supplierID)
}

// GetByProduct retrieves all quotes for one product
func (s *SupplierPriceService) GetByProduct(ctx context.Context, productID uint) ([]pricing.SupplierPrice, error) {
	return s.priceRepo.FindByProduct(ctx, productID)
}

// Update replaces the quoted unit price
func (s *SupplierPriceService) Update(ctx context.Context, id uint, req UpdateSupplierPriceRequest) (*pricing.SupplierPrice, error) {
	price, err := s.priceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := price.UpdatePrice(req.UnitPrice); err != nil {
		return nil, err
	}
	if err := s.priceRepo.Save(ctx, price); err != nil {
		return nil, err
	}
	return price, nil
}

// Delete deletes a quote
func (s *SupplierPriceService) Delete(ctx context.Context, id uint) error {
	return s.priceRepo.Delete(ctx, id)
}
