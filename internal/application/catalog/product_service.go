package catalog

import (
	"context"

	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/pricing"
)

// DefaultLowStockThreshold is used when the caller does not supply one.
const DefaultLowStockThreshold = 5

// ProductService handles product business operations
type ProductService struct {
	productRepo      catalog.ProductRepository
	priceRepo        pricing.SupplierPriceRepository
	defaultThreshold int
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, priceRepo pricing.SupplierPriceRepository) *ProductService {
	return &ProductService{
		productRepo:      productRepo,
		priceRepo:        priceRepo,
		defaultThreshold: DefaultLowStockThreshold,
	}
}

// WithLowStockThreshold overrides the fallback threshold used when a
// low-stock query does not supply one.
func (s *ProductService) WithLowStockThreshold(threshold int) *ProductService {
	if threshold > 0 {
		s.defaultThreshold = threshold
	}
	return s
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*catalog.Product, error) {
	product, err := catalog.NewProduct(req.Name, req.Description, req.AmountToSale, req.AmountSupplier, req.Stock)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uint) (*catalog.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// List retrieves all products, newest first
func (s *ProductService) List(ctx context.Context) ([]catalog.Product, error) {
	return s.productRepo.FindAll(ctx)
}

// Update applies a partial update to a product
func (s *ProductService) Update(ctx context.Context, id uint, req UpdateProductRequest) (*catalog.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.AmountToSale != nil {
		product.AmountToSale = *req.AmountToSale
	}
	if req.AmountSupplier != nil {
		if err := product.UpdateSupplierAmount(*req.AmountSupplier); err != nil {
			return nil, err
		}
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete deletes a product
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	return s.productRepo.Delete(ctx, id)
}

// LowStock returns products with stock below threshold, ordered by stock
// then name. A non-positive threshold falls back to the default.
func (s *ProductService) LowStock(ctx context.Context, threshold int) (*LowStockResponse, error) {
	if threshold <= 0 {
		threshold = s.defaultThreshold
	}
	products, err := s.productRepo.FindLowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}

	summaries := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		summaries = append(summaries, ProductSummary{
			ID:             p.ID,
			Name:           p.Name,
			Description:    p.Description,
			AmountToSale:   p.AmountToSale,
			AmountSupplier: p.AmountSupplier,
			Stock:          p.Stock,
		})
	}
	return &LowStockResponse{
		Products:  summaries,
		Count:     len(summaries),
		Threshold: threshold,
	}, nil
}

// BestPrices returns, for every product, the minimum supplier quote and
// the quoting supplier; products without quotes carry nil fields.
func (s *ProductService) BestPrices(ctx context.Context) ([]pricing.BestPrice, error) {
	return s.priceRepo.FindBestPrices(ctx)
}

// BulkUpdatePrices writes each product's minimum quote back into its
// recorded supplier cost, rounded to a whole currency unit. Products
// without quotes are left untouched.
func (s *ProductService) BulkUpdatePrices(ctx context.Context) (*BulkUpdateResult, error) {
	best, err := s.priceRepo.FindBestPrices(ctx)
	if err != nil {
		return nil, err
	}

	updated := 0
	for _, bp := range best {
		if bp.BestUnitPrice == nil {
			continue
		}
		product, err := s.productRepo.FindByID(ctx, bp.ProductID)
		if err != nil {
			return nil, err
		}
		amount := int(bp.BestUnitPrice.Round(0).IntPart())
		if err := product.UpdateSupplierAmount(amount); err != nil {
			return nil, err
		}
		if err := s.productRepo.Save(ctx, product); err != nil {
			return nil, err
		}
		updated++
	}
	return &BulkUpdateResult{Updated: updated}, nil
}
