package persistence

import (
	"context"
	"errors"

	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/pricing"
	"github.com/retail/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSupplierPriceRepository implements SupplierPriceRepository using GORM
type GormSupplierPriceRepository struct {
	db *gorm.DB
}

// NewGormSupplierPriceRepository creates a new GormSupplierPriceRepository
func NewGormSupplierPriceRepository(db *gorm.DB) *GormSupplierPriceRepository {
	return &GormSupplierPriceRepository{db: db}
}

// FindByID finds a quote by its ID, with the supplier resolved
func (r *GormSupplierPriceRepository) FindByID(ctx context.Context, id uint) (*pricing.SupplierPrice, error) {
	var price pricing.SupplierPrice
	if err := r.db.WithContext(ctx).Preload("Supplier").First(&price, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &price, nil
}

// FindAll returns all quotes, most recently updated first
func (r *GormSupplierPriceRepository) FindAll(ctx context.Context) ([]pricing.SupplierPrice, error) {
	var prices []pricing.SupplierPrice
	if err := r.db.WithContext(ctx).
		Preload("Supplier").
		Order("last_updated DESC").
		Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

// FindBySupplier returns all quotes from one supplier
func (r *GormSupplierPriceRepository) FindBySupplier(ctx context.Context, supplierID uint) ([]pricing.SupplierPrice, error) {
	var prices []pricing.SupplierPrice
	if err := r.db.WithContext(ctx).
		Preload("Supplier").
		Where("supplier_id = ?", supplierID).
		Order("last_updated DESC").
		Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

// FindByProduct returns all quotes for one product
func (r *GormSupplierPriceRepository) FindByProduct(ctx context.Context, productID uint) ([]pricing.SupplierPrice, error) {
	var prices []pricing.SupplierPrice
	if err := r.db.WithContext(ctx).
		Preload("Supplier").
		Where("product_id = ?", productID).
		Order("last_updated DESC").
		Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

// FindBestPrices returns one entry per product: its minimum quote and the
// quoting supplier, or nil fields for products without quotes. Ordering
// by unit price then supplier ID makes the tie-break deterministic: the
// lowest supplier ID wins among equal minimum quotes.
func (r *GormSupplierPriceRepository) FindBestPrices(ctx context.Context) ([]pricing.BestPrice, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}

	var quotes []pricing.SupplierPrice
	if err := r.db.WithContext(ctx).
		Preload("Supplier").
		Order("product_id ASC").
		Order("unit_price ASC").
		Order("supplier_id ASC").
		Find(&quotes).Error; err != nil {
		return nil, err
	}

	// First quote per product is the winner given the ordering above.
	bestByProduct := make(map[uint]*pricing.SupplierPrice, len(quotes))
	for i := range quotes {
		q := &quotes[i]
		if _, ok := bestByProduct[q.ProductID]; !ok {
			bestByProduct[q.ProductID] = q
		}
	}

	best := make([]pricing.BestPrice, 0, len(products))
	for _, p := range products {
		entry := pricing.BestPrice{
			ProductID:   p.ID,
			ProductName: p.Name,
		}
		if q, ok := bestByProduct[p.ID]; ok {
			price := q.UnitPrice
			entry.BestUnitPrice = &price
			if q.Supplier != nil {
				name := q.Supplier.Name
				entry.SupplierName = &name
			}
		}
		best = append(best, entry)
	}
	return best, nil
}

// Save creates or updates a quote
func (r *GormSupplierPriceRepository) Save(ctx context.Context, price *pricing.SupplierPrice) error {
	return r.db.WithContext(ctx).Save(price).Error
}

// Delete deletes a quote
func (r *GormSupplierPriceRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&pricing.SupplierPrice{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormSupplierPriceRepository implements SupplierPriceRepository
var _ pricing.SupplierPriceRepository = (*GormSupplierPriceRepository)(nil)
