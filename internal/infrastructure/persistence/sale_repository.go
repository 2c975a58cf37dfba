package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/retail/backend/internal/domain/sales"
	"github.com/retail/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSaleRepository implements SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale by its ID with items resolved
func (r *GormSaleRepository) FindByID(ctx context.Context, id uint) (*sales.Sale, error) {
	var sale sales.Sale
	if err := r.db.WithContext(ctx).Preload("Items").First(&sale, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindAll returns all sales with items, newest first
func (r *GormSaleRepository) FindAll(ctx context.Context) ([]sales.Sale, error) {
	var result []sales.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// FindBetween returns sales created within [from, to], newest first,
// with items and each item's product resolved
func (r *GormSaleRepository) FindBetween(ctx context.Context, from, to time.Time) ([]sales.Sale, error) {
	var result []sales.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where("created_at >= ? AND created_at <= ?", from, to).
		Order("created_at DESC").
		Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// Save creates or updates a sale row
func (r *GormSaleRepository) Save(ctx context.Context, sale *sales.Sale) error {
	return r.db.WithContext(ctx).Omit("Items").Save(sale).Error
}

// Delete deletes a sale
func (r *GormSaleRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&sales.Sale{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormSaleRepository implements SaleRepository
var _ sales.SaleRepository = (*GormSaleRepository)(nil)

// GormTicketItemRepository implements TicketItemRepository using GORM
type GormTicketItemRepository struct {
	db *gorm.DB
}

// NewGormTicketItemRepository creates a new GormTicketItemRepository
func NewGormTicketItemRepository(db *gorm.DB) *GormTicketItemRepository {
	return &GormTicketItemRepository{db: db}
}

// FindByID finds a ticket item by its ID
func (r *GormTicketItemRepository) FindByID(ctx context.Context, id uint) (*sales.TicketItem, error) {
	var item sales.TicketItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll returns all ticket items
func (r *GormTicketItemRepository) FindAll(ctx context.Context) ([]sales.TicketItem, error) {
	var items []sales.TicketItem
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindBySale returns the items belonging to one sale
func (r *GormTicketItemRepository) FindBySale(ctx context.Context, saleID uint) ([]sales.TicketItem, error) {
	var items []sales.TicketItem
	if err := r.db.WithContext(ctx).Where("sale_id = ?", saleID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates a ticket item
func (r *GormTicketItemRepository) Save(ctx context.Context, item *sales.TicketItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete deletes a ticket item
func (r *GormTicketItemRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&sales.TicketItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormTicketItemRepository implements TicketItemRepository
var _ sales.TicketItemRepository = (*GormTicketItemRepository)(nil)
