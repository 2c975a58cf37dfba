package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/retail/backend/internal/domain/promotion"
	"github.com/retail/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPromotionRepository implements PromotionRepository using GORM
type GormPromotionRepository struct {
	db *gorm.DB
}

// NewGormPromotionRepository creates a new GormPromotionRepository
func NewGormPromotionRepository(db *gorm.DB) *GormPromotionRepository {
	return &GormPromotionRepository{db: db}
}

// FindByID finds a promotion by its ID with items and their products resolved
func (r *GormPromotionRepository) FindByID(ctx context.Context, id uint) (*promotion.Promotion, error) {
	var promo promotion.Promotion
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		First(&promo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &promo, nil
}

// FindAll returns all promotions with items, newest first
func (r *GormPromotionRepository) FindAll(ctx context.Context) ([]promotion.Promotion, error) {
	var promos []promotion.Promotion
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&promos).Error; err != nil {
		return nil, err
	}
	return promos, nil
}

// FindActive returns promotions that are active and within their
// availability window at the given instant
func (r *GormPromotionRepository) FindActive(ctx context.Context, now time.Time) ([]promotion.Promotion, error) {
	var promos []promotion.Promotion
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where("is_active = ?", true).
		Where("start_date IS NULL OR start_date <= ?", now).
		Where("end_date IS NULL OR end_date >= ?", now).
		Order("created_at DESC").
		Find(&promos).Error; err != nil {
		return nil, err
	}
	return promos, nil
}

// Save creates or updates a promotion row
func (r *GormPromotionRepository) Save(ctx context.Context, promo *promotion.Promotion) error {
	return r.db.WithContext(ctx).Omit("Items").Save(promo).Error
}

// ReplaceItems swaps the promotion's full item set
func (r *GormPromotionRepository) ReplaceItems(ctx context.Context, promotionID uint, items []promotion.PromotionItem) error {
	if err := r.db.WithContext(ctx).
		Delete(&promotion.PromotionItem{}, "promotion_id = ?", promotionID).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].ID = 0
		items[i].PromotionID = promotionID
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// Delete deletes a promotion
func (r *GormPromotionRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&promotion.Promotion{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormPromotionRepository implements PromotionRepository
var _ promotion.PromotionRepository = (*GormPromotionRepository)(nil)
