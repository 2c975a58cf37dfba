package persistence

import (
	"context"
	"errors"

	"github.com/retail/backend/internal/domain/ledger"
	"github.com/retail/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormMovementRepository implements MovementRepository using GORM
type GormMovementRepository struct {
	db *gorm.DB
}

// NewGormMovementRepository creates a new GormMovementRepository
func NewGormMovementRepository(db *gorm.DB) *GormMovementRepository {
	return &GormMovementRepository{db: db}
}

// FindByID finds a movement by its ID with product and supplier resolved
func (r *GormMovementRepository) FindByID(ctx context.Context, id uint) (*ledger.Movement, error) {
	var movement ledger.Movement
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Supplier").
		First(&movement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &movement, nil
}

// FindAll returns all movements, newest first
func (r *GormMovementRepository) FindAll(ctx context.Context) ([]ledger.Movement, error) {
	var movements []ledger.Movement
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Supplier").
		Order("created_at DESC").
		Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// FindByProduct returns the movements touching one product, newest first
func (r *GormMovementRepository) FindByProduct(ctx context.Context, productID uint) ([]ledger.Movement, error) {
	var movements []ledger.Movement
	if err := r.db.WithContext(ctx).
		Preload("Supplier").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// Save creates or updates a movement
func (r *GormMovementRepository) Save(ctx context.Context, movement *ledger.Movement) error {
	return r.db.WithContext(ctx).Save(movement).Error
}

// Delete deletes a movement
func (r *GormMovementRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&ledger.Movement{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormMovementRepository implements MovementRepository
var _ ledger.MovementRepository = (*GormMovementRepository)(nil)
