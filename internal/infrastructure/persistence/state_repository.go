package persistence

import (
	"context"
	"errors"

	"github.com/retail/backend/internal/domain/ledger"
	"github.com/retail/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormStateRepository implements StateRepository using GORM
type GormStateRepository struct {
	db *gorm.DB
}

// NewGormStateRepository creates a new GormStateRepository
func NewGormStateRepository(db *gorm.DB) *GormStateRepository {
	return &GormStateRepository{db: db}
}

// FindByID finds a state row by its ID
func (r *GormStateRepository) FindByID(ctx context.Context, id uint) (*ledger.BusinessState, error) {
	var state ledger.BusinessState
	if err := r.db.WithContext(ctx).First(&state, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &state, nil
}

// FindAll returns all state rows, most recent date first
func (r *GormStateRepository) FindAll(ctx context.Context) ([]ledger.BusinessState, error) {
	var states []ledger.BusinessState
	if err := r.db.WithContext(ctx).Order("date DESC").Find(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}

// FindLatest returns the state row with the most recent date
func (r *GormStateRepository) FindLatest(ctx context.Context) (*ledger.BusinessState, error) {
	var state ledger.BusinessState
	if err := r.db.WithContext(ctx).Order("date DESC").First(&state).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &state, nil
}

// AdjustBalance applies fn to the state row with the given ID while
// holding a row lock, then persists the result. The read and the write
// happen in one transaction so concurrent adjustments cannot lose
// updates.
func (r *GormStateRepository) AdjustBalance(ctx context.Context, id uint, fn func(*ledger.BusinessState) error) (*ledger.BusinessState, error) {
	var state ledger.BusinessState
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&state, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if err := fn(&state); err != nil {
			return err
		}
		return tx.Save(&state).Error
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// Save creates or updates a state row
func (r *GormStateRepository) Save(ctx context.Context, state *ledger.BusinessState) error {
	return r.db.WithContext(ctx).Save(state).Error
}

// Delete deletes a state row
func (r *GormStateRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&ledger.BusinessState{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormStateRepository implements StateRepository
var _ ledger.StateRepository = (*GormStateRepository)(nil)
