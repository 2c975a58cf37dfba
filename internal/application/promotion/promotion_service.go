package promotion

import (
	"context"
	"fmt"
	"time"

	"github.com/retail/backend/internal/domain/promotion"
	"github.com/retail/backend/internal/domain/shared"
)

// PromotionService handles promotion definition and availability checks
type PromotionService struct {
	promoRepo promotion.PromotionRepository
	scope     TransactionScope
	now       func() time.Time
}

// NewPromotionService creates a new PromotionService
func NewPromotionService(promoRepo promotion.PromotionRepository, scope TransactionScope) *PromotionService {
	return &PromotionService{
		promoRepo: promoRepo,
		scope:     scope,
		now:       time.Now,
	}
}

// WithClock overrides the service clock. Used by tests to pin
// availability windows.
func (s *PromotionService) WithClock(now func() time.Time) *PromotionService {
	s.now = now
	return s
}

// GetAll retrieves all promotions with their items
func (s *PromotionService) GetAll(ctx context.Context) ([]promotion.Promotion, error) {
	return s.promoRepo.FindAll(ctx)
}

// GetByID retrieves a promotion with its items and resolved products
func (s *PromotionService) GetByID(ctx context.Context, id uint) (*promotion.Promotion, error) {
	return s.promoRepo.FindByID(ctx, id)
}

// GetActive retrieves promotions whose availability window is open now
func (s *PromotionService) GetActive(ctx context.Context) ([]promotion.Promotion, error) {
	return s.promoRepo.FindActive(ctx, s.now())
}

// Create persists a promotion together with its item set. Every item's
// product must exist; otherwise the whole transaction rolls back.
func (s *PromotionService) Create(ctx context.Context, req CreatePromotionRequest) (*promotion.Promotion, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	promo, err := promotion.NewPromotion(req.Name, req.Description, req.Price, req.StartDate, req.EndDate, isActive)
	if err != nil {
		return nil, err
	}
	for _, item := range req.Items {
		if _, err := promo.AddItem(item.ProductID, item.Quantity); err != nil {
			return nil, err
		}
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := checkProductsExist(ctx, repos, promo.Items); err != nil {
			return err
		}
		if err := repos.Promotions().Save(ctx, promo); err != nil {
			return err
		}
		return repos.Promotions().ReplaceItems(ctx, promo.ID, promo.Items)
	})
	if err != nil {
		return nil, err
	}
	return s.promoRepo.FindByID(ctx, promo.ID)
}

// Update applies a partial update; a non-nil item slice replaces the
// promotion's full item set within the same transaction.
func (s *PromotionService) Update(ctx context.Context, id uint, req UpdatePromotionRequest) (*promotion.Promotion, error) {
	promo, err := s.promoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewDomainError("INVALID_NAME", "Promotion name cannot be empty")
		}
		promo.Name = *req.Name
	}
	if req.Description != nil {
		promo.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, shared.NewDomainError("INVALID_PRICE", "Promotion price cannot be negative")
		}
		promo.Price = *req.Price
	}
	if req.StartDate != nil {
		promo.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		promo.EndDate = req.EndDate
	}
	if req.IsActive != nil {
		promo.IsActive = *req.IsActive
	}

	var newItems []promotion.PromotionItem
	if req.Items != nil {
		promo.Items = nil
		for _, item := range req.Items {
			if _, err := promo.AddItem(item.ProductID, item.Quantity); err != nil {
				return nil, err
			}
		}
		newItems = promo.Items
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if newItems != nil {
			if err := checkProductsExist(ctx, repos, newItems); err != nil {
				return err
			}
		}
		if err := repos.Promotions().Save(ctx, promo); err != nil {
			return err
		}
		if newItems != nil {
			return repos.Promotions().ReplaceItems(ctx, promo.ID, newItems)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.promoRepo.FindByID(ctx, promo.ID)
}

// Delete deletes a promotion
func (s *PromotionService) Delete(ctx context.Context, id uint) error {
	return s.promoRepo.Delete(ctx, id)
}

// ValidateAvailability runs the read-only fulfillment precondition
// check: the promotion exists, its window is open, and every bundle
// product has enough stock. No stock is mutated.
func (s *PromotionService) ValidateAvailability(ctx context.Context, id uint) (*AvailabilityResponse, error) {
	promo, err := s.promoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := promo.CheckWindow(s.now()); err != nil {
		return nil, err
	}
	for _, item := range promo.Items {
		if item.Product == nil {
			return nil, shared.NewDomainError("NOT_FOUND",
				fmt.Sprintf("Product with ID %d not found", item.ProductID))
		}
		if !item.Product.HasStock(item.Quantity) {
			return nil, shared.NewDomainError("INSUFFICIENT_STOCK",
				fmt.Sprintf("Insufficient stock for %s. Available: %d, Required: %d",
					item.Product.Name, item.Product.Stock, item.Quantity))
		}
	}
	return &AvailabilityResponse{Available: true, Promotion: promo}, nil
}

func checkProductsExist(ctx context.Context, repos TransactionalRepositories, items []promotion.PromotionItem) error {
	for _, item := range items {
		if _, err := repos.Products().FindByID(ctx, item.ProductID); err != nil {
			if err == shared.ErrNotFound {
				return shared.NewDomainError("NOT_FOUND",
					fmt.Sprintf("Product with ID %d not found", item.ProductID))
			}
			return err
		}
	}
	return nil
}
