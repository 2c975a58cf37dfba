package persistence

import (
	"context"

	apppromo "github.com/retail/backend/internal/application/promotion"
	appsales "github.com/retail/backend/internal/application/sales"
	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/promotion"
	"github.com/retail/backend/internal/domain/sales"
	"gorm.io/gorm"
)

// GormSaleTransactionScope implements the sale workflow's TransactionScope
// using GORM transactions.
type GormSaleTransactionScope struct {
	db *gorm.DB
}

// NewGormSaleTransactionScope creates a new GormSaleTransactionScope
func NewGormSaleTransactionScope(db *gorm.DB) *GormSaleTransactionScope {
	return &GormSaleTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormSaleTransactionScope) Execute(ctx context.Context, fn func(repos appsales.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&saleTransactionalRepositories{tx: tx})
	})
}

type saleTransactionalRepositories struct {
	tx *gorm.DB
}

// Sales returns the sale repository scoped to the current transaction
func (r *saleTransactionalRepositories) Sales() sales.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

// Items returns the ticket item repository scoped to the current transaction
func (r *saleTransactionalRepositories) Items() sales.TicketItemRepository {
	return NewGormTicketItemRepository(r.tx)
}

// Products returns the product locking surface scoped to the current transaction
func (r *saleTransactionalRepositories) Products() catalog.ProductLocker {
	return NewGormProductRepository(r.tx)
}

// GormPromotionTransactionScope implements the promotion workflow's
// TransactionScope using GORM transactions.
type GormPromotionTransactionScope struct {
	db *gorm.DB
}

// NewGormPromotionTransactionScope creates a new GormPromotionTransactionScope
func NewGormPromotionTransactionScope(db *gorm.DB) *GormPromotionTransactionScope {
	return &GormPromotionTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormPromotionTransactionScope) Execute(ctx context.Context, fn func(repos apppromo.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&promotionTransactionalRepositories{tx: tx})
	})
}

type promotionTransactionalRepositories struct {
	tx *gorm.DB
}

// Promotions returns the promotion repository scoped to the current transaction
func (r *promotionTransactionalRepositories) Promotions() promotion.PromotionRepository {
	return NewGormPromotionRepository(r.tx)
}

// Products returns the product repository scoped to the current transaction
func (r *promotionTransactionalRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

var (
	_ appsales.TransactionScope          = (*GormSaleTransactionScope)(nil)
	_ appsales.TransactionalRepositories = (*saleTransactionalRepositories)(nil)
	_ apppromo.TransactionScope          = (*GormPromotionTransactionScope)(nil)
	_ apppromo.TransactionalRepositories = (*promotionTransactionalRepositories)(nil)
)
