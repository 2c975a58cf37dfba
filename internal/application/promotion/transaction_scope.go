package promotion

import (
	"context"

	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/promotion"
)

// TransactionScope provides transactional access to the repositories the
// promotion definition workflows write through. Creating or updating a
// promotion replaces its full item set, and each item's product must
// exist; the whole exchange commits or rolls back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the promotion workflow's
// repositories within a transaction.
type TransactionalRepositories interface {
	// Promotions returns the promotion repository scoped to the current transaction
	Promotions() promotion.PromotionRepository

	// Products returns the product repository scoped to the current transaction
	Products() catalog.ProductRepository
}
