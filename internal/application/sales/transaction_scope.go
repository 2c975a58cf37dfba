package sales

import (
	"context"

	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/sales"
)

// TransactionScope provides transactional access to the repositories the
// sale workflow writes through. When a function executes within a scope,
// every repository operation joins the same database transaction and is
// committed or rolled back as one unit.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the sale workflow's
// repositories within a transaction. Products() hands out the locking
// surface: the workflow reads product rows under FOR UPDATE so the
// stock check and decrement stay serialized against concurrent sales.
type TransactionalRepositories interface {
	// Sales returns the sale repository scoped to the current transaction
	Sales() sales.SaleRepository

	// Items returns the ticket item repository scoped to the current transaction
	Items() sales.TicketItemRepository

	// Products returns the product locking surface scoped to the current transaction
	Products() catalog.ProductLocker
}
