package catalog

import "context"

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uint) (*Product, error)

	// FindAll returns all products, newest first
	FindAll(ctx context.Context) ([]Product, error)

	// FindByIDs finds multiple products by their IDs
	FindByIDs(ctx context.Context, ids []uint) ([]Product, error)

	// FindLowStock returns products with stock below threshold,
	// ordered by stock ascending then name ascending
	FindLowStock(ctx context.Context, threshold int) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product
	Delete(ctx context.Context, id uint) error
}

// ProductLocker is the narrow surface transactional workflows use to
// check and mutate stock. FindByIDForUpdate must hold the product row
// until the surrounding transaction ends, so the stock-sufficiency
// check and the decrement are serialized against concurrent sales.
type ProductLocker interface {
	// FindByIDForUpdate finds a product by ID while holding a row lock
	FindByIDForUpdate(ctx context.Context, id uint) (*Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error
}
