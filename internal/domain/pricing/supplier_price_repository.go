package pricing

import "context"

// SupplierPriceRepository defines the interface for supplier quote persistence
type SupplierPriceRepository interface {
	// FindByID finds a quote by its ID, with the supplier resolved
	FindByID(ctx context.Context, id uint) (*SupplierPrice, error)

	// FindAll returns all quotes, most recently updated first
	FindAll(ctx context.Context) ([]SupplierPrice, error)

	// FindBySupplier returns all quotes from one supplier
	FindBySupplier(ctx context.Context, supplierID uint) ([]SupplierPrice, error)

	// FindByProduct returns all quotes for one product
	FindByProduct(ctx context.Context, productID uint) ([]SupplierPrice, error)

	// FindBestPrices returns one entry per product: its minimum quote and
	// the quoting supplier, or nil fields for products without quotes
	FindBestPrices(ctx context.Context) ([]BestPrice, error)

	// Save creates or updates a quote
	Save(ctx context.Context, price *SupplierPrice) error

	// Delete deletes a quote
	Delete(ctx context.Context, id uint) error
}
