package ledger

import "context"

// MovementRepository defines the interface for movement persistence
type MovementRepository interface {
	// FindByID finds a movement by its ID with product and supplier resolved
	FindByID(ctx context.Context, id uint) (*Movement, error)

	// FindAll returns all movements, newest first
	FindAll(ctx context.Context) ([]Movement, error)

	// FindByProduct returns the movements touching one product, newest first
	FindByProduct(ctx context.Context, productID uint) ([]Movement, error)

	// Save creates or updates a movement
	Save(ctx context.Context, movement *Movement) error

	// Delete deletes a movement
	Delete(ctx context.Context, id uint) error
}

// StateRepository defines the interface for business state persistence.
// AdjustBalance is the only sanctioned write path for the singleton
// balance row; it must serialize concurrent adjustments.
type StateRepository interface {
	// FindByID finds a state row by its ID
	FindByID(ctx context.Context, id uint) (*BusinessState, error)

	// FindAll returns all state rows, most recent date first
	FindAll(ctx context.Context) ([]BusinessState, error)

	// FindLatest returns the state row with the most recent date
	FindLatest(ctx context.Context) (*BusinessState, error)

	// AdjustBalance applies fn to the state row with the given ID while
	// holding a row lock, then persists the result
	AdjustBalance(ctx context.Context, id uint, fn func(*BusinessState) error) (*BusinessState, error)

	// Save creates or updates a state row
	Save(ctx context.Context, state *BusinessState) error

	// Delete deletes a state row
	Delete(ctx context.Context, id uint) error
}
