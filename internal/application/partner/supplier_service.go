package partner

import (
	"context"

	"github.com/retail/backend/internal/domain/partner"
)

// CreateSupplierRequest creates a supplier. Only the name is required.
type CreateSupplierRequest struct {
	Name        string `json:"name"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Notes       string `json:"notes"`
}

// UpdateSupplierRequest applies a partial update to a supplier.
type UpdateSupplierRequest struct {
	Name        *string `json:"name"`
	ContactName *string `json:"contact_name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	Notes       *string `json:"notes"`
}

// SupplierService handles supplier business operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) (*partner.Supplier, error) {
	supplier, err := partner.NewSupplier(req.Name)
	if err != nil {
		return nil, err
	}
	supplier.ContactName = req.ContactName
	supplier.Phone = req.Phone
	supplier.Email = req.Email
	supplier.Address = req.Address
	supplier.Notes = req.Notes

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, id uint) (*partner.Supplier, error) {
	return s.supplierRepo.FindByID(ctx, id)
}

// GetAll retrieves all suppliers
func (s *SupplierService) GetAll(ctx context.Context) ([]partner.Supplier, error) {
	return s.supplierRepo.FindAll(ctx)
}

// Update applies a partial update to a supplier
func (s *SupplierService) Update(ctx context.Context, id uint, req UpdateSupplierRequest) (*partner.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := supplier.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.ContactName != nil {
		supplier.ContactName = *req.ContactName
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if req.Notes != nil {
		supplier.Notes = *req.Notes
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Delete deletes a supplier
func (s *SupplierService) Delete(ctx context.Context, id uint) error {
	return s.supplierRepo.Delete(ctx, id)
}
