package partner

import (
	"time"

	"github.com/retail/backend/internal/domain/shared"
)

// Supplier represents a product supplier. Contact fields are optional;
// the supplier lifecycle is independent of the products it quotes.
type Supplier struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	ContactName string    `gorm:"type:varchar(200)" json:"contact_name,omitempty"`
	Phone       string    `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Email       string    `gorm:"type:varchar(200)" json:"email,omitempty"`
	Address     string    `gorm:"type:varchar(300)" json:"address,omitempty"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier
func NewSupplier(name string) (*Supplier, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Supplier name cannot exceed 200 characters")
	}
	return &Supplier{Name: name, CreatedAt: time.Now()}, nil
}

// Rename changes the supplier name, enforcing the same constraints as
// NewSupplier.
func (s *Supplier) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot exceed 200 characters")
	}
	s.Name = name
	return nil
}
