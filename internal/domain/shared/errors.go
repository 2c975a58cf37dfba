package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInsufficientStock   = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrInsufficientPayment = NewDomainError("INSUFFICIENT_PAYMENT", "Payment amount is less than the sale total")
	ErrPromotionInactive   = NewDomainError("PROMOTION_INACTIVE", "Promotion is not active")
	ErrPromotionNotStarted = NewDomainError("PROMOTION_NOT_STARTED", "Promotion has not started yet")
	ErrPromotionExpired    = NewDomainError("PROMOTION_EXPIRED", "Promotion has expired")
)
