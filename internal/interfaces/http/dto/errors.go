package dto

import (
	"net/http"
	"strings"
)

// General error codes
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
)

// Resource error codes
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
)

// Business rule error codes
const (
	ErrCodeInvalidInput        = "INVALID_INPUT"
	ErrCodeInsufficientStock   = "INSUFFICIENT_STOCK"
	ErrCodeInsufficientPayment = "INSUFFICIENT_PAYMENT"
	ErrCodePromotionInactive   = "PROMOTION_INACTIVE"
	ErrCodePromotionNotStarted = "PROMOTION_NOT_STARTED"
	ErrCodePromotionExpired    = "PROMOTION_EXPIRED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes. Business
// rule failures surface as 400; missing entities as 404.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeValidation: http.StatusBadRequest,
	ErrCodeBadRequest: http.StatusBadRequest,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,

	ErrCodeInvalidInput:        http.StatusBadRequest,
	ErrCodeInsufficientStock:   http.StatusBadRequest,
	ErrCodeInsufficientPayment: http.StatusBadRequest,
	ErrCodePromotionInactive:   http.StatusBadRequest,
	ErrCodePromotionNotStarted: http.StatusBadRequest,
	ErrCodePromotionExpired:    http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code. Domain
// validation codes (INVALID_*) map to 400; anything else unknown is a
// 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
