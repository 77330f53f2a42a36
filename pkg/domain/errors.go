package domain

import "fmt"

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Error codes
const (
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeInvalidQuotaState   = "INVALID_QUOTA_STATE"
	ErrCodeInsufficientCredits = "INSUFFICIENT_CREDITS"
	ErrCodeInvalidPricingInput = "INVALID_PRICING_INPUT"
	ErrCodeSourceUnavailable   = "SOURCE_UNAVAILABLE"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodeInternal            = "INTERNAL_ERROR"
	ErrCodeConflict            = "CONFLICT"
	ErrCodeBadRequest          = "BAD_REQUEST"
)

// Error constructors

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string) error {
	return &DomainError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError creates a new validation error
func NewValidationError(msg string) error {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// NewInvalidQuotaStateError creates an error for a nonsensical quota input
func NewInvalidQuotaStateError(msg string) error {
	return &DomainError{
		Code:    ErrCodeInvalidQuotaState,
		Message: msg,
	}
}

// NewInsufficientCreditsError creates an error for an exhausted credit balance
func NewInsufficientCreditsError(remaining int) error {
	return &DomainError{
		Code:    ErrCodeInsufficientCredits,
		Message: fmt.Sprintf("no consultation credits remaining (%d left). Please upgrade your plan.", remaining),
	}
}

// NewInvalidPricingInputError creates an error for invalid pricing inputs
func NewInvalidPricingInputError(msg string) error {
	return &DomainError{
		Code:    ErrCodeInvalidPricingInput,
		Message: msg,
	}
}

// NewSourceUnavailableError creates an error for a degraded best-effort fetch
func NewSourceUnavailableError(source string, err error) error {
	return &DomainError{
		Code:    ErrCodeSourceUnavailable,
		Message: fmt.Sprintf("data source %s unavailable", source),
		Err:     err,
	}
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError() error {
	return &DomainError{
		Code:    ErrCodeUnauthorized,
		Message: "Authentication required",
	}
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(msg string) error {
	return &DomainError{
		Code:    ErrCodeForbidden,
		Message: msg,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(err error) error {
	return &DomainError{
		Code:    ErrCodeInternal,
		Message: "An internal error occurred",
		Err:     err,
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(msg string) error {
	return &DomainError{
		Code:    ErrCodeConflict,
		Message: msg,
	}
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(msg string) error {
	return &DomainError{
		Code:    ErrCodeBadRequest,
		Message: msg,
	}
}

// Helper functions to check error types

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeNotFound
	}
	return false
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeValidation
	}
	return false
}

// IsInvalidQuotaState checks if the error is an invalid quota state error
func IsInvalidQuotaState(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeInvalidQuotaState
	}
	return false
}

// IsInsufficientCredits checks if the error is an insufficient credits error
func IsInsufficientCredits(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeInsufficientCredits
	}
	return false
}

// IsInvalidPricingInput checks if the error is an invalid pricing input error
func IsInvalidPricingInput(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeInvalidPricingInput
	}
	return false
}

// IsSourceUnavailable checks if the error is a source unavailable error
func IsSourceUnavailable(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeSourceUnavailable
	}
	return false
}

// IsUnauthorized checks if the error is an unauthorized error
func IsUnauthorized(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeUnauthorized
	}
	return false
}

// IsForbidden checks if the error is a forbidden error
func IsForbidden(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeForbidden
	}
	return false
}

// IsConflict checks if the error is a conflict error
func IsConflict(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeConflict
	}
	return false
}

// GetErrorCode extracts the error code from a domain error
func GetErrorCode(err error) string {
	if de, ok := err.(*DomainError); ok {
		return de.Code
	}
	return ErrCodeInternal
}
