package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation         = 4001
	CodeInvalidCredentials = 4010
	CodeTokenExpired       = 4011
	CodeForbidden          = 4030
	CodeNotOwner           = 4031
	CodeNotFound           = 4040
	CodeDuplicateEmail     = 4091
	CodeDuplicateSettle    = 4092
	CodeFarmlandUnverified = 4120
	CodeListingUnavailable = 4121
	CodePaymentSignature   = 4220

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrValidation is returned when request input fails field validation
	ErrValidation = errors.New("validation failed")

	// ErrInvalidRole is returned when a role is not one of farmer, company or admin
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidCredentials is returned for any failed login attempt.
	// The message is deliberately uniform so it cannot leak account existence.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized is returned when a session token is missing or invalid
	ErrUnauthorized = errors.New("missing or invalid session token")

	// ErrTokenExpired is returned when a session token is past its expiry
	ErrTokenExpired = errors.New("session token expired")

	// ErrForbidden is returned when the authenticated role is not allowed on a route
	ErrForbidden = errors.New("role not permitted for this operation")

	// ErrNotOwner is returned when a user mutates a record they do not own
	ErrNotOwner = errors.New("resource is owned by another user")

	// ErrAccountBlocked is returned when a blocked user attempts to log in
	ErrAccountBlocked = errors.New("account is blocked")

	// ErrDuplicateEmail is returned when registering an email that already exists
	ErrDuplicateEmail = errors.New("email is already registered")

	// ErrDuplicateSettlement is returned when a payment id has already settled
	ErrDuplicateSettlement = errors.New("payment has already been settled")

	// ErrFarmlandNotVerified is returned when listing against unverified farmland
	ErrFarmlandNotVerified = errors.New("farmland is not verified")

	// ErrListingUnavailable is returned when a listing is not active or lacks credits
	ErrListingUnavailable = errors.New("listing is not available for purchase")

	// ErrPaymentSignature is returned when the gateway signature does not match
	ErrPaymentSignature = errors.New("payment signature verification failed")

	// ErrRejectionReasonRequired is returned when rejecting farmland without a reason
	ErrRejectionReasonRequired = errors.New("rejection reason is required")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrFarmlandNotFound is returned when the requested farmland doesn't exist
	ErrFarmlandNotFound = errors.New("farmland not found")

	// ErrListingNotFound is returned when the requested listing doesn't exist
	ErrListingNotFound = errors.New("listing not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem reaching the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrRejectionReasonRequired):
		return CodeValidation
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrAccountBlocked):
		return CodeInvalidCredentials
	case errors.Is(err, ErrTokenExpired):
		return CodeTokenExpired
	case errors.Is(err, ErrNotOwner):
		return CodeNotOwner
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrDuplicateSettlement):
		return CodeDuplicateSettle
	case errors.Is(err, ErrFarmlandNotVerified):
		return CodeFarmlandUnverified
	case errors.Is(err, ErrListingUnavailable):
		return CodeListingUnavailable
	case errors.Is(err, ErrPaymentSignature):
		return CodePaymentSignature
	case IsNotFoundError(err):
		return CodeNotFound
	default:
		return CodeInternalServer
	}
}

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries field-level detail for a failed input validation.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// Is makes ValidationError match ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Add appends a field problem and returns the error for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

// HasErrors reports whether any field problem was recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	fields := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		fields = append(fields, f.Field)
	}
	return map[string]any{
		"error_type": "validation_error",
		"fields":     fields,
		"error_code": CodeValidation,
	}
}

// NewValidationError creates an empty validation error ready for Add calls.
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// SettlementError represents a failure while settling a verified payment.
type SettlementError struct {
	OrderID   string
	PaymentID string
	ListingID string
	Err       error
}

// Error implements the error interface for SettlementError
func (e *SettlementError) Error() string {
	return fmt.Sprintf("settlement failed for order %s (payment: %s, listing: %s): %v",
		e.OrderID, e.PaymentID, e.ListingID, e.Err)
}

// Unwrap returns the underlying error
func (e *SettlementError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *SettlementError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "settlement_error",
		"order_id":   e.OrderID,
		"payment_id": e.PaymentID,
		"listing_id": e.ListingID,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewSettlementError creates a detailed settlement error
func NewSettlementError(orderID, paymentID, listingID string, err error) error {
	return &SettlementError{
		OrderID:   orderID,
		PaymentID: paymentID,
		ListingID: listingID,
		Err:       err,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrFarmlandNotFound) ||
		errors.Is(err, ErrListingNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsValidationError checks if the error carries field-level validation detail
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnauthorizedError checks if the error should map to a 401 response
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrAccountBlocked)
}

// IsForbiddenError checks if the error should map to a 403 response
func IsForbiddenError(err error) bool {
	return errors.Is(err, ErrForbidden) || errors.Is(err, ErrNotOwner)
}

// IsConflictError checks if the error is a duplicate unique key condition
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateEmail) || errors.Is(err, ErrDuplicateSettlement)
}

// IsPreconditionError checks if the error is a state-eligibility failure
func IsPreconditionError(err error) bool {
	return errors.Is(err, ErrFarmlandNotVerified) || errors.Is(err, ErrListingUnavailable)
}
