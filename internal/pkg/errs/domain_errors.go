package errs

import "errors"

// Domain-specific sentinel errors shared by the command and query layers
var (
	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")

	// Event reference errors
	ErrEventNotFound = errors.New("event not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
