package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Product errors
	ErrProductNotFound     = errors.New("product not found")
	ErrProductNotAvailable = errors.New("product not available")

	// Order errors
	ErrOrderNotFound         = errors.New("order not found")
	ErrDatesUnavailable      = errors.New("requested dates unavailable")
	ErrInvalidRentalDates    = errors.New("invalid rental dates")
	ErrAddressNotServiceable = errors.New("address not serviceable")

	// Review errors
	ErrReviewNotFound  = errors.New("review not found")
	ErrDuplicateReview = errors.New("duplicate review")

	// Validation errors
	ErrDomainValidation       = errors.New("domain validation error")
	ErrDomainValidationFailed = errors.New("domain validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
