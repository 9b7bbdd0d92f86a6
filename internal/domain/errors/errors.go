package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches errors with the same business code, so copies made by WithDetails compare equal.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return other.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"The submitted data is invalid",
		"",
	)

	ErrPhoneNotVerified = NewBaseError(
		http.StatusBadRequest,
		"PHONE_NOT_VERIFIED",
		"Verify your phone number before publishing offers",
		"",
	)

	// Authentication-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Please sign in to continue",
		"",
	)

	ErrSellerNotFound = NewBaseError(
		http.StatusUnauthorized,
		"SELLER_NOT_FOUND",
		"Seller account not found",
		"",
	)

	// Offer-related errors
	ErrOfferNotFound = NewBaseError(
		http.StatusNotFound,
		"OFFER_NOT_FOUND",
		"Offer not found or not available for this action",
		"",
	)

	ErrOfferNotAvailable = NewBaseError(
		http.StatusConflict,
		"OFFER_NOT_AVAILABLE",
		"This offer is no longer available",
		"",
	)

	ErrOfferStateChanged = NewBaseError(
		http.StatusConflict,
		"OFFER_STATE_CHANGED",
		"The offer changed while processing your request, please refresh",
		"",
	)

	ErrOfferNotRemovable = NewBaseError(
		http.StatusConflict,
		"OFFER_NOT_REMOVABLE",
		"Only available offers can be removed",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrNotificationForbidden = NewBaseError(
		http.StatusForbidden,
		"NOTIFICATION_FORBIDDEN",
		"You cannot access this notification",
		"",
	)

	// Rating-related errors
	ErrRatingNotAllowed = NewBaseError(
		http.StatusForbidden,
		"RATING_NOT_ALLOWED",
		"Only the buyer of a sold offer can rate it",
		"",
	)

	ErrRatingDuplicate = NewBaseError(
		http.StatusConflict,
		"RATING_DUPLICATE",
		"You have already rated this offer",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"SERVICE_UNAVAILABLE",
		"The service is temporarily unavailable, please try again",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong, please try again later",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Could not complete the request, please try again"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
