package errors

import (
	"net/http"

	"staffportal/internal/errors"
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
	if e.details != "" {
		return e.details + ": " + e.message
	}

	return e.message
}

// Is matches any BaseError with the same error code, so detailed copies still
// compare equal to the predefined errors.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode && t.httpCode == e.httpCode
}

// WrapMessage returns a copy carrying message as client-visible details, with a stack
func (e *BaseError) WrapMessage(message string) error {
	return errors.WithStack(e.WithDetails(message))
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
	// Authentication-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Please sign in to continue",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired access token",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrInvalidNotification = NewBaseError(
		http.StatusBadRequest,
		"INVALID_NOTIFICATION",
		"Notification type or priority is not supported",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	ErrDeviceHasCurrentAssignment = NewBaseError(
		http.StatusConflict,
		"DEVICE_HAS_CURRENT_ASSIGNMENT",
		"Cannot delete a device that is currently assigned. Please unassign it first.",
		"",
	)

	ErrDeviceRetired = NewBaseError(
		http.StatusConflict,
		"DEVICE_RETIRED",
		"A retired device cannot be assigned",
		"",
	)

	ErrInvalidDeviceStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DEVICE_STATUS",
		"Device status is not valid for this operation",
		"",
	)

	ErrDuplicateSerialNumber = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_SERIAL_NUMBER",
		"A device with this serial number already exists",
		"",
	)

	ErrConcurrentAssignment = NewBaseError(
		http.StatusConflict,
		"CONCURRENT_ASSIGNMENT",
		"The device was reassigned by someone else, please reload",
		"",
	)

	// Staff-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Staff member not found",
		"",
	)

	// Admin view errors
	ErrAssetIssueNotFound = NewBaseError(
		http.StatusNotFound,
		"ASSET_ISSUE_NOT_FOUND",
		"Asset issue not found",
		"",
	)

	ErrFeedbackNotFound = NewBaseError(
		http.StatusNotFound,
		"FEEDBACK_NOT_FOUND",
		"Feedback not found",
		"",
	)

	ErrInvalidFeedbackStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FEEDBACK_STATUS",
		"Feedback status is not valid",
		"",
	)

	// Documentation errors
	ErrDocumentationNotFound = NewBaseError(
		http.StatusNotFound,
		"DOCUMENTATION_NOT_FOUND",
		"Documentation not found",
		"",
	)

	ErrInvalidDocumentationFilter = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DOCUMENTATION_FILTER",
		"Documentation status must be all, published or draft",
		"",
	)

	// Push registration errors
	ErrPushRegistrationNotFound = NewBaseError(
		http.StatusNotFound,
		"PUSH_REGISTRATION_NOT_FOUND",
		"Push registration not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
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
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
