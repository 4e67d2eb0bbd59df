package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountInactive    = errors.New("account is inactive")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// User and admin errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrAdminAlreadyExists = errors.New("admin with this email already exists")
	ErrAdminNotFound      = errors.New("admin not found")
)

// Fleet errors
var (
	ErrBusNumberExists     = errors.New("bus with this number already exists")
	ErrDriverLicenseExists = errors.New("driver with this license already exists")
	ErrRouteIDExists       = errors.New("route with this id already exists")
)

// Challan issuance errors
var (
	ErrChallanConfigInvalid  = errors.New("invalid maxChallan value")
	ErrChallanRollNoExists   = errors.New("challan with this roll number already exists")
	ErrChallanQuotaExceeded  = errors.New("maximum number of challans reached")
	ErrRouteQuotaExceeded    = errors.New("maximum number of challans reached for route")
	ErrChallanConfigExists   = errors.New("admin challan already exists")
	ErrChallanConfigNotFound = errors.New("no admin challan configuration found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError wrapping err with a user-facing message
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
