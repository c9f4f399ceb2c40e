package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller has no valid authenticated session.
var ErrUnauthorized = errors.New("unauthorized")

// AppError carries an HTTP-style status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// RateSlabNotFoundError is returned when no slab matches the requested chart and slab ids.
// It matches ErrNotFound with errors.Is.
type RateSlabNotFoundError struct {
	ChartID int64
	SlabID  int64
}

func (e *RateSlabNotFoundError) Error() string {
	return fmt.Sprintf("interest rate chart slab with identifier %d does not exist for chart %d", e.SlabID, e.ChartID)
}

func (e *RateSlabNotFoundError) Unwrap() error {
	return ErrNotFound
}
