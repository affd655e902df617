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

// ErrAlreadyFinal indicates a state transition was attempted on a leave request
// that already reached a terminal status (Approved or Denied).
var ErrAlreadyFinal = errors.New("leave request already finalized")

// ErrInsufficientBalance indicates an approval would drive an employee's
// leave balance below zero.
var ErrInsufficientBalance = errors.New("insufficient leave balance")

// AppError wraps lower-level failures (storage, commit) with an HTTP-ish code
// and a message safe to surface to callers.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given error.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
