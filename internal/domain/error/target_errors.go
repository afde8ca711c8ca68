// Package error defines domain-specific errors for the Savings Tracker application.
package error

import "errors"

// Target domain errors.
var (
	// ErrTargetNotFound is returned when a target is not found in the system.
	ErrTargetNotFound = errors.New("target not found")

	// ErrInvalidTargetPrice is returned when the target price is invalid (zero or negative).
	ErrInvalidTargetPrice = errors.New("invalid target price")

	// ErrInvalidDailyGoal is returned when the daily saving goal is invalid (zero or negative).
	ErrInvalidDailyGoal = errors.New("invalid daily goal")

	// ErrMissingTargetName is returned when the target name is blank.
	ErrMissingTargetName = errors.New("target name is required")
)

// TargetErrorCode defines error codes for target errors.
// Format: TGT-XXYYYY where XX is category and YYYY is specific error.
type TargetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTargetPrice TargetErrorCode = "TGT-010001"
	ErrCodeInvalidDailyGoal   TargetErrorCode = "TGT-010002"
	ErrCodeMissingTargetName  TargetErrorCode = "TGT-010003"
	ErrCodeTargetNotFound     TargetErrorCode = "TGT-010004"
)

// TargetError represents a target error with code and message.
type TargetError struct {
	Code    TargetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TargetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TargetError) Unwrap() error {
	return e.Err
}

// NewTargetError creates a new TargetError with the given code and message.
func NewTargetError(code TargetErrorCode, message string, err error) *TargetError {
	return &TargetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
