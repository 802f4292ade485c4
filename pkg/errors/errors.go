// Package errors provides structured error types for costdistance.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and library packages
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - SOURCE_*: the input raster could not be used
//   - SINK_*: the output raster could not be written
//   - INVALID_*: configuration validation failures
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "max_distance must be >= 0, got %d", v)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeSourceUnreadable, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input raster errors
	ErrCodeSourceNotFound   Code = "SOURCE_NOT_FOUND"
	ErrCodeSourceUnreadable Code = "SOURCE_UNREADABLE"

	// Output raster errors
	ErrCodeSinkFailed Code = "SINK_FAILED"

	// Validation errors
	ErrCodeInvalidConfig       Code = "INVALID_CONFIG"
	ErrCodeInvalidConnectivity Code = "INVALID_CONNECTIVITY"
	ErrCodeInvalidPath         Code = "INVALID_PATH"
	ErrCodeUnsupportedFormat   Code = "UNSUPPORTED_FORMAT"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns err without code prefixes. Causes are kept so that a
// decode failure still says which header field or cell was wrong.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + UserMessage(e.Cause)
}

// IsNoInput reports whether err means the input raster is unusable, either
// because it does not exist or because it could not be decoded.
func IsNoInput(err error) bool {
	code := GetCode(err)
	return code == ErrCodeSourceNotFound || code == ErrCodeSourceUnreadable
}
