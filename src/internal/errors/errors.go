// Package errors provides domain-specific error types for hosts-concat.
//
// Every failure that the build pipeline reports through the error hook is an
// *Error carrying a code, so observers can tell an unreadable allow-list from
// an unwritable output file without matching on message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeConfig indicates a configuration-related error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeAllowList indicates the allow-list file could not be read.
	ErrCodeAllowList ErrorCode = "ALLOWLIST_ERROR"

	// ErrCodeScan indicates the input directory could not be listed.
	ErrCodeScan ErrorCode = "SCAN_ERROR"

	// ErrCodeRead indicates an input file could not be read.
	ErrCodeRead ErrorCode = "READ_ERROR"

	// ErrCodeWrite indicates the output file could not be written.
	ErrCodeWrite ErrorCode = "WRITE_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf returns the code of the first *Error in err's chain, or "" if there is none.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewAllowListError reports a failure to load the allow-list at path.
func NewAllowListError(path string, cause error) *Error {
	return Wrap(ErrCodeAllowList, fmt.Sprintf("failed to load file: %s", path), cause)
}

// NewScanError reports a failure to list the input directory.
func NewScanError(dir string, cause error) *Error {
	return Wrap(ErrCodeScan, fmt.Sprintf("failed to scan files from: %s", dir), cause)
}

// NewReadError reports a failure to read one input file.
func NewReadError(path string, cause error) *Error {
	return Wrap(ErrCodeRead, fmt.Sprintf("failed to read file data from: %s", path), cause)
}

// NewWriteError reports a failure to save the output file.
func NewWriteError(path string, cause error) *Error {
	return Wrap(ErrCodeWrite, fmt.Sprintf("failed to save output file to: %s", path), cause)
}
