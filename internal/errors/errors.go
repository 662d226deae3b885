// Package errors provides structured error handling for the chlog CLI.
// Errors carry a category that maps to the tool's failure taxonomy and
// optional remediation guidance shown to the user.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory represents the type of error that occurred.
type ErrorCategory int

const (
	// NotFound errors occur when a file, version key, or required
	// structure is missing (e.g. no CHANGELOG.md, unknown version).
	NotFound ErrorCategory = iota
	// InvalidInput errors are caused by bad user input: unrecognized
	// categories, non-semver versions, v-prefixed version arguments.
	InvalidInput
	// InvalidData errors indicate a changelog file the parser rejects.
	InvalidData
	// Runtime errors cover subprocess, editor, and repository failures.
	Runtime
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case NotFound:
		return "Not Found"
	case InvalidInput:
		return "Invalid Input"
	case InvalidData:
		return "Invalid Data"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	// Category is the type of error (NotFound, InvalidInput, etc.)
	Category ErrorCategory
	// Message is a human-readable description of what went wrong.
	Message string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// NewNotFoundError creates a new NotFound error.
func NewNotFoundError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: NotFound, Message: message, Remediation: remediation}
}

// NewInvalidInputError creates a new InvalidInput error.
func NewInvalidInputError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: InvalidInput, Message: message, Remediation: remediation}
}

// NewInvalidDataError creates a new InvalidData error.
func NewInvalidDataError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: InvalidData, Message: message, Remediation: remediation}
}

// NewRuntimeError creates a new Runtime error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Runtime, Message: message, Remediation: remediation}
}

// Wrap wraps an existing error with a CLIError, preserving the original message.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{Category: category, Message: err.Error(), Remediation: remediation}
}

// WrapWithMessage wraps an error with a custom message and category.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Remediation: remediation,
	}
}

// AsCLIError attempts to convert an error to a CLIError.
// Returns nil if the error is not a CLIError.
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}

// HasCategory reports whether err is a CLIError with the given category.
func HasCategory(err error, category ErrorCategory) bool {
	cliErr := AsCLIError(err)
	return cliErr != nil && cliErr.Category == category
}
