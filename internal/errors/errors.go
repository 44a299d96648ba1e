package errors

import (
	"fmt"
)

// StrfindError is the structured error type for strfind.
// It provides context for error handling, logging, and user presentation.
type StrfindError struct {
	// Code is the unique error code (e.g., "ERR_201_FILE_NOT_FOUND").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Validation, Internal).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *StrfindError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *StrfindError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with StrfindError.
func (e *StrfindError) Is(target error) bool {
	if t, ok := target.(*StrfindError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *StrfindError) WithDetail(key, value string) *StrfindError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
// Returns the error for method chaining.
func (e *StrfindError) WithSuggestion(suggestion string) *StrfindError {
	e.Suggestion = suggestion
	return e
}

// New creates a new StrfindError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *StrfindError {
	return &StrfindError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a StrfindError from an existing error.
// The error's message becomes the StrfindError message.
func Wrap(code string, err error) *StrfindError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *StrfindError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// IOError creates an I/O-related error.
func IOError(message string, cause error) *StrfindError {
	return New(ErrCodeFileNotFound, message, cause)
}

// ValidationError creates a validation-related error.
func ValidationError(message string, cause error) *StrfindError {
	return New(ErrCodeInvalidInput, message, cause)
}

// IsFatal checks if an error has fatal severity.
// Fatal errors should abort the current operation.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	if se, ok := err.(*StrfindError); ok {
		return se.Severity == SeverityFatal
	}
	return false
}

// GetCode extracts the error code from a StrfindError.
// Returns empty string if not a StrfindError.
func GetCode(err error) string {
	if se, ok := err.(*StrfindError); ok {
		return se.Code
	}
	return ""
}
