package errors

import (
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// Data errors - empty or internally inconsistent commit sequences
	ErrorTypeData ErrorType = iota
	// Git errors - git subprocess or repository failures
	ErrorTypeGit
	// Config errors - missing or invalid configuration
	ErrorTypeConfig
	// Storage errors - database connection or query failures
	ErrorTypeStorage
)

// Error represents a structured error with a category
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error type
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

func typeString(t ErrorType) string {
	switch t {
	case ErrorTypeData:
		return "DATA"
	case ErrorTypeGit:
		return "GIT"
	case ErrorTypeConfig:
		return "CONFIG"
	case ErrorTypeStorage:
		return "STORAGE"
	default:
		return "UNKNOWN"
	}
}

// DetailedString returns the error prefixed with its category
func (e *Error) DetailedString() string {
	return fmt.Sprintf("[%s] %s", typeString(e.Type), e.Error())
}

// New creates a new error with the given type and message
func New(errType ErrorType, message string) *Error {
	return &Error{Type: errType, Message: message}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, errType ErrorType, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Type: errType, Message: message, Cause: err}
}

// Convenience constructors for common error types

// DataError creates a data error
func DataError(message string) *Error {
	return New(ErrorTypeData, message)
}

// DataErrorf creates a data error with formatting
func DataErrorf(format string, args ...interface{}) *Error {
	return New(ErrorTypeData, fmt.Sprintf(format, args...))
}

// GitError wraps a git subprocess error
func GitError(err error, message string) *Error {
	return Wrap(err, ErrorTypeGit, message)
}

// GitErrorf wraps a git subprocess error with formatting
func GitErrorf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, ErrorTypeGit, fmt.Sprintf(format, args...))
}

// ConfigError creates a configuration error
func ConfigError(message string) *Error {
	return New(ErrorTypeConfig, message)
}

// StorageError wraps a database error
func StorageError(err error, message string) *Error {
	return Wrap(err, ErrorTypeStorage, message)
}

// StorageErrorf wraps a database error with formatting
func StorageErrorf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, ErrorTypeStorage, fmt.Sprintf(format, args...))
}

// GetType returns the type of an error
func GetType(err error) ErrorType {
	if e, ok := err.(*Error); ok {
		return e.Type
	}
	return ErrorTypeGit
}
