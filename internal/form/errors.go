package form

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a form error
type ErrorType int

const (
	// ErrTypeInvalidField indicates a field name that is not declared in the configuration
	ErrTypeInvalidField ErrorType = iota
	// ErrTypeFieldType indicates a value whose Go type does not match the field's declared type
	ErrTypeFieldType
	// ErrTypeConfig indicates a malformed field configuration
	ErrTypeConfig
	// ErrTypeInvalid indicates a submit attempt while the form has validation errors
	ErrTypeInvalid
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeInvalidField:
		return "Invalid Field"
	case ErrTypeFieldType:
		return "Field Type Mismatch"
	case ErrTypeConfig:
		return "Configuration Error"
	case ErrTypeInvalid:
		return "Invalid Form"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is returned by form operations. Validation messages are never
// returned as errors; they are read through Form.Errors.
type Error struct {
	Type    ErrorType // Category of error
	Field   string    // Offending field name, if any
	Message string    // Human-readable error message
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field %q)", e.Type, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newInvalidFieldError(name string) *Error {
	return &Error{
		Type:    ErrTypeInvalidField,
		Field:   name,
		Message: "field is not declared in the form configuration",
	}
}

func newFieldTypeError(name string, want string, got any) *Error {
	return &Error{
		Type:    ErrTypeFieldType,
		Field:   name,
		Message: fmt.Sprintf("expected value of type %s, got %T", want, got),
	}
}

func newConfigError(name string, message string) *Error {
	return &Error{
		Type:    ErrTypeConfig,
		Field:   name,
		Message: message,
	}
}

func newInvalidError(count int) *Error {
	return &Error{
		Type:    ErrTypeInvalid,
		Message: fmt.Sprintf("form has %d field error(s)", count),
	}
}

func isType(err error, et ErrorType) bool {
	var formErr *Error
	if errors.As(err, &formErr) {
		return formErr.Type == et
	}
	return false
}

// IsInvalidFieldError checks if an error reports an undeclared field name
func IsInvalidFieldError(err error) bool {
	return isType(err, ErrTypeInvalidField)
}

// IsFieldTypeError checks if an error reports a value of the wrong type
func IsFieldTypeError(err error) bool {
	return isType(err, ErrTypeFieldType)
}

// IsConfigError checks if an error reports a malformed configuration
func IsConfigError(err error) bool {
	return isType(err, ErrTypeConfig)
}

// IsInvalidError checks if an error reports a blocked submission
func IsInvalidError(err error) bool {
	return isType(err, ErrTypeInvalid)
}
