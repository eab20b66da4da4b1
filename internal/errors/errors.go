package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller passed a negative or otherwise unusable value
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a table, entity or actor lookup missed
	CodeNotFound Code = "not_found"

	// CodeMalformedChain indicates a sub-table reference that does not resolve
	CodeMalformedChain Code = "malformed_chain"

	// CodeAlreadyExists indicates an attempt to create an actor that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodeInternal indicates internal system error
	CodeInternal Code = "internal"

	// CodeValidation indicates content or input failed validation
	CodeValidation Code = "validation"
)

// Error represents an application error with code and metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

func newError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func newErrorf(code Code, format string, args ...any) *Error {
	return newError(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context, keeping the code of a wrapped *Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if cairnErr, ok := as(err); ok {
		return &Error{
			Code:    cairnErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(cairnErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return newError(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return newErrorf(CodeNotFound, format, args...)
}

// MalformedChainf creates a formatted malformed chain error
func MalformedChainf(format string, args ...any) *Error {
	return newErrorf(CodeMalformedChain, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return newError(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return newErrorf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return newErrorf(CodeAlreadyExists, format, args...)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return newErrorf(CodeInternal, format, args...)
}

// Validation creates a validation error
func Validation(message string) *Error {
	return newError(CodeValidation, message)
}

// Validationf creates a formatted validation error
func Validationf(format string, args ...any) *Error {
	return newErrorf(CodeValidation, format, args...)
}

// as finds the *Error in err's chain
func as(err error) (*Error, bool) {
	var cairnErr *Error
	ok := errors.As(err, &cairnErr)
	return cairnErr, ok
}

func hasCode(err error, code Code) bool {
	return GetCode(err) == code
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsMalformedChain checks if the error is a malformed chain error
func IsMalformedChain(err error) bool {
	return hasCode(err, CodeMalformedChain)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return hasCode(err, CodeInvalidArgument)
}

// IsAlreadyExists checks if the error is an already exists error
func IsAlreadyExists(err error) bool {
	return hasCode(err, CodeAlreadyExists)
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

// GetCode returns the error code, or CodeUnknown for foreign errors
func GetCode(err error) Code {
	if cairnErr, ok := as(err); ok {
		return cairnErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	if cairnErr, ok := as(err); ok {
		return cairnErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
