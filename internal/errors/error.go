package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig  Category = "config"
	CategoryCatalog Category = "catalog"
	CategoryForm    Category = "form"
	CategoryCLI     Category = "cli"
)

// FieldkitError is a structured error with a code, an explanation and a hint.
type FieldkitError struct {
	// Code is a unique error identifier (e.g., "F001").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *FieldkitError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *FieldkitError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a FieldkitError with the same code.
func (e *FieldkitError) Is(target error) bool {
	t, ok := target.(*FieldkitError)
	if !ok || t.Code == "" {
		return false
	}
	return e.Code == t.Code
}

// WithSuggestion adds a fix suggestion to the error.
func (e *FieldkitError) WithSuggestion(s string) *FieldkitError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *FieldkitError) WithDetail(d string) *FieldkitError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *FieldkitError) Wrap(err error) *FieldkitError {
	e.Wrapped = err
	return e
}

// New creates a FieldkitError from a registered error code.
func New(code string) *FieldkitError {
	template, ok := registry[code]
	if !ok {
		return &FieldkitError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &FieldkitError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new FieldkitError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *FieldkitError {
	return &FieldkitError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a FieldkitError.
// Errors that already are (or wrap) a FieldkitError are returned as is.
func FromError(err error, code string) *FieldkitError {
	if err == nil {
		return nil
	}
	var fe *FieldkitError
	if stderrors.As(err, &fe) {
		return fe
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err is or wraps a FieldkitError with the given code.
func HasCode(err error, code string) bool {
	return stderrors.Is(err, &FieldkitError{Code: code})
}
