package common

import (
	"fmt"
	"strings"
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the result of validating an input struct. It matches
// ErrorValidation under errors.Is, so callers can branch on the kind
// without inspecting individual fields.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e FieldErrors) Unwrap() error {
	return ErrorValidation
}

// Add appends a field error and returns the updated list.
func (e FieldErrors) Add(field, message string) FieldErrors {
	return append(e, FieldError{Field: field, Message: message})
}

// OrNil returns the list as an error, or nil if no fields failed.
func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
