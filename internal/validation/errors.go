package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationErrorType represents the type of validation error
type ValidationErrorType string

const (
	ErrorTypeRequired      ValidationErrorType = "required"
	ErrorTypeInvalidFormat ValidationErrorType = "invalid_format"
)

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string
	Type    ValidationErrorType
	Message string
	Value   interface{}
}

// Error implements the error interface for FieldError
func (fe *FieldError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", fe.Field, fe.Message)
}

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError creates a new ValidationError
func NewValidationError() *ValidationError {
	return &ValidationError{
		Errors: make([]FieldError, 0),
	}
}

// Error implements the error interface for ValidationError
func (ve *ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "validation error"
	}

	if len(ve.Errors) == 1 {
		return ve.Errors[0].Error()
	}

	var messages []string
	for _, err := range ve.Errors {
		messages = append(messages, err.Error())
	}

	return fmt.Sprintf("multiple validation errors: %s", strings.Join(messages, "; "))
}

// IsValidationError checks if an error is, or wraps, a ValidationError
func IsValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}

// AsValidationError extracts a ValidationError from err's chain
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// HasErrors returns true if the ValidationError has any errors
func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// HasErrorType reports whether any field error has the given type
func (ve *ValidationError) HasErrorType(errorType ValidationErrorType) bool {
	for _, err := range ve.Errors {
		if err.Type == errorType {
			return true
		}
	}
	return false
}

// AddError adds a new field error to the validation error
func (ve *ValidationError) AddError(field string, errorType ValidationErrorType, message string, value interface{}) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Type:    errorType,
		Message: message,
		Value:   value,
	})
}

// AddRequiredError adds a required field error
func (ve *ValidationError) AddRequiredError(field string) {
	ve.AddError(field, ErrorTypeRequired, fmt.Sprintf("%s is required", field), nil)
}

// AddInvalidFormatError adds an invalid format error
func (ve *ValidationError) AddInvalidFormatError(field string, value interface{}, expectedFormat string) {
	message := fmt.Sprintf("%s has invalid format, expected: %s", field, expectedFormat)
	ve.AddError(field, ErrorTypeInvalidFormat, message, value)
}

// GetFieldErrors returns all errors for a specific field
func (ve *ValidationError) GetFieldErrors(field string) []FieldError {
	var fieldErrors []FieldError
	for _, err := range ve.Errors {
		if err.Field == field {
			fieldErrors = append(fieldErrors, err)
		}
	}
	return fieldErrors
}

// GetUserFriendlyMessage returns a user-friendly error message
func (ve *ValidationError) GetUserFriendlyMessage() string {
	if len(ve.Errors) == 0 {
		return "Input validation failed"
	}

	if len(ve.Errors) == 1 {
		return ve.Errors[0].Message
	}

	messages := make([]string, 0, len(ve.Errors))
	for _, err := range ve.Errors {
		messages = append(messages, fmt.Sprintf("- %s", err.Message))
	}
	return fmt.Sprintf("Multiple validation errors occurred:\n%s", strings.Join(messages, "\n"))
}
