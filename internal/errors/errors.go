package errors

import (
	"errors"
	"fmt"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewNoSelectionError creates an error for an action that needs a selected task
func NewNoSelectionError(action string) *AppError {
	return &AppError{
		Type:    ErrorTypeNoSelection,
		Message: fmt.Sprintf("Select a task to %s.", action),
		Code:    "NO_SELECTION",
		Context: map[string]interface{}{
			"action": action,
		},
	}
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(source string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfiguration,
		Message: fmt.Sprintf("invalid configuration from %s", source),
		Code:    "CONFIGURATION_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"source": source,
		},
	}
}

// NewTerminalError creates a new terminal error
func NewTerminalError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeTerminal,
		Message: fmt.Sprintf("terminal operation failed: %s", operation),
		Code:    "TERMINAL_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeInvalidInput, ErrorTypeNoSelection:
			return appErr.Message
		case ErrorTypeConfiguration:
			if appErr.Cause != nil {
				return fmt.Sprintf("%s: %v", appErr.Message, appErr.Cause)
			}
			return appErr.Message
		case ErrorTypeTerminal:
			return "The terminal could not be used. Try the line-mode shell instead."
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeInvalidInput, ErrorTypeNoSelection:
			return false // user errors
		default:
			return true
		}
	}
	return true
}
