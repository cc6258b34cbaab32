package cli

import (
	"fmt"

	"task-reminder/internal/errors"
	"task-reminder/internal/validation"
)

// ErrorHandler turns errors from the task API into messages for the user
type ErrorHandler struct {
	taskValidator *validation.TaskValidator
}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{
		taskValidator: validation.NewTaskValidator(),
	}
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return fmt.Errorf("%s", eh.taskValidator.UserMessage(validationErr))
	}

	if _, ok := errors.AsAppError(err); ok {
		userMessage := errors.GetUserMessage(err)
		return fmt.Errorf("%s", userMessage)
	}

	// Fallback for unknown errors
	return err
}

// IsUserError reports whether err was caused by user input rather than the program
func (eh *ErrorHandler) IsUserError(err error) bool {
	return !errors.ShouldLogError(err) || validation.IsValidationError(err)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
