package validation

import (
	"task-reminder/internal/domain"
)

const (
	FieldTitle   = "title"
	FieldDueDate = "due_date"

	// DueDateFormat is the layout users are asked to type.
	DueDateFormat = "YYYY-MM-DD"
)

// User-facing messages for rejected task input.
const (
	MessageFieldsRequired = "Both fields are required."
	MessageInvalidDueDate = "Please enter a valid date (yyyy-mm-dd)."
)

// TaskInput is validated, cleaned input ready for task construction.
type TaskInput struct {
	Title   string
	DueDate domain.Date
}

// TaskValidator provides validation for task input coming from a front-end
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTitle validates a task title. Only emptiness is checked.
func (tv *TaskValidator) ValidateTitle(title string) error {
	if !tv.validator.IsNonEmptyString(title) {
		validationError := NewValidationError()
		validationError.AddRequiredError(FieldTitle)
		return validationError
	}
	return nil
}

// ValidateDueDate validates a due date string
func (tv *TaskValidator) ValidateDueDate(dueDate string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(dueDate)
	if trimmed == "" {
		validationError.AddRequiredError(FieldDueDate)
		return validationError
	}

	if !tv.validator.IsValidCalendarDate(trimmed) {
		validationError.AddInvalidFormatError(FieldDueDate, trimmed, DueDateFormat)
		return validationError
	}

	return nil
}

// ValidateTaskInput validates both fields and collects every failure
func (tv *TaskValidator) ValidateTaskInput(title, dueDate string) error {
	validationError := NewValidationError()

	for _, err := range []error{tv.ValidateTitle(title), tv.ValidateDueDate(dueDate)} {
		if fieldErr, ok := AsValidationError(err); ok {
			validationError.Errors = append(validationError.Errors, fieldErr.Errors...)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// GetValidTaskInput returns cleaned task input if both fields are valid
func (tv *TaskValidator) GetValidTaskInput(title, dueDate string) (TaskInput, error) {
	if err := tv.ValidateTaskInput(title, dueDate); err != nil {
		return TaskInput{}, err
	}

	due, err := domain.ParseDate(tv.validator.TrimAndValidateString(dueDate))
	if err != nil {
		return TaskInput{}, err
	}

	return TaskInput{
		Title:   tv.validator.TrimAndValidateString(title),
		DueDate: due,
	}, nil
}

// UserMessage maps a task input validation failure to the message shown to the user.
// Missing fields take precedence over a malformed date.
func (tv *TaskValidator) UserMessage(err error) string {
	validationError, ok := AsValidationError(err)
	if !ok {
		return err.Error()
	}
	switch {
	case validationError.HasErrorType(ErrorTypeRequired):
		return MessageFieldsRequired
	case len(validationError.GetFieldErrors(FieldDueDate)) > 0:
		return MessageInvalidDueDate
	default:
		return validationError.GetUserFriendlyMessage()
	}
}
