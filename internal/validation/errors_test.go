package validation

import (
	"fmt"
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name        string
		errors      []FieldError
		expectError string
	}{
		{"No errors", []FieldError{}, "validation error"},
		{"Single error", []FieldError{{Field: "title", Message: "is required"}}, "validation error for field 'title': is required"},
		{"Multiple errors", []FieldError{
			{Field: "title", Message: "is required"},
			{Field: "due_date", Message: "is required"},
		}, "multiple validation errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			result := ve.Error()

			if tt.name == "Multiple errors" {
				if !strings.Contains(result, tt.expectError) {
					t.Errorf("ValidationError.Error() = %v, expected to contain %v", result, tt.expectError)
				}
			} else {
				if result != tt.expectError {
					t.Errorf("ValidationError.Error() = %v, expected %v", result, tt.expectError)
				}
			}
		})
	}
}

func TestValidationError_HasErrors(t *testing.T) {
	tests := []struct {
		name     string
		errors   []FieldError
		expected bool
	}{
		{"No errors", []FieldError{}, false},
		{"Has errors", []FieldError{{Field: "title", Message: "is required"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			if result := ve.HasErrors(); result != tt.expected {
				t.Errorf("ValidationError.HasErrors() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestValidationError_HasErrorType(t *testing.T) {
	ve := NewValidationError()
	ve.AddInvalidFormatError(FieldDueDate, "2024-13-01", DueDateFormat)

	if !ve.HasErrorType(ErrorTypeInvalidFormat) {
		t.Error("HasErrorType(invalid_format) should be true")
	}
	if ve.HasErrorType(ErrorTypeRequired) {
		t.Error("HasErrorType(required) should be false")
	}
}

func TestValidationError_AddHelpers(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError(FieldTitle)
	ve.AddInvalidFormatError(FieldDueDate, "tomorrow", DueDateFormat)

	if len(ve.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(ve.Errors))
	}

	expected := []struct {
		field     string
		errorType ValidationErrorType
		message   string
	}{
		{FieldTitle, ErrorTypeRequired, "title is required"},
		{FieldDueDate, ErrorTypeInvalidFormat, "due_date has invalid format, expected: YYYY-MM-DD"},
	}
	for i, want := range expected {
		got := ve.Errors[i]
		if got.Field != want.field || got.Type != want.errorType || got.Message != want.message {
			t.Errorf("Errors[%d] = %+v, want field=%s type=%s message=%q", i, got, want.field, want.errorType, want.message)
		}
	}
}

func TestValidationError_GetFieldErrors(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError(FieldTitle)
	ve.AddRequiredError(FieldDueDate)

	if got := ve.GetFieldErrors(FieldDueDate); len(got) != 1 {
		t.Errorf("GetFieldErrors(due_date) returned %d errors, want 1", len(got))
	}
	if got := ve.GetFieldErrors("missing"); len(got) != 0 {
		t.Errorf("GetFieldErrors(missing) returned %d errors, want 0", len(got))
	}
}

func TestAsValidationError(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError(FieldTitle)
	wrapped := fmt.Errorf("add task: %w", ve)

	got, ok := AsValidationError(wrapped)
	if !ok || got != ve {
		t.Error("AsValidationError should unwrap to the original ValidationError")
	}
	if !IsValidationError(wrapped) {
		t.Error("IsValidationError should be true for a wrapped ValidationError")
	}
	if IsValidationError(fmt.Errorf("plain")) {
		t.Error("IsValidationError should be false for plain errors")
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	empty := NewValidationError()
	if got := empty.GetUserFriendlyMessage(); got != "Input validation failed" {
		t.Errorf("GetUserFriendlyMessage() = %q", got)
	}

	single := NewValidationError()
	single.AddRequiredError(FieldTitle)
	if got := single.GetUserFriendlyMessage(); got != "title is required" {
		t.Errorf("GetUserFriendlyMessage() = %q", got)
	}

	multiple := NewValidationError()
	multiple.AddRequiredError(FieldTitle)
	multiple.AddRequiredError(FieldDueDate)
	got := multiple.GetUserFriendlyMessage()
	if !strings.HasPrefix(got, "Multiple validation errors occurred:") || !strings.Contains(got, "- due_date is required") {
		t.Errorf("GetUserFriendlyMessage() = %q", got)
	}
}
