package validation

import (
	"strconv"
	"strings"

	"task-reminder/internal/domain"
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// IsValidCalendarDate checks if s parses as a YYYY-MM-DD calendar date
func (v *Validator) IsValidCalendarDate(s string) bool {
	_, err := domain.ParseDate(s)
	return err == nil
}

// ParsePosition parses a 1-based list position as shown to the user
// and returns the matching 0-based index. Positions below 1 are rejected.
func (v *Validator) ParsePosition(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}
