package domain

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar layout used for parsing and rendering due dates.
const DateLayout = "2006-01-02"

// Date represents a calendar date without a time of day or time zone.
// The zero value is not a valid calendar date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate creates a Date, normalising out-of-range values the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string into a Date.
// Impossible dates such as 2024-02-30 are rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return compareInt(d.Year, other.Year)
	case d.Month != other.Month:
		return compareInt(int(d.Month), int(other.Month))
	default:
		return compareInt(d.Day, other.Day)
	}
}

// String renders the date in ISO calendar form (YYYY-MM-DD).
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
