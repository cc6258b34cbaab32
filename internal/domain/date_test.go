package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Date
		expectError bool
	}{
		{"Valid date", "2024-05-01", NewDate(2024, time.May, 1), false},
		{"Leap day", "2024-02-29", NewDate(2024, time.February, 29), false},
		{"Not a leap year", "2023-02-29", Date{}, true},
		{"Impossible day", "2024-02-30", Date{}, true},
		{"Month out of range", "2024-13-01", Date{}, true},
		{"Missing zero padding", "2024-5-1", Date{}, true},
		{"Wrong separator", "2024/05/01", Date{}, true},
		{"Time component", "2024-05-01T10:00:00", Date{}, true},
		{"Empty", "", Date{}, true},
		{"Text", "tomorrow", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, Date{}, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDate_String(t *testing.T) {
	assert.Equal(t, "2024-05-01", NewDate(2024, time.May, 1).String())
	assert.Equal(t, "0999-01-09", NewDate(999, time.January, 9).String())
}

func TestDate_ParseStringRoundTrip(t *testing.T) {
	for _, s := range []string{"2024-05-01", "1999-12-31", "2000-02-29"} {
		d, err := ParseDate(s)
		require.NoError(t, err)
		assert.Equal(t, s, d.String())
	}
}

func TestNewDate_Normalises(t *testing.T) {
	assert.Equal(t, NewDate(2024, time.March, 1), NewDate(2024, time.February, 30))
}

func TestDateOf_IgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2024, time.May, 1, 0, 0, 1, 0, time.UTC)
	evening := time.Date(2024, time.May, 1, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, DateOf(morning), DateOf(evening))
}

func TestDate_Compare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Date
		expected int
	}{
		{"Same date", NewDate(2024, time.May, 1), NewDate(2024, time.May, 1), 0},
		{"Earlier day", NewDate(2024, time.May, 1), NewDate(2024, time.May, 2), -1},
		{"Later month", NewDate(2024, time.June, 1), NewDate(2024, time.May, 31), 1},
		{"Earlier year", NewDate(2023, time.December, 31), NewDate(2024, time.January, 1), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.expected, tt.b.Compare(tt.a))
		})
	}
}
