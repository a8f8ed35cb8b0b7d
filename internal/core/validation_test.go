package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "single word", input: "Alice", expected: true},
		{name: "words with spaces", input: "Alice Smith", expected: true},
		{name: "tab inside", input: "Alice\tSmith", expected: true},
		{name: "digits", input: "Alice123", expected: false},
		{name: "symbol", input: "\U0001F4B0Bob", expected: false},
		{name: "punctuation", input: "O'Brien", expected: false},
		{name: "accented letter", input: "Zoë", expected: false},
		{name: "empty", input: "", expected: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.expected, IsValidName(tt.input))
		})
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		amount        string
		expected      string
		expectedError bool
	}{
		{
			name:     "whole_number",
			amount:   "999",
			expected: "999",
		},
		{
			name:     "decimal_with_two_places",
			amount:   "13.22",
			expected: "13.22",
		},
		{
			name:     "small_amount",
			amount:   "0.01",
			expected: "0.01",
		},
		{
			name:     "amount_with_spaces",
			amount:   "  100.50  ",
			expected: "100.5",
		},
		{
			name:     "exponent_notation",
			amount:   "1e3",
			expected: "1000",
		},
		{
			name:          "zero",
			amount:        "0",
			expectedError: true,
		},
		{
			name:          "empty_string",
			amount:        "",
			expectedError: true,
		},
		{
			name:          "invalid_format",
			amount:        "non-numeric",
			expectedError: true,
		},
		{
			name:          "negative_amount",
			amount:        "-10.50",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := ParseAmount(tt.amount)
			require.Equal(t, !tt.expectedError, IsValidAmount(tt.amount))

			if tt.expectedError {
				require.ErrorIs(t, err, ErrInvalidAmount)
				return
			}

			require.NoError(t, err)
			requireBalance(t, tt.expected, result)
		})
	}
}
