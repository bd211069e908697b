package security

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jdziat/cronhuman/pkg/core"
)

func TestValidateExpression(t *testing.T) {
	assert.NoError(t, ValidateExpression("0 9 * * 1-5"))
	assert.NoError(t, ValidateExpression(strings.Repeat("1", MaxExpressionLength)))

	err := ValidateExpression(strings.Repeat("1", MaxExpressionLength+1))
	assert.True(t, errors.Is(err, core.ErrExpressionTooLong))
}

func TestValidatePhrase(t *testing.T) {
	assert.NoError(t, ValidatePhrase("every weekday at 9am"))

	err := ValidatePhrase(strings.Repeat("a", MaxPhraseLength+1))
	assert.True(t, errors.Is(err, core.ErrPhraseTooLong))
}

func TestSanitizeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal message",
			input:    `cron: invalid value "60" for field minute`,
			expected: `cron: invalid value "60" for field minute`,
		},
		{
			name:     "message with newlines",
			input:    "error on\nline 2",
			expected: "error on\nline 2",
		},
		{
			name:     "message with escape sequences",
			input:    "bad \x1b[31mred\x1b[0m input",
			expected: "bad [31mred[0m input",
		},
		{
			name:     "message with null bytes",
			input:    "error\x00with\x00nulls",
			expected: "errorwithnulls",
		},
		{
			name:     "empty message",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeErrorMessage(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSanitizeErrorMessage_Truncation(t *testing.T) {
	longMessage := strings.Repeat("a", 5000)
	result := SanitizeErrorMessage(longMessage)

	assert.LessOrEqual(t, len(result), MaxErrorMessageLength)
	assert.True(t, strings.HasSuffix(result, "..."))
}

func TestClampCount(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{-1, 1},
		{0, 1},
		{1, 1},
		{5, 5},
		{MaxOccurrences, MaxOccurrences},
		{MaxOccurrences + 1, MaxOccurrences},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClampCount(tt.input))
	}
}

func TestConstants(t *testing.T) {
	assert.Equal(t, 1024, MaxExpressionLength)
	assert.Equal(t, 512, MaxPhraseLength)
	assert.Equal(t, 5, DefaultOccurrences)
	assert.Equal(t, 1000, MaxOccurrences)
	assert.Equal(t, 4096, MaxErrorMessageLength)
}
