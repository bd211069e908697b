// Package security provides input limits and sanitization for the cronhuman package.
package security

import (
	"strings"
	"unicode/utf8"

	"github.com/jdziat/cronhuman/pkg/core"
)

// Input limits and configuration
const (
	// MaxExpressionLength is the maximum length in bytes of a cron expression
	MaxExpressionLength = 1024

	// MaxPhraseLength is the maximum length in bytes of a natural language phrase
	MaxPhraseLength = 512

	// DefaultOccurrences is the number of occurrences listed when none is requested
	DefaultOccurrences = 5

	// MaxOccurrences is the hard limit for occurrences computed in one call
	MaxOccurrences = 1000

	// MaxErrorMessageLength is the maximum length for displayed error messages
	MaxErrorMessageLength = 4096
)

// ValidateExpression checks an expression against the input limits.
func ValidateExpression(expr string) error {
	if len(expr) > MaxExpressionLength {
		return core.ErrExpressionTooLong
	}
	return nil
}

// ValidatePhrase checks a natural language phrase against the input limits.
func ValidatePhrase(text string) error {
	if len(text) > MaxPhraseLength {
		return core.ErrPhraseTooLong
	}
	return nil
}

// SanitizeErrorMessage strips control characters and truncates messages
// before they are echoed to a terminal. Error messages quote user input.
func SanitizeErrorMessage(msg string) string {
	if msg == "" {
		return ""
	}

	// Remove any null bytes or control characters (except newlines)
	var sanitized strings.Builder
	sanitized.Grow(len(msg))

	for _, r := range msg {
		if r == '\n' || r == '\t' || (r >= 32 && r != 127) {
			sanitized.WriteRune(r)
		}
	}

	result := sanitized.String()

	if utf8.RuneCountInString(result) > MaxErrorMessageLength {
		runes := []rune(result)
		result = string(runes[:MaxErrorMessageLength-3]) + "..."
	}

	return result
}

// ClampCount ensures an occurrence count is within [1, MaxOccurrences].
func ClampCount(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxOccurrences {
		return MaxOccurrences
	}
	return n
}
