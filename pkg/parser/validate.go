package parser

import (
	"errors"

	"github.com/jdziat/cronhuman/pkg/core"
)

// Validate reports whether expression parses. It never fails; the error
// message and the offending field, if any, are carried in the result.
func Validate(expression string) core.ValidationResult {
	if _, err := Parse(expression); err != nil {
		result := core.ValidationResult{Valid: false, Error: err.Error()}
		var fieldErr *core.FieldError
		if errors.As(err, &fieldErr) {
			result.Field = fieldErr.Field.String()
		}
		return result
	}
	return core.ValidationResult{Valid: true}
}
