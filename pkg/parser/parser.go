package parser

import (
	"strings"

	"github.com/jdziat/cronhuman/pkg/core"
	"github.com/jdziat/cronhuman/pkg/security"
)

// Parse parses a five- or six-field cron expression, or one of the @ aliases.
// It stops at the first invalid field and never returns a partial result.
func Parse(expression string) (*core.Expression, error) {
	if err := security.ValidateExpression(expression); err != nil {
		return nil, err
	}

	normalized := strings.TrimSpace(expression)
	if expanded, ok := core.ExpandAlias(normalized); ok {
		normalized = expanded
	}

	tokens := strings.Fields(normalized)
	fields := core.FieldsFor(len(tokens))
	if fields == nil {
		return nil, &core.CountError{Count: len(tokens)}
	}

	expr := &core.Expression{
		Original:   expression,
		FieldCount: len(tokens),
	}
	for i, token := range tokens {
		d, err := ParseField(token, fields[i])
		if err != nil {
			return nil, err
		}
		expr.Set(fields[i], d)
	}
	return expr, nil
}
