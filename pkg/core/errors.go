package core

import (
	"errors"
	"fmt"
)

// Structural errors
var (
	ErrFieldCount        = errors.New("cron: invalid expression: expected 5 or 6 fields")
	ErrExpressionTooLong = errors.New("cron: expression too long")
)

// Field errors
var (
	ErrSyntax        = errors.New("cron: not a number")
	ErrOutOfRange    = errors.New("cron: value out of bounds")
	ErrInvertedRange = errors.New("cron: range start exceeds end")
	ErrInvalidStep   = errors.New("cron: step must be a positive integer")
)

// Translator and calculator errors
var (
	ErrPhraseNotRecognized = errors.New("cron: could not parse natural language input")
	ErrPhraseTooLong       = errors.New("cron: natural language input too long")
	ErrNoOccurrence        = errors.New("cron: no upcoming occurrence")
)

// CountError reports an expression with the wrong number of fields.
type CountError struct {
	Count int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("cron: invalid expression: expected 5 or 6 fields, got %d", e.Count)
}

func (e *CountError) Unwrap() error {
	return ErrFieldCount
}

// Form names the syntax form a field error was raised from.
type Form string

const (
	FormValue Form = "value"
	FormRange Form = "range"
	FormStep  Form = "step"
)

// FieldError reports a single field that failed to parse.
type FieldError struct {
	Field  Field
	Raw    string // offending substring
	Form   Form
	Detail string
	Err    error
}

func (e *FieldError) Error() string {
	msg := fmt.Sprintf("cron: invalid %s %q for field %s", e.Form, e.Raw, e.Field)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ErrorClass groups errors by the kind of mistake in the input.
type ErrorClass int

const (
	ClassUnknown ErrorClass = iota
	ClassStructural
	ClassSyntax
	ClassRange
	ClassStep
)

func (c ErrorClass) String() string {
	switch c {
	case ClassStructural:
		return "structural"
	case ClassSyntax:
		return "syntax"
	case ClassRange:
		return "range"
	case ClassStep:
		return "step"
	}
	return "unknown"
}

// Classify maps err onto the error taxonomy.
func Classify(err error) ErrorClass {
	switch {
	case err == nil:
		return ClassUnknown
	case errors.Is(err, ErrFieldCount), errors.Is(err, ErrExpressionTooLong):
		return ClassStructural
	case errors.Is(err, ErrSyntax):
		return ClassSyntax
	case errors.Is(err, ErrOutOfRange), errors.Is(err, ErrInvertedRange):
		return ClassRange
	case errors.Is(err, ErrInvalidStep):
		return ClassStep
	}
	return ClassUnknown
}
