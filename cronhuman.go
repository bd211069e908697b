// Package cronhuman parses, validates and explains cron expressions.
//
// This is the main package users should import. It re-exports all public
// types from the internal pkg/ packages for a clean API surface.
//
// Basic usage:
//
//	// Parse an expression into typed fields
//	expr, err := cronhuman.Parse("*/15 9-17 * * 1-5")
//	fmt.Println(expr.Minute.Values) // [0 15 30 45]
//
//	// Check validity without handling errors
//	result := cronhuman.Validate("0 25 * * *")
//	fmt.Println(result.Valid, result.Error)
//
//	// Describe it, or go the other way
//	text, _ := cronhuman.ToHuman("0 9 * * 1-5") // At 9:00 AM, Monday through Friday
//	spec, _ := cronhuman.FromHuman("every monday at 9am") // 0 9 * * 1
//
//	// List upcoming occurrences
//	executions, _ := cronhuman.NextExecutions("@daily", cronhuman.Count(3))
package cronhuman

import (
	"log/slog"
	"time"

	"github.com/jdziat/cronhuman/pkg/core"
	"github.com/jdziat/cronhuman/pkg/parser"
	"github.com/jdziat/cronhuman/pkg/schedule"
	"github.com/jdziat/cronhuman/pkg/security"
	"github.com/jdziat/cronhuman/pkg/translator"
)

// Type aliases
type (
	// Field identifies one positional component of an expression.
	Field = core.Field

	// Kind identifies which syntax form a field matched.
	Kind = core.Kind

	// Descriptor is the parsed form of one field.
	Descriptor = core.Descriptor

	// Expression is a fully parsed cron expression.
	Expression = core.Expression

	// ValidationResult is the non-failing outcome of Validate.
	ValidationResult = core.ValidationResult

	// CountError reports an expression with the wrong number of fields.
	CountError = core.CountError

	// FieldError reports a single field that failed to parse.
	FieldError = core.FieldError

	// ErrorClass groups errors by the kind of mistake in the input.
	ErrorClass = core.ErrorClass

	// Schedule defines when something would run next.
	Schedule = schedule.Schedule

	// CronSchedule is a Schedule built from a cron expression.
	CronSchedule = schedule.CronSchedule

	// Execution is one upcoming occurrence of an expression.
	Execution = schedule.Execution

	// Option modifies Options.
	Option = schedule.Option

	// Options holds configuration for occurrence calculation.
	Options = schedule.Options
)

// Field constants
const (
	Second  = core.Second
	Minute  = core.Minute
	Hour    = core.Hour
	Day     = core.Day
	Month   = core.Month
	Weekday = core.Weekday
)

// Kind constants
const (
	Wildcard = core.Wildcard
	Specific = core.Specific
	Range    = core.Range
	Step     = core.Step
	List     = core.List
)

// Error class constants
const (
	ClassUnknown    = core.ClassUnknown
	ClassStructural = core.ClassStructural
	ClassSyntax     = core.ClassSyntax
	ClassRange      = core.ClassRange
	ClassStep       = core.ClassStep
)

// Limits
const (
	MaxExpressionLength = security.MaxExpressionLength
	MaxPhraseLength     = security.MaxPhraseLength
	DefaultOccurrences  = security.DefaultOccurrences
	MaxOccurrences      = security.MaxOccurrences
	DefaultLayout       = schedule.DefaultLayout
)

// Error variables
var (
	ErrFieldCount          = core.ErrFieldCount
	ErrExpressionTooLong   = core.ErrExpressionTooLong
	ErrSyntax              = core.ErrSyntax
	ErrOutOfRange          = core.ErrOutOfRange
	ErrInvertedRange       = core.ErrInvertedRange
	ErrInvalidStep         = core.ErrInvalidStep
	ErrPhraseNotRecognized = core.ErrPhraseNotRecognized
	ErrPhraseTooLong       = core.ErrPhraseTooLong
	ErrNoOccurrence        = core.ErrNoOccurrence
)

// Parse parses a five- or six-field cron expression, or one of the @ aliases.
func Parse(expression string) (*Expression, error) {
	return parser.Parse(expression)
}

// ParseField parses one field's text against the bounds of f.
func ParseField(raw string, f Field) (Descriptor, error) {
	return parser.ParseField(raw, f)
}

// Validate reports whether expression parses. It never fails.
func Validate(expression string) ValidationResult {
	return parser.Validate(expression)
}

// Classify maps err onto the error taxonomy.
func Classify(err error) ErrorClass {
	return core.Classify(err)
}

// ExpandAlias returns the five-field expression an alias stands for.
func ExpandAlias(alias string) (string, bool) {
	return core.ExpandAlias(alias)
}

// DayName returns the short name for a weekday value; 0 and 7 are both Sun.
func DayName(v int) string {
	return core.DayName(v)
}

// MonthName returns the short name for a month value in [1,12].
func MonthName(v int) string {
	return core.MonthName(v)
}

// ToHuman describes a cron expression in English.
func ToHuman(expression string) (string, error) {
	return translator.ToHuman(expression)
}

// Describe renders an already parsed expression in English.
func Describe(expr *Expression) string {
	return translator.Describe(expr)
}

// FromHuman converts a simple English phrase into a cron expression.
func FromHuman(text string) (string, error) {
	return translator.FromHuman(text)
}

// Cron creates a schedule from a cron expression and panics if it is invalid.
func Cron(expression string) Schedule {
	return schedule.Cron(expression)
}

// NewCron creates a schedule from a cron expression.
func NewCron(expression string) (*CronSchedule, error) {
	return schedule.NewCron(expression)
}

// NextExecutions returns the upcoming occurrences of expression.
func NextExecutions(expression string, opts ...Option) ([]Execution, error) {
	return schedule.NextExecutions(expression, opts...)
}

// NextExecution returns the first upcoming occurrence of expression.
func NextExecution(expression string, opts ...Option) (Execution, error) {
	return schedule.NextExecution(expression, opts...)
}

// NewOptions creates Options with defaults.
func NewOptions() *Options {
	return schedule.NewOptions()
}

// SanitizeErrorMessage strips control characters before echoing to a terminal.
func SanitizeErrorMessage(msg string) string {
	return security.SanitizeErrorMessage(msg)
}

// Occurrence option functions

// Count sets how many occurrences to compute.
func Count(n int) Option {
	return schedule.Count(n)
}

// From sets the instant the search starts after.
func From(t time.Time) Option {
	return schedule.From(t)
}

// Layout sets the time layout used for Execution.Formatted.
func Layout(layout string) Option {
	return schedule.Layout(layout)
}

// WithLogger sets the logger used while computing occurrences.
func WithLogger(logger *slog.Logger) Option {
	return schedule.WithLogger(logger)
}
