// Package core provides the domain models for the cronhuman package.
package core

// Field identifies one positional component of a cron expression.
type Field int

const (
	Second Field = iota
	Minute
	Hour
	Day
	Month
	Weekday
)

type bounds struct {
	min, max int
}

// fieldBounds is indexed by Field. Weekday allows 7 as a second Sunday.
var fieldBounds = [...]bounds{
	Second:  {0, 59},
	Minute:  {0, 59},
	Hour:    {0, 23},
	Day:     {1, 31},
	Month:   {1, 12},
	Weekday: {0, 7},
}

var fieldNames = [...]string{
	Second:  "second",
	Minute:  "minute",
	Hour:    "hour",
	Day:     "day",
	Month:   "month",
	Weekday: "weekday",
}

// StandardFields is the field order of a five-field expression.
var StandardFields = [...]Field{Minute, Hour, Day, Month, Weekday}

// SecondsFields is the field order of a six-field expression.
var SecondsFields = [...]Field{Second, Minute, Hour, Day, Month, Weekday}

// Valid reports whether f is one of the six known fields.
func (f Field) Valid() bool {
	return f >= Second && f <= Weekday
}

func (f Field) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return fieldNames[f]
}

// Bounds returns the inclusive range of values the field accepts.
func (f Field) Bounds() (min, max int) {
	b := fieldBounds[f]
	return b.min, b.max
}

// Contains reports whether v lies within the field's bounds.
func (f Field) Contains(v int) bool {
	min, max := f.Bounds()
	return v >= min && v <= max
}

// FieldsFor returns the field sequence for an expression with n tokens.
// It returns nil for any count other than 5 or 6.
func FieldsFor(n int) []Field {
	switch n {
	case 5:
		return StandardFields[:]
	case 6:
		return SecondsFields[:]
	default:
		return nil
	}
}
