package core

// Kind identifies which syntax form a field matched.
type Kind int

const (
	Wildcard Kind = iota
	Specific
	Range
	Step
	List
)

var kindNames = [...]string{
	Wildcard: "wildcard",
	Specific: "specific",
	Range:    "range",
	Step:     "step",
	List:     "list",
}

func (k Kind) String() string {
	if k < Wildcard || k > List {
		return "unknown"
	}
	return kindNames[k]
}

// Descriptor is the parsed form of one field.
type Descriptor struct {
	Raw    string // field text as written
	Kind   Kind
	Values []int // ascending, distinct, within the field's bounds
}

// Single reports whether the descriptor resolves to exactly one value.
func (d Descriptor) Single() bool {
	return len(d.Values) == 1
}

// Has reports whether v is one of the descriptor's values.
func (d Descriptor) Has(v int) bool {
	for _, x := range d.Values {
		if x == v {
			return true
		}
		if x > v {
			return false
		}
	}
	return false
}

// Expression is a fully parsed cron expression.
type Expression struct {
	Second  *Descriptor // nil for five-field expressions
	Minute  Descriptor
	Hour    Descriptor
	Day     Descriptor
	Month   Descriptor
	Weekday Descriptor

	Original   string // caller's input before alias expansion
	FieldCount int    // 5 or 6
}

// HasSeconds reports whether the expression was written in six-field form.
func (e *Expression) HasSeconds() bool {
	return e.Second != nil
}

// Field returns the descriptor for f. The second field is absent for
// five-field expressions.
func (e *Expression) Field(f Field) (Descriptor, bool) {
	switch f {
	case Second:
		if e.Second == nil {
			return Descriptor{}, false
		}
		return *e.Second, true
	case Minute:
		return e.Minute, true
	case Hour:
		return e.Hour, true
	case Day:
		return e.Day, true
	case Month:
		return e.Month, true
	case Weekday:
		return e.Weekday, true
	}
	return Descriptor{}, false
}

// Set stores d as the descriptor for f.
func (e *Expression) Set(f Field, d Descriptor) {
	switch f {
	case Second:
		e.Second = &d
	case Minute:
		e.Minute = d
	case Hour:
		e.Hour = d
	case Day:
		e.Day = d
	case Month:
		e.Month = d
	case Weekday:
		e.Weekday = d
	}
}

// ValidationResult is the non-failing outcome of validating an expression.
type ValidationResult struct {
	Valid bool
	Error string
	Field string // offending field, when the failure is tied to one
}
