package schedule

import (
	"fmt"
	"time"

	"github.com/jdziat/cronhuman/pkg/core"
)

// Execution is one upcoming occurrence of an expression.
type Execution struct {
	Time      time.Time
	Formatted string
}

// NextExecutions returns the upcoming occurrences of expression, five by
// default. It returns fewer than requested when the calendar runs out, and
// ErrNoOccurrence when there is none at all (for example "0 0 30 2 *").
func NextExecutions(expression string, opts ...Option) ([]Execution, error) {
	o := NewOptions()
	for _, opt := range opts {
		opt.Apply(o)
	}

	s, err := NewCron(expression)
	if err != nil {
		return nil, err
	}

	from := o.From
	if from.IsZero() {
		from = time.Now()
	}

	executions := make([]Execution, 0, o.Count)
	for len(executions) < o.Count {
		next := s.Next(from)
		if next.IsZero() {
			o.Logger.Warn("no further occurrence",
				"expression", expression,
				"after", from,
				"found", len(executions))
			break
		}
		o.Logger.Debug("occurrence computed", "expression", expression, "time", next)
		executions = append(executions, Execution{Time: next, Formatted: next.Format(o.Layout)})
		from = next
	}

	if len(executions) == 0 {
		return nil, fmt.Errorf("%w for %q", core.ErrNoOccurrence, expression)
	}
	return executions, nil
}

// NextExecution returns the first upcoming occurrence of expression.
func NextExecution(expression string, opts ...Option) (Execution, error) {
	executions, err := NextExecutions(expression, append(opts[:len(opts):len(opts)], Count(1))...)
	if err != nil {
		return Execution{}, err
	}
	return executions[0], nil
}
