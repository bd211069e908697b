package schedule

import (
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jdziat/cronhuman/pkg/core"
	"github.com/jdziat/cronhuman/pkg/parser"
)

// Schedule defines when something would run next.
type Schedule interface {
	// Next returns the first matching time strictly after from, or the
	// zero time when there is none.
	Next(from time.Time) time.Time
}

// specParser always expects a seconds field; Spec supplies one.
var specParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// CronSchedule is a Schedule built from a cron expression.
type CronSchedule struct {
	expr     *core.Expression
	schedule cron.Schedule
}

// NewCron creates a schedule from a cron expression.
func NewCron(expression string) (*CronSchedule, error) {
	expr, err := parser.Parse(expression)
	if err != nil {
		return nil, err
	}
	schedule, err := specParser.Parse(Spec(expr))
	if err != nil {
		return nil, err
	}
	return &CronSchedule{expr: expr, schedule: schedule}, nil
}

// Cron creates a schedule from a cron expression and panics if it is invalid.
func Cron(expression string) Schedule {
	s, err := NewCron(expression)
	if err != nil {
		panic("invalid cron expression: " + err.Error())
	}
	return s
}

func (s *CronSchedule) Next(from time.Time) time.Time {
	return s.schedule.Next(from)
}

// Expression returns the parsed form the schedule was built from.
func (s *CronSchedule) Expression() *core.Expression {
	return s.expr
}

// Spec renders a parsed expression as a six-field spec for robfig/cron.
// Wildcards stay "*" so the day-of-month/day-of-week rule (AND when either
// is a wildcard, OR otherwise) is preserved. Weekday 7 is folded onto 0.
func Spec(expr *core.Expression) string {
	tokens := make([]string, 0, len(core.SecondsFields))
	for _, f := range core.SecondsFields {
		d, ok := expr.Field(f)
		if !ok {
			tokens = append(tokens, "0")
			continue
		}
		tokens = append(tokens, specToken(f, d))
	}
	return strings.Join(tokens, " ")
}

func specToken(f core.Field, d core.Descriptor) string {
	if d.Kind == core.Wildcard || coversField(f, d) {
		return "*"
	}

	seen := make(map[int]bool, len(d.Values))
	values := make([]string, 0, len(d.Values))
	for _, v := range d.Values {
		if f == core.Weekday {
			v = core.NormalizeWeekday(v)
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, strconv.Itoa(v))
	}
	return strings.Join(values, ",")
}

// coversField reports whether a "*/1" style step selected every value.
func coversField(f core.Field, d core.Descriptor) bool {
	if d.Kind != core.Step || !strings.HasPrefix(d.Raw, "*/") {
		return false
	}
	min, max := f.Bounds()
	return len(d.Values) == max-min+1
}
