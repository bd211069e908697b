package translator

import (
	"fmt"
	"strings"

	"github.com/jdziat/cronhuman/pkg/core"
	"github.com/jdziat/cronhuman/pkg/parser"
)

// ToHuman parses expression and describes it in English.
func ToHuman(expression string) (string, error) {
	expr, err := parser.Parse(expression)
	if err != nil {
		return "", err
	}
	return Describe(expr), nil
}

// Describe renders an already parsed expression.
func Describe(expr *core.Expression) string {
	var parts []string
	for _, phrase := range []string{
		describeTime(expr),
		describeSeconds(expr),
		describeDays(expr),
		describeMonths(expr),
	} {
		if phrase != "" {
			parts = append(parts, phrase)
		}
	}
	if len(parts) == 0 {
		return "Every minute"
	}
	return strings.Join(parts, ", ")
}

func describeTime(expr *core.Expression) string {
	hour, minute := expr.Hour, expr.Minute

	if hour.Kind == core.Wildcard && minute.Kind == core.Wildcard {
		if expr.Second != nil && expr.Second.Kind == core.Wildcard {
			return "Every second"
		}
		return "Every minute"
	}

	if hour.Kind == core.Wildcard {
		if minute.Single() {
			return fmt.Sprintf("At %d minutes past the hour", minute.Values[0])
		}
		return "At minutes " + formatList(itoa(minute.Values))
	}

	if hour.Single() && minute.Single() {
		return "At " + formatTime(hour.Values[0], minute.Values[0])
	}

	if minute.Single() && minute.Values[0] == 0 {
		return "At " + formatHours(hour.Values)
	}

	return "At " + formatHours(hour.Values) + ":" + formatMinutes(minute.Values)
}

// describeSeconds is empty for five-field expressions and for a plain ":00".
func describeSeconds(expr *core.Expression) string {
	second := expr.Second
	switch {
	case second == nil:
		return ""
	case second.Single() && second.Values[0] == 0:
		return ""
	case second.Kind == core.Wildcard:
		if expr.Hour.Kind == core.Wildcard && expr.Minute.Kind == core.Wildcard {
			return ""
		}
		return "every second"
	case second.Single():
		return fmt.Sprintf("at second %d", second.Values[0])
	}
	return "at seconds " + formatList(itoa(second.Values))
}

func describeDays(expr *core.Expression) string {
	day, weekday := expr.Day, expr.Weekday

	var phrases []string
	if day.Kind != core.Wildcard {
		if day.Single() {
			phrases = append(phrases, fmt.Sprintf("on day %d", day.Values[0]))
		} else {
			phrases = append(phrases, "on days "+formatList(itoa(day.Values)))
		}
	}
	if weekday.Kind != core.Wildcard {
		phrases = append(phrases, describeWeekdays(weekday.Values))
	}
	return strings.Join(phrases, " or ")
}

func describeWeekdays(values []int) string {
	seen := make(map[int]bool, len(values))
	var days []string
	for _, v := range values {
		n := core.NormalizeWeekday(v)
		if seen[n] {
			continue
		}
		seen[n] = true
		days = append(days, core.DayName(n))
	}

	if len(days) == 5 && !seen[0] && !seen[6] {
		return "Monday through Friday"
	}
	return "on " + formatList(days)
}

func describeMonths(expr *core.Expression) string {
	month := expr.Month
	if month.Kind == core.Wildcard {
		return ""
	}
	names := make([]string, len(month.Values))
	for i, v := range month.Values {
		names[i] = core.MonthName(v)
	}
	return "in " + formatList(names)
}
