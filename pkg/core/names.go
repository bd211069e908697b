package core

import "strings"

var aliases = map[string]string{
	"@yearly":   "0 0 1 1 *",
	"@annually": "0 0 1 1 *",
	"@monthly":  "0 0 1 * *",
	"@weekly":   "0 0 * * 0",
	"@daily":    "0 0 * * *",
	"@midnight": "0 0 * * *",
	"@hourly":   "0 * * * *",
}

// ExpandAlias returns the five-field expression an alias stands for.
func ExpandAlias(s string) (string, bool) {
	expr, ok := aliases[s]
	return expr, ok
}

// Aliases returns a copy of the alias table.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}

var (
	dayNames     = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	fullDayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	monthNames   = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

// NormalizeWeekday folds 7 onto 0; both mean Sunday.
func NormalizeWeekday(v int) int {
	if v == 7 {
		return 0
	}
	return v
}

// DayName returns the short name for a weekday value in [0,7].
func DayName(v int) string {
	v = NormalizeWeekday(v)
	if v < 0 || v >= len(dayNames) {
		return ""
	}
	return dayNames[v]
}

// FullDayName returns the full name for a weekday value in [0,7].
func FullDayName(v int) string {
	v = NormalizeWeekday(v)
	if v < 0 || v >= len(fullDayNames) {
		return ""
	}
	return fullDayNames[v]
}

// DayNumber looks up a weekday by full or short name, case-sensitive on the
// lower-case form ("monday" or "mon").
func DayNumber(name string) (int, bool) {
	for i := range fullDayNames {
		if name == strings.ToLower(fullDayNames[i]) || name == strings.ToLower(dayNames[i]) {
			return i, true
		}
	}
	return 0, false
}

// MonthName returns the short name for a month value in [1,12].
func MonthName(v int) string {
	if v < 1 || v > len(monthNames) {
		return ""
	}
	return monthNames[v-1]
}

