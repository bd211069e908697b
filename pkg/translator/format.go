package translator

import (
	"fmt"
	"strconv"
	"strings"
)

func formatTime(hour, minute int) string {
	return fmt.Sprintf("%d:%02d %s", clock12(hour), minute, period(hour))
}

func formatHours(hours []int) string {
	out := make([]string, len(hours))
	for i, h := range hours {
		out[i] = fmt.Sprintf("%d %s", clock12(h), period(h))
	}
	return strings.Join(out, ", ")
}

func formatMinutes(minutes []int) string {
	out := make([]string, len(minutes))
	for i, m := range minutes {
		out[i] = fmt.Sprintf("%02d", m)
	}
	return strings.Join(out, ",")
}

// formatList joins items as "a", "a and b" or "a, b, and c".
func formatList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}

func itoa(values []int) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.Itoa(v)
	}
	return out
}

func clock12(hour int) int {
	if h := hour % 12; h != 0 {
		return h
	}
	return 12
}

func period(hour int) string {
	if hour >= 12 {
		return "PM"
	}
	return "AM"
}
