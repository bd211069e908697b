package translator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jdziat/cronhuman/pkg/core"
	"github.com/jdziat/cronhuman/pkg/parser"
	"github.com/jdziat/cronhuman/pkg/security"
)

var (
	intervalPattern = regexp.MustCompile(`\bevery (\d+) (second|minute|hour)s?\b`)
	dayPattern      = regexp.MustCompile(`\bevery (weekday|weekend|monday|tuesday|wednesday|thursday|friday|saturday|sunday)s?\b`)
	timePattern     = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))? ?(am|pm)?\b`)
)

// clock is a time of day picked out of a phrase.
type clock struct {
	hour, minute int
}

// FromHuman recognizes a simple English phrase and returns the cron
// expression it describes. The result always passes parser.Validate.
func FromHuman(text string) (string, error) {
	if err := security.ValidatePhrase(text); err != nil {
		return "", err
	}

	phrase := strings.Join(strings.Fields(cases.Lower(language.English).String(text)), " ")

	expr, err := match(phrase)
	if err != nil {
		return "", err
	}
	if _, err := parser.Parse(expr); err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrPhraseNotRecognized, err)
	}
	return expr, nil
}

func match(phrase string) (string, error) {
	if m := intervalPattern.FindStringSubmatch(phrase); m != nil {
		n, _ := strconv.Atoi(m[1])
		limit := 59
		if m[2] == "hour" {
			limit = 23
		}
		if n < 1 || n > limit {
			return "", fmt.Errorf("%w: interval %d %ss out of range", core.ErrPhraseNotRecognized, n, m[2])
		}
		switch m[2] {
		case "second":
			return fmt.Sprintf("*/%d * * * * *", n), nil
		case "minute":
			return fmt.Sprintf("*/%d * * * *", n), nil
		default:
			return fmt.Sprintf("0 */%d * * *", n), nil
		}
	}

	switch {
	case strings.Contains(phrase, "every second"):
		return "* * * * * *", nil
	case strings.Contains(phrase, "every minute"):
		return "* * * * *", nil
	case strings.Contains(phrase, "every hour"), strings.Contains(phrase, "hourly"):
		return "0 * * * *", nil
	}

	at, hasTime, err := findClock(phrase)
	if err != nil {
		return "", err
	}
	orDefault := func(c clock) clock {
		if hasTime {
			return at
		}
		return c
	}

	// Day names are matched before "every week", which "every weekday" contains.
	if m := dayPattern.FindStringSubmatch(phrase); m != nil {
		c := orDefault(clock{hour: 9})
		var weekday string
		switch m[1] {
		case "weekday":
			weekday = "1-5"
		case "weekend":
			weekday = "0,6"
		default:
			n, _ := core.DayNumber(m[1])
			weekday = strconv.Itoa(n)
		}
		return fmt.Sprintf("%d %d * * %s", c.minute, c.hour, weekday), nil
	}

	switch {
	case strings.Contains(phrase, "every week"), strings.Contains(phrase, "weekly"):
		c := orDefault(clock{})
		return fmt.Sprintf("%d %d * * 0", c.minute, c.hour), nil
	case strings.Contains(phrase, "every month"), strings.Contains(phrase, "monthly"):
		c := orDefault(clock{})
		return fmt.Sprintf("%d %d 1 * *", c.minute, c.hour), nil
	case strings.Contains(phrase, "every day"), strings.Contains(phrase, "daily"):
		c := orDefault(clock{})
		return fmt.Sprintf("%d %d * * *", c.minute, c.hour), nil
	case hasTime:
		return fmt.Sprintf("%d %d * * *", at.minute, at.hour), nil
	}

	return "", core.ErrPhraseNotRecognized
}

// findClock extracts a time of day. "midnight" and "noon" count as times.
func findClock(phrase string) (clock, bool, error) {
	switch {
	case strings.Contains(phrase, "midnight"):
		return clock{}, true, nil
	case strings.Contains(phrase, "noon"):
		return clock{hour: 12}, true, nil
	}

	m := timePattern.FindStringSubmatch(phrase)
	if m == nil {
		return clock{}, false, nil
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	switch m[3] {
	case "am", "pm":
		if hour < 1 || hour > 12 {
			return clock{}, false, fmt.Errorf("%w: hour %d is not a 12-hour clock value", core.ErrPhraseNotRecognized, hour)
		}
		if m[3] == "pm" && hour != 12 {
			hour += 12
		}
		if m[3] == "am" && hour == 12 {
			hour = 0
		}
	}
	if hour > 23 || minute > 59 {
		return clock{}, false, fmt.Errorf("%w: %s is not a valid time of day", core.ErrPhraseNotRecognized, m[0])
	}
	return clock{hour: hour, minute: minute}, true, nil
}
