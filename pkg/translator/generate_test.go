package translator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdziat/cronhuman/pkg/core"
	"github.com/jdziat/cronhuman/pkg/parser"
)

func TestFromHuman(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"every minute", "* * * * *"},
		{"every second", "* * * * * *"},
		{"every hour", "0 * * * *"},
		{"hourly", "0 * * * *"},
		{"every 15 minutes", "*/15 * * * *"},
		{"every 2 hours", "0 */2 * * *"},
		{"every 10 seconds", "*/10 * * * * *"},
		{"every 1 minute", "*/1 * * * *"},
		{"every day", "0 0 * * *"},
		{"daily", "0 0 * * *"},
		{"every day at midnight", "0 0 * * *"},
		{"every day at noon", "0 12 * * *"},
		{"every day at 5:30pm", "30 17 * * *"},
		{"every week", "0 0 * * 0"},
		{"weekly", "0 0 * * 0"},
		{"every month", "0 0 1 * *"},
		{"monthly at 6am", "0 6 1 * *"},
		{"every weekday", "0 9 * * 1-5"},
		{"every weekday at 9am", "0 9 * * 1-5"},
		{"every weekend at 10:15 am", "15 10 * * 0,6"},
		{"every monday at 9am", "0 9 * * 1"},
		{"every sunday", "0 9 * * 0"},
		{"every Friday at 4PM", "0 16 * * 5"},
		{"9am", "0 9 * * *"},
		{"3:30 pm", "30 15 * * *"},
		{"12am", "0 0 * * *"},
		{"12pm", "0 12 * * *"},
		{"at 14:05", "5 14 * * *"},
		{"  EVERY   Day  ", "0 0 * * *"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := FromHuman(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, parser.Validate(got).Valid)
		})
	}
}

func TestFromHuman_NotRecognized(t *testing.T) {
	inputs := []string{
		"invalid pattern xyz",
		"",
		"every 0 minutes",
		"every 90 minutes",
		"every 24 hours",
		"every day at 25:00",
		"every monday at 13pm",
		"at 9:75",
	}
	for _, text := range inputs {
		t.Run(text, func(t *testing.T) {
			_, err := FromHuman(text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, core.ErrPhraseNotRecognized), "got %v", err)
		})
	}
}

func TestFromHuman_TooLong(t *testing.T) {
	_, err := FromHuman("every day " + strings.Repeat("x", 600))
	assert.True(t, errors.Is(err, core.ErrPhraseTooLong))
}

func TestFromHuman_RoundTrip(t *testing.T) {
	expr, err := FromHuman("every weekday at 9am")
	require.NoError(t, err)

	text, err := ToHuman(expr)
	require.NoError(t, err)
	assert.Equal(t, "At 9:00 AM, Monday through Friday", text)
}
