package schedule

import (
	"log/slog"
	"time"

	"github.com/jdziat/cronhuman/pkg/security"
)

// DefaultLayout formats occurrences as "Monday, Jan 2, 2006 at 3:04:05 PM".
const DefaultLayout = "Monday, Jan 2, 2006 at 3:04:05 PM"

// Options holds configuration for occurrence calculation.
type Options struct {
	Count  int
	From   time.Time // zero means time.Now()
	Layout string
	Logger *slog.Logger
}

// NewOptions creates Options with defaults.
func NewOptions() *Options {
	return &Options{
		Count:  security.DefaultOccurrences,
		Layout: DefaultLayout,
		Logger: slog.Default(),
	}
}

// Option modifies Options.
type Option interface {
	Apply(*Options)
}

type optionFunc func(*Options)

func (f optionFunc) Apply(o *Options) { f(o) }

// Count sets how many occurrences to compute.
// Values are clamped to [1, MaxOccurrences] (1000).
func Count(n int) Option {
	return optionFunc(func(o *Options) {
		o.Count = security.ClampCount(n)
	})
}

// From sets the instant the search starts after.
func From(t time.Time) Option {
	return optionFunc(func(o *Options) {
		o.From = t
	})
}

// Layout sets the time layout used for Execution.Formatted.
func Layout(layout string) Option {
	return optionFunc(func(o *Options) {
		if layout != "" {
			o.Layout = layout
		}
	})
}

// WithLogger sets the logger used while computing occurrences.
func WithLogger(logger *slog.Logger) Option {
	return optionFunc(func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	})
}
