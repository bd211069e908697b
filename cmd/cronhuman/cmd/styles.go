package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette
var (
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorAccent  = lipgloss.Color("#F59E0B") // Amber
	ColorValue   = lipgloss.Color("#06B6D4") // Cyan
	ColorText    = lipgloss.Color("#F8FAFC") // Slate 50
	ColorMuted   = lipgloss.Color("#94A3B8") // Slate 400
)

type styles struct {
	success lipgloss.Style
	failure lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	accent  lipgloss.Style
	muted   lipgloss.Style
}

// newStyles binds styles to w. Colors are dropped when color is false or
// w is not a terminal.
func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		success: r.NewStyle().Foreground(ColorSuccess).Bold(true),
		failure: r.NewStyle().Foreground(ColorError).Bold(true),
		label:   r.NewStyle().Foreground(ColorText),
		value:   r.NewStyle().Foreground(ColorValue),
		accent:  r.NewStyle().Foreground(ColorAccent),
		muted:   r.NewStyle().Foreground(ColorMuted),
	}
}
