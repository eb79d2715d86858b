package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles are bound to one output so color is only emitted to terminals.
type styles struct {
	title   lipgloss.Style
	dim     lipgloss.Style
	active  lipgloss.Style
	success lipgloss.Style
	errs    lipgloss.Style
	box     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160")),
		dim: r.NewStyle().
			Foreground(lipgloss.Color("240")),
		active: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81")),
		success: r.NewStyle().
			Foreground(lipgloss.Color("42")),
		errs: r.NewStyle().
			Foreground(lipgloss.Color("196")),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(0, 1),
	}
}
