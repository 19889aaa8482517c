package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles for console output. Each is only applied to single lines.
type Styles struct {
	Header  lipgloss.Style
	Status  lipgloss.Style
	Reply   lipgloss.Style
	Warning lipgloss.Style
	Rule    lipgloss.Style
}

// NewStyles binds styles to out, so non-terminal writers get plain text.
func NewStyles(out io.Writer) Styles {
	r := lipgloss.NewRenderer(out)

	return Styles{
		Header:  r.NewStyle().Foreground(lipgloss.Color("#A78BFA")).Bold(true),
		Status:  r.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
		Reply:   r.NewStyle().Foreground(lipgloss.Color("#22D3EE")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		Rule:    r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	}
}
