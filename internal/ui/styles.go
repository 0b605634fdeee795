package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	// Verdict styles
	Formal   lipgloss.Style
	Informal lipgloss.Style
	Unknown  lipgloss.Style

	// Issue styles
	Issue      lipgloss.Style
	Suggestion lipgloss.Style
	Warning    lipgloss.Style
	Success    lipgloss.Style

	// Structural styles
	Header lipgloss.Style
	Muted  lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconIssue      string
	IconSuggestion string
	IconWarning    string
	IconSuccess    string
}

// NewStyles creates a new Styles instance.
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{}

	if enabled {
		s.Formal = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))   // Green
		s.Informal = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")) // Yellow
		s.Unknown = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8"))   // Gray

		s.Issue = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))       // Red
		s.Suggestion = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // Cyan
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))    // Yellow
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))    // Green

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))              // Gray

		s.IconIssue = "✗"
		s.IconSuggestion = "→"
		s.IconWarning = "⚠"
		s.IconSuccess = "✓"
	} else {
		s.Formal = lipgloss.NewStyle()
		s.Informal = lipgloss.NewStyle()
		s.Unknown = lipgloss.NewStyle()

		s.Issue = lipgloss.NewStyle()
		s.Suggestion = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()
		s.Success = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Muted = lipgloss.NewStyle()

		s.IconIssue = "x"
		s.IconSuggestion = "->"
		s.IconWarning = "WARN:"
		s.IconSuccess = "OK:"
	}

	return s
}
