package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used for text output.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Path    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Diff lines
	Added   lipgloss.Style
	Removed lipgloss.Style
	Hunk    lipgloss.Style
}

// Color palette (ANSI 256)
var (
	colorAccent  = lipgloss.Color("39")
	colorMuted   = lipgloss.Color("245")
	colorSuccess = lipgloss.Color("42")
	colorError   = lipgloss.Color("196")
	colorWarning = lipgloss.Color("214")
	colorInfo    = lipgloss.Color("75")
)

// newStyles builds styles bound to re so color output follows the
// renderer's terminal profile.
func newStyles(re *lipgloss.Renderer) Styles {
	return Styles{
		Header1: re.NewStyle().Bold(true).Foreground(colorAccent).Underline(true),
		Header2: re.NewStyle().Bold(true).Foreground(colorAccent),
		Bold:    re.NewStyle().Bold(true),
		Muted:   re.NewStyle().Foreground(colorMuted),
		Path:    re.NewStyle().Foreground(colorInfo),
		Success: re.NewStyle().Foreground(colorSuccess),
		Error:   re.NewStyle().Bold(true).Foreground(colorError),
		Warning: re.NewStyle().Foreground(colorWarning),
		Info:    re.NewStyle().Foreground(colorInfo),
		Added:   re.NewStyle().Foreground(colorSuccess),
		Removed: re.NewStyle().Foreground(colorError),
		Hunk:    re.NewStyle().Foreground(colorAccent),
	}
}
