// Package style holds the colors, icons and text styles shared by the CLI output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Teal   = lipgloss.Color("#0F9D9A")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
)

// Status line styles. They are unbound; render them through output.NewRenderer
// so that the color profile of the destination is honored.
var (
	Success = lipgloss.NewStyle().Foreground(Green)
	Failure = lipgloss.NewStyle().Foreground(Red)
	Change  = lipgloss.NewStyle().Foreground(Yellow)
	Muted   = lipgloss.NewStyle().Foreground(Slate)
	Digest  = lipgloss.NewStyle().Foreground(Teal).Bold(true)
)
