// Package formatter renders terminal output for the scheduler CLI:
// colored status indicators and aligned tables, styled with the same
// lipgloss palette the teacher project's formatter package uses.
package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/medschedulr/roster/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the lipgloss style corresponding to an adopted
// solver status.
func StatusStyle(status domain.SolverStatus) lipgloss.Style {
	switch status {
	case domain.StatusOptimal, domain.StatusOptimalInaccurate:
		return StyleGreen
	case domain.StatusFeasible, domain.StatusTimeout:
		return StyleYellow
	case domain.StatusInfeasible, domain.StatusModelInvalid:
		return StyleRed
	default:
		return StyleDim
	}
}

// StatusIndicator returns a colored status indicator such as "● optimal".
func StatusIndicator(status domain.SolverStatus) string {
	return StatusStyle(status).Render("● " + string(status))
}

// Dim renders s in the dim style, for secondary/help text.
func Dim(s string) string {
	return StyleDim.Render(s)
}
