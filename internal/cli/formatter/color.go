package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusLabel returns the display label of a phase status.
func StatusLabel(s domain.PhaseStatus) string {
	switch s {
	case domain.PhasePending:
		return "Pendiente"
	case domain.PhaseInProgress:
		return "En Progreso"
	case domain.PhaseCompleted:
		return "Completado"
	default:
		return string(s)
	}
}

// StatusColor returns the lipgloss style for a phase status.
func StatusColor(s domain.PhaseStatus) lipgloss.Style {
	switch s {
	case domain.PhaseInProgress:
		return StyleBlue
	case domain.PhaseCompleted:
		return StyleGreen
	default:
		return StyleDim
	}
}

// StatusPill returns a colored status indicator such as "● En Progreso".
func StatusPill(s domain.PhaseStatus) string {
	icon := "○"
	switch s {
	case domain.PhaseInProgress:
		icon = "●"
	case domain.PhaseCompleted:
		icon = "✔"
	}
	return StatusColor(s).Render(icon + " " + StatusLabel(s))
}

// PriorityLabel returns the display label of a task priority.
func PriorityLabel(p domain.TaskPriority) string {
	switch p {
	case domain.PriorityHigh:
		return "Alta"
	case domain.PriorityMedium:
		return "Media"
	case domain.PriorityLow:
		return "Baja"
	default:
		return string(p)
	}
}

// PriorityColor returns the lipgloss style for a task priority.
func PriorityColor(p domain.TaskPriority) lipgloss.Style {
	switch p {
	case domain.PriorityHigh:
		return StyleRed
	case domain.PriorityMedium:
		return StyleYellow
	case domain.PriorityLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// PriorityIndicator returns a colored priority marker such as "● Alta".
func PriorityIndicator(p domain.TaskPriority) string {
	return PriorityColor(p).Render("● " + PriorityLabel(p))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
