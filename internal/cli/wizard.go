package cli

import (
	"fmt"

	"github.com/alexanderramin/workplan/internal/cli/formatter"
	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/workplan"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// workplanHuhTheme returns a custom huh theme using the Gruvbox palette.
func workplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Sí").
				Negative("No").
				Value(result),
		),
	).WithTheme(workplanHuhTheme()).WithShowHelp(false)
}

// confirmDeletePhase asks before removing a phase, since its tasks go with it.
func confirmDeletePhase(state *SharedState, ph *domain.Phase) tea.Cmd {
	confirmed := new(bool)
	title := fmt.Sprintf("¿Eliminar la fase %q y sus %d tareas?", ph.Name, len(ph.Tasks))
	return startWizardCmd(state, "Eliminar fase", wizardConfirm(title, confirmed), func() tea.Cmd {
		if !*confirmed {
			return flash(formatter.Dim("Cancelado."))
		}
		return dispatch(workplan.DeletePhase{PhaseID: ph.ID})
	})
}
