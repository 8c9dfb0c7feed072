package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/workplan"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// flashMsg sets the one-line transient message above the status bar.
type flashMsg struct {
	text string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// actionMsg carries plan mutations to the appModel, which applies them in
// order inside Update.
type actionMsg struct {
	actions []workplan.Action
}

// planChangedMsg is broadcast to every view after actions were applied.
type planChangedMsg struct {
	plan    workplan.Plan
	last    workplan.Action
	results []workplan.Result
}

// exportDoneMsg reports the outcome of an export started with exportPlan.
type exportDoneMsg struct {
	record *domain.ExportRecord
	err    error
}

// quitMsg asks the appModel to exit.
type quitMsg struct{}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func flash(text string) tea.Cmd {
	return func() tea.Msg { return flashMsg{text: text} }
}

// dispatch returns a tea.Cmd delivering actions to the appModel. It returns
// nil when there is nothing to apply.
func dispatch(actions ...workplan.Action) tea.Cmd {
	if len(actions) == 0 {
		return nil
	}
	return func() tea.Msg { return actionMsg{actions: actions} }
}

func wizardCompleteOutput(text string) wizardCompleteMsg {
	return wizardCompleteMsg{nextCmd: flash(text)}
}
