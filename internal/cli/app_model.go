package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/workplan/internal/cli/formatter"
	"github.com/alexanderramin/workplan/internal/workplan"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the TUI.
// It owns the view stack, applies plan actions, and renders the header,
// flash line and status bar around the active view.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// One-line transient message, cleared by the next key press.
	flash string
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	return appModel{
		state:     state,
		viewStack: []View{newDashboardView(state)},
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// broadcast delivers msg to every view in the stack, bottom to top.
func (m *appModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, v := range m.viewStack {
		updated, cmd := v.Update(msg)
		m.viewStack[i] = updated.(View)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m, m.broadcast(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.flash = ""
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case wizardCompleteMsg:
		// Atomically pop the wizard view and execute the follow-up command.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, msg.nextCmd

	case actionMsg:
		return m.applyActions(msg.actions)

	case exportDoneMsg:
		m.flash = exportFlash(msg)
		return m, nil

	case flashMsg:
		m.flash = msg.text
		return m, nil

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	// Forward everything else to the active view.
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

// applyActions runs each action through the plan service in order and tells
// every view about the resulting plan.
func (m appModel) applyActions(actions []workplan.Action) (tea.Model, tea.Cmd) {
	if len(actions) == 0 {
		return m, nil
	}
	ctx := context.Background()
	results := make([]workplan.Result, 0, len(actions))
	for _, a := range actions {
		results = append(results, m.state.App.Plan.Dispatch(ctx, a))
	}
	changed := planChangedMsg{
		plan:    m.state.Plan(),
		last:    actions[len(actions)-1],
		results: results,
	}
	return m, m.broadcast(changed)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	m.flash = ""

	// Views that own a text input receive every key.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
			return m, nil
		}
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.flash)
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	cfg := m.state.App.config()
	title := formatter.StyleHeader.Render(cfg.Title)

	var crumbs []string
	for _, v := range m.viewStack[min(1, len(m.viewStack)):] {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	if len(crumbs) > 0 {
		title += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	plan := m.state.Plan()
	summary := fmt.Sprintf("%s  %s",
		formatter.RenderProgress(formatter.CompletedPhases(plan), plan.Len(), 10),
		formatter.Dim(fmt.Sprintf("%d fases · %d tareas", plan.Len(), plan.TaskCount())),
	)
	sub := formatter.Dim(cfg.Subtitle)
	if gap := m.state.Width - lipgloss.Width(sub) - lipgloss.Width(summary); gap > 1 {
		sub += strings.Repeat(" ", gap) + summary
	} else {
		sub += "  " + summary
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return title + "\n" + sub + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			if !b.Enabled() {
				continue
			}
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if !viewCapturesInput(m.activeView()) {
		if len(m.viewStack) > 1 {
			hints = append(hints, formatter.Dim("esc: volver"))
		}
		hints = append(hints, formatter.Dim("q: salir"))
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}

func exportFlash(msg exportDoneMsg) string {
	switch {
	case msg.err == nil:
		return formatter.StyleGreen.Render("✔ Exportado: " + msg.record.Path)
	case msg.record != nil:
		// The file exists; only the history entry is missing.
		return formatter.StyleYellow.Render("⚠ " + msg.err.Error())
	default:
		return formatter.StyleRed.Render("Error al exportar: " + msg.err.Error())
	}
}

// viewCapturesInput returns true if the view currently owns a text input and
// should receive all key events, bypassing global keybindings like q and Esc.
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	if v.ID() == ViewForm {
		return true
	}
	if c, ok := v.(inputCapturer); ok {
		return c.CapturesInput()
	}
	return false
}

// exportPlan writes a snapshot of the plan in the background.
func exportPlan(app *App, plan workplan.Plan) tea.Cmd {
	now := app.now()
	return func() tea.Msg {
		rec, err := app.Exports.Export(context.Background(), plan, now)
		return exportDoneMsg{record: rec, err: err}
	}
}
