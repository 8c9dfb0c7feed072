package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/workplan/internal/cli/formatter"
	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/workplan"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// ── rows ─────────────────────────────────────────────────────────────────────

type rowKind int

const (
	rowPhase rowKind = iota
	rowTask
	rowAddTask
)

// dashRow is one selectable line of the dashboard.
type dashRow struct {
	kind     rowKind
	phase    *domain.Phase
	phaseIdx int
	task     *domain.Task
}

func (r dashRow) taskID() string {
	if r.task == nil {
		return ""
	}
	return r.task.ID
}

func (r dashRow) same(o dashRow) bool {
	return r.kind == o.kind && r.phase.ID == o.phase.ID && r.taskID() == o.taskID()
}

// buildRows flattens the plan into phase, task and add-task rows.
func buildRows(p workplan.Plan) []dashRow {
	var rows []dashRow
	for i, ph := range p.Phases() {
		rows = append(rows, dashRow{kind: rowPhase, phase: ph, phaseIdx: i})
		for _, t := range ph.Tasks {
			rows = append(rows, dashRow{kind: rowTask, phase: ph, phaseIdx: i, task: t})
		}
		rows = append(rows, dashRow{kind: rowAddTask, phase: ph, phaseIdx: i})
	}
	return rows
}

// ── view ─────────────────────────────────────────────────────────────────────

// dashboardView is the home screen: every phase with its tasks, editable in
// place. It never mutates the plan itself; it emits actions.
type dashboardView struct {
	state  *SharedState
	keys   dashboardKeyMap
	plan   workplan.Plan
	rows   []dashRow
	cursor int
	vp     viewport.Model

	// Inline rename of the phase name or task title under the cursor.
	renaming     bool
	rename       textinput.Model
	renameTarget dashRow
}

func newDashboardView(state *SharedState) *dashboardView {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 200

	v := &dashboardView{
		state:  state,
		keys:   newDashboardKeyMap(),
		vp:     viewport.New(0, 0),
		rename: ti,
	}
	v.reload(state.Plan(), nil)
	return v
}

func (v *dashboardView) ID() ViewID { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	if v.renaming {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "guardar")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancelar")),
		}
	}
	return v.keys.ShortHelp()
}

func (v *dashboardView) CapturesInput() bool { return v.renaming }

func (v *dashboardView) Init() tea.Cmd { return nil }

// current returns the row under the cursor.
func (v *dashboardView) current() (dashRow, bool) {
	if v.cursor < 0 || v.cursor >= len(v.rows) {
		return dashRow{}, false
	}
	return v.rows[v.cursor], true
}

// reload rebuilds the rows from p and puts the cursor on focus when it still
// exists, otherwise keeps the cursor position clamped to the new rows.
func (v *dashboardView) reload(p workplan.Plan, focus *dashRow) {
	if focus == nil {
		if cur, ok := v.current(); ok {
			focus = &cur
		}
	}
	v.plan = p
	v.rows = buildRows(p)

	found := false
	if focus != nil {
		for i, r := range v.rows {
			if r.same(*focus) {
				v.cursor, found = i, true
				break
			}
		}
	}
	if !found {
		v.cursor = min(v.cursor, len(v.rows)-1)
		v.cursor = max(v.cursor, 0)
	}
	v.syncKeys()
}

// syncKeys enables only the bindings that apply to the row under the cursor.
func (v *dashboardView) syncKeys() {
	cur, ok := v.current()
	onEntity := ok && cur.kind != rowAddTask

	v.keys.Edit.SetEnabled(ok)
	v.keys.Rename.SetEnabled(onEntity)
	v.keys.AddTask.SetEnabled(ok)
	v.keys.Delete.SetEnabled(onEntity)
	v.keys.MoveUp.SetEnabled(ok && v.plan.CanMove(cur.phase.ID, domain.DirectionUp))
	v.keys.MoveDown.SetEnabled(ok && v.plan.CanMove(cur.phase.ID, domain.DirectionDown))
	v.keys.CycleStatus.SetEnabled(ok)
	v.keys.CyclePriority.SetEnabled(ok && cur.kind == rowTask)
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil

	case planChangedMsg:
		v.reload(msg.plan, v.focusAfter(msg))
		return v, nil

	case tea.KeyMsg:
		if v.renaming {
			return v.updateRename(msg)
		}
		return v.handleKey(msg)
	}

	if v.renaming {
		var cmd tea.Cmd
		v.rename, cmd = v.rename.Update(msg)
		return v, cmd
	}
	return v, nil
}

// focusAfter picks the row to select after a plan change: the entity an Add
// action created, or whatever was selected before.
func (v *dashboardView) focusAfter(msg planChangedMsg) *dashRow {
	if len(msg.results) == 0 {
		return nil
	}
	created := msg.results[len(msg.results)-1].CreatedID
	if created == "" {
		return nil
	}
	switch a := msg.last.(type) {
	case workplan.AddPhase:
		return &dashRow{kind: rowPhase, phase: &domain.Phase{ID: created}}
	case workplan.AddTask:
		ph := msg.plan.Phase(a.PhaseID)
		if ph == nil {
			return nil
		}
		if t := ph.Task(created); t != nil {
			return &dashRow{kind: rowTask, phase: ph, task: t}
		}
	}
	return nil
}

func (v *dashboardView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
			v.syncKeys()
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.rows)-1 {
			v.cursor++
			v.syncKeys()
		}
		return v, nil

	case key.Matches(msg, v.keys.AddPhase):
		return v, dispatch(workplan.AddPhase{})

	case key.Matches(msg, v.keys.Export):
		return v, tea.Batch(flash(formatter.Dim("Exportando…")), exportPlan(v.state.App, v.state.Plan()))
	}

	cur, ok := v.current()
	if !ok {
		return v, nil
	}

	switch {
	case key.Matches(msg, v.keys.Edit):
		switch cur.kind {
		case rowAddTask:
			return v, dispatch(workplan.AddTask{PhaseID: cur.phase.ID})
		case rowTask:
			return v, editTask(v.state, cur.phase.ID, cur.task)
		default:
			return v, editPhase(v.state, cur.phase)
		}

	case key.Matches(msg, v.keys.Rename):
		return v, v.startRename(cur)

	case key.Matches(msg, v.keys.AddTask):
		return v, dispatch(workplan.AddTask{PhaseID: cur.phase.ID})

	case key.Matches(msg, v.keys.Delete):
		if cur.kind == rowTask {
			return v, dispatch(workplan.DeleteTask{PhaseID: cur.phase.ID, TaskID: cur.task.ID})
		}
		return v, confirmDeletePhase(v.state, cur.phase)

	case key.Matches(msg, v.keys.MoveUp):
		return v, dispatch(workplan.MovePhase{PhaseID: cur.phase.ID, Direction: domain.DirectionUp})

	case key.Matches(msg, v.keys.MoveDown):
		return v, dispatch(workplan.MovePhase{PhaseID: cur.phase.ID, Direction: domain.DirectionDown})

	case key.Matches(msg, v.keys.CycleStatus):
		return v, dispatch(workplan.EditField{
			PhaseID: cur.phase.ID,
			Field:   domain.FieldStatus,
			Value:   string(cur.phase.Status.Next()),
		})

	case key.Matches(msg, v.keys.CyclePriority):
		return v, dispatch(workplan.EditField{
			PhaseID: cur.phase.ID,
			TaskID:  cur.task.ID,
			Field:   domain.FieldPriority,
			Value:   string(cur.task.Priority.Next()),
		})
	}

	return v, nil
}

func (v *dashboardView) startRename(row dashRow) tea.Cmd {
	value := row.phase.Name
	if row.kind == rowTask {
		value = row.task.Title
	}
	v.renaming = true
	v.renameTarget = row
	v.rename.SetValue(value)
	v.rename.CursorEnd()
	return v.rename.Focus()
}

func (v *dashboardView) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.stopRename()
		return v, nil

	case tea.KeyEnter:
		row := v.renameTarget
		value := v.rename.Value()
		v.stopRename()
		a := workplan.EditField{PhaseID: row.phase.ID, Field: domain.FieldName, Value: value}
		if row.kind == rowTask {
			a.TaskID = row.task.ID
			a.Field = domain.FieldTitle
		}
		return v, dispatch(a)
	}

	var cmd tea.Cmd
	v.rename, cmd = v.rename.Update(msg)
	return v, cmd
}

func (v *dashboardView) stopRename() {
	v.renaming = false
	v.rename.Blur()
	v.rename.Reset()
}

// ── view rendering ───────────────────────────────────────────────────────────

func (v *dashboardView) View() string {
	if len(v.rows) == 0 {
		return "\n  " + formatter.Dim("Sin fases. Pulsa n para crear una.") + "\n"
	}

	content, cursorLine := v.render()
	if v.state.Height <= 0 {
		return content
	}

	v.vp.Width = v.state.Width
	v.vp.Height = v.state.ContentHeight()
	v.vp.SetContent(content)
	if cursorLine < v.vp.YOffset {
		v.vp.SetYOffset(cursorLine)
	} else if cursorLine >= v.vp.YOffset+v.vp.Height {
		v.vp.SetYOffset(cursorLine - v.vp.Height + 1)
	}
	return v.vp.View()
}

// render draws every row and reports the line the cursor is on.
func (v *dashboardView) render() (string, int) {
	var lines []string
	cursorLine := 0

	for i, r := range v.rows {
		selected := i == v.cursor
		marker := "  "
		if selected {
			marker = formatter.StyleGreen.Render("▸ ")
			cursorLine = len(lines)
		}

		switch r.kind {
		case rowPhase:
			if r.phaseIdx > 0 {
				lines = append(lines, "")
			}
			name := formatter.StyleBold.Render(r.phase.Name)
			if v.renaming && v.renameTarget.same(r) {
				name = v.rename.View()
			}
			if selected {
				cursorLine = len(lines)
			}
			lines = append(lines,
				fmt.Sprintf("%s%s %s  %s", marker, formatter.StatusColor(r.phase.Status).Render(fmt.Sprintf("%d.", r.phaseIdx+1)), name, formatter.StatusPill(r.phase.Status)),
				fmt.Sprintf("     %s %s %s",
					formatter.Dim(formatter.Placeholder(r.phase.Timeline, "Timeline")),
					formatter.Dim("·"),
					formatter.StyleFg.Render(formatter.Placeholder(r.phase.Budget, "Budget")),
				),
			)

		case rowTask:
			title := r.task.Title
			if v.renaming && v.renameTarget.same(r) {
				title = v.rename.View()
			} else if selected {
				title = formatter.StyleBold.Render(title)
			}
			lines = append(lines, fmt.Sprintf("    %s%s  %s %s %s  %s",
				marker,
				title,
				formatter.Dim(formatter.Placeholder(r.task.Duration, "Duración")),
				formatter.Dim("·"),
				formatter.Dim(formatter.Placeholder(r.task.Owner, "Responsable")),
				formatter.PriorityIndicator(r.task.Priority),
			))

		case rowAddTask:
			lines = append(lines, "    "+marker+formatter.StyleBlue.Render("+ Agregar Tarea"))
		}
	}

	return strings.Join(lines, "\n"), cursorLine
}
