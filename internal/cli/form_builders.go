package cli

import (
	"github.com/alexanderramin/workplan/internal/cli/formatter"
	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/workplan"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// fieldDraft is the editable copy of one field, bound to a form input.
type fieldDraft struct {
	field domain.Field
	value string
}

// changedActions returns one EditField per draft whose value differs from
// current(field). Unchanged fields produce nothing.
func changedActions(phaseID, taskID string, drafts []*fieldDraft, current func(domain.Field) (string, bool)) []workplan.Action {
	var actions []workplan.Action
	for _, d := range drafts {
		if old, ok := current(d.field); ok && old == d.value {
			continue
		}
		actions = append(actions, workplan.EditField{
			PhaseID: phaseID,
			TaskID:  taskID,
			Field:   d.field,
			Value:   d.value,
		})
	}
	return actions
}

// draftsFor seeds one draft per field, in the order given.
func draftsFor(fields []domain.Field, current func(domain.Field) (string, bool)) []*fieldDraft {
	drafts := make([]*fieldDraft, 0, len(fields))
	for _, f := range fields {
		v, _ := current(f)
		drafts = append(drafts, &fieldDraft{field: f, value: v})
	}
	return drafts
}

func textInput(title, placeholder string, d *fieldDraft) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&d.value)
}

func statusOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.PhaseStatuses))
	for _, s := range domain.PhaseStatuses {
		opts = append(opts, huh.NewOption(formatter.StatusLabel(s), string(s)))
	}
	return opts
}

func priorityOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.TaskPriorities))
	for _, p := range domain.TaskPriorities {
		opts = append(opts, huh.NewOption(formatter.PriorityLabel(p), string(p)))
	}
	return opts
}

// phaseEditForm builds the form for every phase field; drafts receive the
// edited values.
func phaseEditForm(ph *domain.Phase) (*huh.Form, []*fieldDraft) {
	drafts := draftsFor(domain.PhaseFields, ph.Get)
	name, timeline, budget, status := drafts[0], drafts[1], drafts[2], drafts[3]

	form := huh.NewForm(
		huh.NewGroup(
			textInput("Nombre", "Nombre de la fase", name),
			textInput("Timeline", "Semana 1-2", timeline),
			textInput("Presupuesto", "€0", budget),
			huh.NewSelect[string]().
				Title("Estado").
				Options(statusOptions()...).
				Validate(func(v string) error {
					_, err := domain.ParsePhaseStatus(v)
					return err
				}).
				Value(&status.value),
		),
	).WithTheme(workplanHuhTheme()).WithShowHelp(false)

	return form, drafts
}

// taskEditForm builds the form for every task field.
func taskEditForm(t *domain.Task) (*huh.Form, []*fieldDraft) {
	drafts := draftsFor(domain.TaskFields, t.Get)
	title, duration, owner, priority := drafts[0], drafts[1], drafts[2], drafts[3]

	form := huh.NewForm(
		huh.NewGroup(
			textInput("Tarea", "Título de la tarea", title),
			textInput("Duración", "3 días", duration),
			textInput("Responsable", "Equipo", owner),
			huh.NewSelect[string]().
				Title("Prioridad").
				Options(priorityOptions()...).
				Validate(func(v string) error {
					_, err := domain.ParseTaskPriority(v)
					return err
				}).
				Value(&priority.value),
		),
	).WithTheme(workplanHuhTheme()).WithShowHelp(false)

	return form, drafts
}

// editPhase opens the phase form; on submit every changed field becomes one
// EditField action.
func editPhase(state *SharedState, ph *domain.Phase) tea.Cmd {
	form, drafts := phaseEditForm(ph)
	return startWizardCmd(state, "Editar fase", form, func() tea.Cmd {
		return dispatch(changedActions(ph.ID, "", drafts, ph.Get)...)
	})
}

func editTask(state *SharedState, phaseID string, t *domain.Task) tea.Cmd {
	form, drafts := taskEditForm(t)
	return startWizardCmd(state, "Editar tarea", form, func() tea.Cmd {
		return dispatch(changedActions(phaseID, t.ID, drafts, t.Get)...)
	})
}
