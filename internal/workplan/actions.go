package workplan

import (
	"slices"

	"github.com/alexanderramin/workplan/internal/domain"
)

// Action is a single user intent against the plan.
type Action interface {
	// Kind is a short stable name, used for logging.
	Kind() string
	apply(p Plan, ids IDGenerator) Result
}

// Result is the outcome of reducing one action.
type Result struct {
	Plan    Plan
	Changed bool
	// CreatedID is the id of the phase or task an Add action created.
	CreatedID string
}

// Reduce applies a to p and returns the next plan. Actions referring to
// unknown ids, unknown fields, values outside an enumeration, or moves past
// either end of the list leave the plan untouched and report Changed=false.
func Reduce(p Plan, a Action, ids IDGenerator) Result {
	if a == nil {
		return unchanged(p)
	}
	if ids == nil {
		ids = NewClockIDs(nil)
	}
	return a.apply(p, ids)
}

func unchanged(p Plan) Result { return Result{Plan: p} }

func (p Plan) replaceAt(i int, ph *domain.Phase) Plan {
	phases := slices.Clone(p.phases)
	phases[i] = ph
	return Plan{phases: phases}
}

// EditField replaces one field on a phase (TaskID empty) or on one of its
// tasks.
type EditField struct {
	PhaseID string
	TaskID  string
	Field   domain.Field
	Value   string
}

func (EditField) Kind() string { return "edit_field" }

func (a EditField) apply(p Plan, _ IDGenerator) Result {
	i := p.Index(a.PhaseID)
	if i < 0 {
		return unchanged(p)
	}
	ph := p.phases[i]

	if a.TaskID == "" {
		if !a.Field.IsPhaseField() {
			return unchanged(p)
		}
		next, ok := ph.With(a.Field, a.Value)
		if !ok {
			return unchanged(p)
		}
		return Result{Plan: p.replaceAt(i, next), Changed: true}
	}

	ti := ph.TaskIndex(a.TaskID)
	if ti < 0 || !a.Field.IsTaskField() {
		return unchanged(p)
	}
	task, ok := ph.Tasks[ti].With(a.Field, a.Value)
	if !ok {
		return unchanged(p)
	}
	tasks := slices.Clone(ph.Tasks)
	tasks[ti] = task
	return Result{Plan: p.replaceAt(i, ph.WithTasks(tasks)), Changed: true}
}

// AddPhase appends a phase with default values.
type AddPhase struct{}

func (AddPhase) Kind() string { return "add_phase" }

func (AddPhase) apply(p Plan, ids IDGenerator) Result {
	id := ids.NextID()
	for p.Index(id) >= 0 {
		id = ids.NextID()
	}
	phases := make([]*domain.Phase, len(p.phases), len(p.phases)+1)
	copy(phases, p.phases)
	phases = append(phases, domain.NewPhase(id))
	return Result{Plan: Plan{phases: phases}, Changed: true, CreatedID: id}
}

// AddTask appends a task with default values to a phase.
type AddTask struct {
	PhaseID string
}

func (AddTask) Kind() string { return "add_task" }

func (a AddTask) apply(p Plan, ids IDGenerator) Result {
	i := p.Index(a.PhaseID)
	if i < 0 {
		return unchanged(p)
	}
	ph := p.phases[i]

	id := taskID(ph.ID, ids.NextID())
	for ph.TaskIndex(id) >= 0 {
		id = taskID(ph.ID, ids.NextID())
	}
	tasks := make([]*domain.Task, len(ph.Tasks), len(ph.Tasks)+1)
	copy(tasks, ph.Tasks)
	tasks = append(tasks, domain.NewTask(id))
	return Result{Plan: p.replaceAt(i, ph.WithTasks(tasks)), Changed: true, CreatedID: id}
}

// DeleteTask removes a task from a phase.
type DeleteTask struct {
	PhaseID string
	TaskID  string
}

func (DeleteTask) Kind() string { return "delete_task" }

func (a DeleteTask) apply(p Plan, _ IDGenerator) Result {
	i := p.Index(a.PhaseID)
	if i < 0 {
		return unchanged(p)
	}
	ph := p.phases[i]
	if ph.TaskIndex(a.TaskID) < 0 {
		return unchanged(p)
	}
	tasks := slices.DeleteFunc(slices.Clone(ph.Tasks), func(t *domain.Task) bool { return t.ID == a.TaskID })
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return Result{Plan: p.replaceAt(i, ph.WithTasks(tasks)), Changed: true}
}

// DeletePhase removes a phase together with its tasks.
type DeletePhase struct {
	PhaseID string
}

func (DeletePhase) Kind() string { return "delete_phase" }

func (a DeletePhase) apply(p Plan, _ IDGenerator) Result {
	if p.Index(a.PhaseID) < 0 {
		return unchanged(p)
	}
	phases := slices.DeleteFunc(slices.Clone(p.phases), func(ph *domain.Phase) bool { return ph.ID == a.PhaseID })
	return Result{Plan: Plan{phases: phases}, Changed: true}
}

// MovePhase swaps a phase with its predecessor (up) or successor (down).
type MovePhase struct {
	PhaseID   string
	Direction domain.Direction
}

func (MovePhase) Kind() string { return "move_phase" }

func (a MovePhase) apply(p Plan, _ IDGenerator) Result {
	i := p.Index(a.PhaseID)
	if i < 0 {
		return unchanged(p)
	}
	var j int
	switch a.Direction {
	case domain.DirectionUp:
		j = i - 1
	case domain.DirectionDown:
		j = i + 1
	default:
		return unchanged(p)
	}
	if j < 0 || j >= len(p.phases) {
		return unchanged(p)
	}
	phases := slices.Clone(p.phases)
	phases[i], phases[j] = phases[j], phases[i]
	return Result{Plan: Plan{phases: phases}, Changed: true}
}

// CanMove reports whether MovePhase would change the plan.
func (p Plan) CanMove(phaseID string, dir domain.Direction) bool {
	return Reduce(p, MovePhase{PhaseID: phaseID, Direction: dir}, nil).Changed
}
