package domain

// Default values given to a freshly added phase.
const (
	DefaultPhaseName     = "Nueva Fase"
	DefaultPhaseTimeline = "TBD"
	DefaultPhaseBudget   = "€0"
)

// Phase is a top-level stage of the work plan. Timeline and Budget are free
// text and never validated.
//
// A *Phase reachable from a plan is treated as immutable: updates go through
// With/WithTasks, which return a modified copy.
type Phase struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Timeline string      `json:"timeline"`
	Budget   string      `json:"budget"`
	Status   PhaseStatus `json:"status"`
	Tasks    []*Task     `json:"tasks"`
}

// NewPhase returns a phase with the dashboard defaults and no tasks.
func NewPhase(id string) *Phase {
	return &Phase{
		ID:       id,
		Name:     DefaultPhaseName,
		Timeline: DefaultPhaseTimeline,
		Budget:   DefaultPhaseBudget,
		Status:   PhasePending,
		Tasks:    []*Task{},
	}
}

// Get returns the current value of a phase field.
func (p *Phase) Get(f Field) (string, bool) {
	switch f {
	case FieldName:
		return p.Name, true
	case FieldTimeline:
		return p.Timeline, true
	case FieldBudget:
		return p.Budget, true
	case FieldStatus:
		return string(p.Status), true
	}
	return "", false
}

// With returns a copy of p with field f set to value. The task slice is
// shared with p. It returns p itself and false when f is not a phase field,
// when value is not an accepted status, or when the value is unchanged.
func (p *Phase) With(f Field, value string) (*Phase, bool) {
	cur, ok := p.Get(f)
	if !ok || cur == value {
		return p, false
	}
	cp := *p
	switch f {
	case FieldName:
		cp.Name = value
	case FieldTimeline:
		cp.Timeline = value
	case FieldBudget:
		cp.Budget = value
	case FieldStatus:
		st := PhaseStatus(value)
		if !st.Valid() {
			return p, false
		}
		cp.Status = st
	}
	return &cp, true
}

// WithTasks returns a copy of p that owns the given task slice.
func (p *Phase) WithTasks(tasks []*Task) *Phase {
	cp := *p
	cp.Tasks = tasks
	return &cp
}

// TaskIndex returns the position of the task with the given id, or -1.
func (p *Phase) TaskIndex(taskID string) int {
	for i, t := range p.Tasks {
		if t.ID == taskID {
			return i
		}
	}
	return -1
}

// Task returns the task with the given id, or nil.
func (p *Phase) Task(taskID string) *Task {
	if i := p.TaskIndex(taskID); i >= 0 {
		return p.Tasks[i]
	}
	return nil
}
