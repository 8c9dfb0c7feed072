package domain

// DefaultTaskTitle is the title given to a freshly added task.
const DefaultTaskTitle = "Nueva tarea"

// Task is a unit of work inside a phase. Its ID is unique within the owning
// phase only.
type Task struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Duration string       `json:"duration"`
	Owner    string       `json:"owner"`
	Priority TaskPriority `json:"priority"`
}

// NewTask returns a task with the dashboard defaults.
func NewTask(id string) *Task {
	return &Task{
		ID:       id,
		Title:    DefaultTaskTitle,
		Priority: PriorityMedium,
	}
}

// Get returns the current value of a task field.
func (t *Task) Get(f Field) (string, bool) {
	switch f {
	case FieldTitle:
		return t.Title, true
	case FieldDuration:
		return t.Duration, true
	case FieldOwner:
		return t.Owner, true
	case FieldPriority:
		return string(t.Priority), true
	}
	return "", false
}

// With returns a copy of t with field f set to value, or t and false when
// nothing would change.
func (t *Task) With(f Field, value string) (*Task, bool) {
	cur, ok := t.Get(f)
	if !ok || cur == value {
		return t, false
	}
	cp := *t
	switch f {
	case FieldTitle:
		cp.Title = value
	case FieldDuration:
		cp.Duration = value
	case FieldOwner:
		cp.Owner = value
	case FieldPriority:
		pr := TaskPriority(value)
		if !pr.Valid() {
			return t, false
		}
		cp.Priority = pr
	}
	return &cp, true
}
