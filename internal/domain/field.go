package domain

// Field names an editable attribute of a Phase or a Task. The string values
// match the JSON keys of the exported document.
type Field string

const (
	FieldName     Field = "name"
	FieldTimeline Field = "timeline"
	FieldBudget   Field = "budget"
	FieldStatus   Field = "status"

	FieldTitle    Field = "title"
	FieldDuration Field = "duration"
	FieldOwner    Field = "owner"
	FieldPriority Field = "priority"
)

// PhaseFields are the editable phase attributes, in form order.
var PhaseFields = []Field{FieldName, FieldTimeline, FieldBudget, FieldStatus}

// TaskFields are the editable task attributes, in form order.
var TaskFields = []Field{FieldTitle, FieldDuration, FieldOwner, FieldPriority}

// IsPhaseField reports whether f targets a phase.
func (f Field) IsPhaseField() bool {
	switch f {
	case FieldName, FieldTimeline, FieldBudget, FieldStatus:
		return true
	}
	return false
}

// IsTaskField reports whether f targets a task.
func (f Field) IsTaskField() bool {
	switch f {
	case FieldTitle, FieldDuration, FieldOwner, FieldPriority:
		return true
	}
	return false
}
