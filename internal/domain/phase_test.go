package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhase_Defaults(t *testing.T) {
	p := NewPhase("42")
	assert.Equal(t, "42", p.ID)
	assert.Equal(t, "Nueva Fase", p.Name)
	assert.Equal(t, "TBD", p.Timeline)
	assert.Equal(t, "€0", p.Budget)
	assert.Equal(t, PhasePending, p.Status)
	require.NotNil(t, p.Tasks)
	assert.Empty(t, p.Tasks)
}

func TestPhaseWith_CopiesAndSharesTasks(t *testing.T) {
	orig := NewPhase("1")
	orig.Tasks = []*Task{NewTask("1-1")}

	updated, changed := orig.With(FieldBudget, "€99,000")
	require.True(t, changed)
	assert.NotSame(t, orig, updated)
	assert.Equal(t, "€99,000", updated.Budget)
	assert.Equal(t, "€0", orig.Budget, "original must not change")
	assert.Same(t, orig.Tasks[0], updated.Tasks[0])
}

func TestPhaseWith_NoChange(t *testing.T) {
	orig := NewPhase("1")

	cases := []struct {
		name  string
		field Field
		value string
	}{
		{"same value", FieldName, DefaultPhaseName},
		{"task field", FieldOwner, "someone"},
		{"unknown field", Field("color"), "red"},
		{"invalid status", FieldStatus, "blocked"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, changed := orig.With(tc.field, tc.value)
			assert.False(t, changed)
			assert.Same(t, orig, got)
		})
	}
}

func TestPhaseWith_AcceptsArbitraryText(t *testing.T) {
	p, changed := NewPhase("1").With(FieldTimeline, "  <b>whenever</b> \n")
	require.True(t, changed)
	assert.Equal(t, "  <b>whenever</b> \n", p.Timeline)
}

func TestPhaseWith_Status(t *testing.T) {
	p, changed := NewPhase("1").With(FieldStatus, "completed")
	require.True(t, changed)
	assert.Equal(t, PhaseCompleted, p.Status)
}

func TestPhaseTaskLookup(t *testing.T) {
	p := NewPhase("1")
	p.Tasks = []*Task{NewTask("1-1"), NewTask("1-2")}

	assert.Equal(t, 1, p.TaskIndex("1-2"))
	assert.Equal(t, -1, p.TaskIndex("9-9"))
	assert.Same(t, p.Tasks[0], p.Task("1-1"))
	assert.Nil(t, p.Task("nope"))
}

func TestNewTask_Defaults(t *testing.T) {
	task := NewTask("2-1")
	assert.Equal(t, "Nueva tarea", task.Title)
	assert.Empty(t, task.Duration)
	assert.Empty(t, task.Owner)
	assert.Equal(t, PriorityMedium, task.Priority)
}

func TestTaskWith(t *testing.T) {
	orig := NewTask("2-1")

	updated, changed := orig.With(FieldPriority, "low")
	require.True(t, changed)
	assert.Equal(t, PriorityLow, updated.Priority)
	assert.Equal(t, PriorityMedium, orig.Priority)

	_, changed = orig.With(FieldPriority, "urgent")
	assert.False(t, changed)

	_, changed = orig.With(FieldName, "phase field")
	assert.False(t, changed)

	owned, changed := orig.With(FieldOwner, "Analista")
	require.True(t, changed)
	assert.Equal(t, "Analista", owned.Owner)
	assert.Equal(t, orig.Title, owned.Title)
}
