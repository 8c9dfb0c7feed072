package workplan

import (
	"testing"

	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AddTaskThenEditPriority(t *testing.T) {
	s := NewStore(Seed(), frozenIDs())
	before := s.Plan()

	newID := s.AddTask("2")
	require.NotEmpty(t, newID)
	require.True(t, s.EditField("2", newID, domain.FieldPriority, "low"))

	ph := s.Plan().Phase("2")
	require.Len(t, ph.Tasks, 3)
	added := ph.Tasks[2]
	assert.Equal(t, newID, added.ID)
	assert.Equal(t, domain.PriorityLow, added.Priority)
	assert.Equal(t, "Nueva tarea", added.Title)

	for _, id := range []string{"1", "3", "4"} {
		assert.Same(t, before.Phase(id), s.Plan().Phase(id), "phase %s", id)
	}
}

func TestStore_MovePhaseDownTwice(t *testing.T) {
	s := NewStore(Seed(), nil)
	require.True(t, s.MovePhase("1", domain.DirectionDown))
	require.True(t, s.MovePhase("1", domain.DirectionDown))
	assert.Equal(t, []string{"2", "3", "1", "4"}, s.Plan().IDs())
}

func TestStore_NoOpsKeepSnapshot(t *testing.T) {
	s := NewStore(Seed(), nil)
	before := s.Plan()

	assert.False(t, s.MovePhase("1", domain.DirectionUp))
	assert.False(t, s.DeletePhase("nope"))
	assert.False(t, s.DeleteTask("1", "nope"))
	assert.False(t, s.EditField("nope", "", domain.FieldName, "x"))
	assert.Empty(t, s.AddTask("nope"))

	for i, ph := range before.Phases() {
		assert.Same(t, ph, s.Plan().Phases()[i])
	}
}

func TestStore_AddPhaseThenTasks(t *testing.T) {
	s := NewStore(NewPlan(), frozenIDs())

	phaseID := s.AddPhase()
	t1 := s.AddTask(phaseID)
	t2 := s.AddTask(phaseID)

	assert.NotEqual(t, t1, t2)
	assert.Equal(t, 1, s.Plan().Len())
	assert.Equal(t, 2, s.Plan().TaskCount())

	require.True(t, s.DeletePhase(phaseID))
	assert.Equal(t, 0, s.Plan().Len())
	assert.Equal(t, 0, s.Plan().TaskCount())
}

func TestSeed_FreshEachCall(t *testing.T) {
	a, b := Seed(), Seed()
	assert.Equal(t, a.Phases(), b.Phases())
	assert.NotSame(t, a.Phase("1"), b.Phase("1"))
	assert.Equal(t, []string{"1", "2", "3", "4"}, a.IDs())
	assert.Equal(t, 6, a.TaskCount())
}
