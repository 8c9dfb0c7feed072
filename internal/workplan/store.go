package workplan

import "github.com/alexanderramin/workplan/internal/domain"

// Store owns the current Plan and applies actions to it one at a time.
// It is not safe for concurrent use; the dashboard only touches it from its
// update loop and hands immutable Plan snapshots to anything else.
type Store struct {
	plan Plan
	ids  IDGenerator
}

// NewStore returns a store starting at initial. A nil ids uses wall-clock ids.
func NewStore(initial Plan, ids IDGenerator) *Store {
	if ids == nil {
		ids = NewClockIDs(nil)
	}
	return &Store{plan: initial, ids: ids}
}

// Plan returns the current snapshot.
func (s *Store) Plan() Plan { return s.plan }

// Dispatch reduces a against the current plan and stores the result.
func (s *Store) Dispatch(a Action) Result {
	res := Reduce(s.plan, a, s.ids)
	s.plan = res.Plan
	return res
}

func (s *Store) EditField(phaseID, taskID string, field domain.Field, value string) bool {
	return s.Dispatch(EditField{PhaseID: phaseID, TaskID: taskID, Field: field, Value: value}).Changed
}

// AddPhase returns the id of the new phase.
func (s *Store) AddPhase() string {
	return s.Dispatch(AddPhase{}).CreatedID
}

// AddTask returns the id of the new task, or "" if the phase does not exist.
func (s *Store) AddTask(phaseID string) string {
	return s.Dispatch(AddTask{PhaseID: phaseID}).CreatedID
}

func (s *Store) DeleteTask(phaseID, taskID string) bool {
	return s.Dispatch(DeleteTask{PhaseID: phaseID, TaskID: taskID}).Changed
}

func (s *Store) DeletePhase(phaseID string) bool {
	return s.Dispatch(DeletePhase{PhaseID: phaseID}).Changed
}

func (s *Store) MovePhase(phaseID string, dir domain.Direction) bool {
	return s.Dispatch(MovePhase{PhaseID: phaseID, Direction: dir}).Changed
}
