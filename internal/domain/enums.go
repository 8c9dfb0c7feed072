package domain

import "fmt"

type PhaseStatus string

const (
	PhasePending    PhaseStatus = "pending"
	PhaseInProgress PhaseStatus = "in_progress"
	PhaseCompleted  PhaseStatus = "completed"
)

// PhaseStatuses lists the accepted phase statuses in display order.
var PhaseStatuses = []PhaseStatus{PhasePending, PhaseInProgress, PhaseCompleted}

// Valid reports whether s is one of the enumerated phase statuses.
func (s PhaseStatus) Valid() bool {
	switch s {
	case PhasePending, PhaseInProgress, PhaseCompleted:
		return true
	}
	return false
}

// Next returns the status that follows s in display order, wrapping around.
func (s PhaseStatus) Next() PhaseStatus {
	for i, st := range PhaseStatuses {
		if st == s {
			return PhaseStatuses[(i+1)%len(PhaseStatuses)]
		}
	}
	return PhasePending
}

// ParsePhaseStatus converts a raw string into a PhaseStatus.
func ParsePhaseStatus(raw string) (PhaseStatus, error) {
	s := PhaseStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q (want pending|in_progress|completed)", ErrInvalidStatus, raw)
	}
	return s, nil
}

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

// TaskPriorities lists the accepted task priorities in display order.
var TaskPriorities = []TaskPriority{PriorityHigh, PriorityMedium, PriorityLow}

// Valid reports whether p is one of the enumerated priorities.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Next returns the priority that follows p in display order, wrapping around.
func (p TaskPriority) Next() TaskPriority {
	for i, pr := range TaskPriorities {
		if pr == p {
			return TaskPriorities[(i+1)%len(TaskPriorities)]
		}
	}
	return PriorityMedium
}

// ParseTaskPriority converts a raw string into a TaskPriority.
func ParseTaskPriority(raw string) (TaskPriority, error) {
	p := TaskPriority(raw)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q (want high|medium|low)", ErrInvalidPriority, raw)
	}
	return p, nil
}

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)
