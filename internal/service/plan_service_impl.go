package service

import (
	"context"
	"time"

	"github.com/alexanderramin/workplan/internal/workplan"
)

type planService struct {
	store    *workplan.Store
	observer UseCaseObserver
}

func NewPlanService(store *workplan.Store, observers ...UseCaseObserver) PlanService {
	return &planService{
		store:    store,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Snapshot() workplan.Plan {
	return s.store.Plan()
}

func (s *planService) Dispatch(ctx context.Context, a workplan.Action) workplan.Result {
	startedAt := time.Now().UTC()
	res := s.store.Dispatch(a)

	fields := actionFields(a)
	fields["changed"] = res.Changed
	fields["phase_count"] = res.Plan.Len()
	if res.CreatedID != "" {
		fields["created_id"] = res.CreatedID
	}
	name := "noop"
	if a != nil {
		name = a.Kind()
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   true,
		Fields:    fields,
	})
	return res
}

func actionFields(a workplan.Action) map[string]any {
	fields := map[string]any{}
	switch a := a.(type) {
	case workplan.EditField:
		fields["phase_id"] = a.PhaseID
		if a.TaskID != "" {
			fields["task_id"] = a.TaskID
		}
		fields["field"] = string(a.Field)
	case workplan.AddTask:
		fields["phase_id"] = a.PhaseID
	case workplan.DeleteTask:
		fields["phase_id"] = a.PhaseID
		fields["task_id"] = a.TaskID
	case workplan.DeletePhase:
		fields["phase_id"] = a.PhaseID
	case workplan.MovePhase:
		fields["phase_id"] = a.PhaseID
		fields["direction"] = string(a.Direction)
	}
	return fields
}
