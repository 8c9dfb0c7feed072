package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/google/uuid"
)

var testIDCounter atomic.Int64

func nextTestID() string {
	return fmt.Sprintf("%d", testIDCounter.Add(1))
}

// Phase options
type PhaseOption func(*domain.Phase)

func WithPhaseStatus(s domain.PhaseStatus) PhaseOption {
	return func(p *domain.Phase) {
		p.Status = s
	}
}

// WithTasks appends tasks; tasks without an id get one scoped to the phase.
func WithTasks(tasks ...*domain.Task) PhaseOption {
	return func(p *domain.Phase) {
		for _, t := range tasks {
			if t.ID == "" {
				t.ID = p.ID + "-" + nextTestID()
			}
			p.Tasks = append(p.Tasks, t)
		}
	}
}

func NewTestPhase(name string, opts ...PhaseOption) *domain.Phase {
	p := domain.NewPhase(nextTestID())
	p.Name = name
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithPriority(pr domain.TaskPriority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = pr
	}
}

func WithOwner(owner string) TaskOption {
	return func(t *domain.Task) {
		t.Owner = owner
	}
}

// NewTestTask returns a task without an id; WithTasks assigns one.
func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	t := domain.NewTask("")
	t.Title = title
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ExportRecord options
type ExportRecordOption func(*domain.ExportRecord)

func WithExportedAt(ts time.Time) ExportRecordOption {
	return func(r *domain.ExportRecord) {
		r.ExportedAt = ts
	}
}

func WithCounts(phases, tasks int) ExportRecordOption {
	return func(r *domain.ExportRecord) {
		r.PhaseCount = phases
		r.TaskCount = tasks
	}
}

func NewTestExportRecord(fileName string, opts ...ExportRecordOption) *domain.ExportRecord {
	r := &domain.ExportRecord{
		ID:         uuid.New().String(),
		FileName:   fileName,
		Path:       "/tmp/" + fileName,
		PhaseCount: 4,
		TaskCount:  6,
		SizeBytes:  1024,
		SHA256:     "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		ExportedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
