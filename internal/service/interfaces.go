package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/workplan"
)

// ErrHistoryDisabled is returned by History when no history database is
// configured.
var ErrHistoryDisabled = errors.New("export history is disabled")

// ErrAmbiguousID is returned by Record when a short id matches more than
// one export.
var ErrAmbiguousID = errors.New("ambiguous export id")

type PlanService interface {
	// Snapshot returns the current immutable plan.
	Snapshot() workplan.Plan
	Dispatch(ctx context.Context, a workplan.Action) workplan.Result
}

type ExportService interface {
	// Export writes plan to a dated file and, when history is enabled,
	// records it. If the file was written but recording failed, both the
	// record and the error are returned.
	Export(ctx context.Context, plan workplan.Plan, now time.Time) (*domain.ExportRecord, error)
	History(ctx context.Context, limit int) ([]*domain.ExportRecord, error)
	// Record looks up one export by id or by an unambiguous id prefix.
	Record(ctx context.Context, id string) (*domain.ExportRecord, error)
}
