package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/workplan/internal/domain"
)

// ErrNotFound is returned when a lookup by id matches no row.
var ErrNotFound = errors.New("not found")

type ExportRecordRepo interface {
	Create(ctx context.Context, r *domain.ExportRecord) error
	GetByID(ctx context.Context, id string) (*domain.ExportRecord, error)
	// ListRecent returns up to limit records, newest first. limit <= 0 means all.
	ListRecent(ctx context.Context, limit int) ([]*domain.ExportRecord, error)
	// Prune deletes all but the newest keep records and reports how many went.
	Prune(ctx context.Context, keep int) (int64, error)
}
