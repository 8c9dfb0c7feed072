package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/workplan/internal/db"
	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/export"
	"github.com/alexanderramin/workplan/internal/repository"
	"github.com/alexanderramin/workplan/internal/workplan"
	"github.com/google/uuid"
)

// minIDPrefix is the shortest id prefix Record will try to resolve.
const minIDPrefix = 4

type exportService struct {
	dir      string
	records  repository.ExportRecordRepo
	uow      db.UnitOfWork
	keep     int
	observer UseCaseObserver
}

// NewExportService writes exports into dir. History is recorded only when
// both records and uow are non-nil; keep bounds how many records survive.
func NewExportService(
	dir string,
	records repository.ExportRecordRepo,
	uow db.UnitOfWork,
	keep int,
	observers ...UseCaseObserver,
) ExportService {
	return &exportService{
		dir:      dir,
		records:  records,
		uow:      uow,
		keep:     keep,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *exportService) historyEnabled() bool {
	return s.records != nil && s.uow != nil
}

func (s *exportService) Export(ctx context.Context, plan workplan.Plan, now time.Time) (rec *domain.ExportRecord, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"phase_count": plan.Len(),
		"task_count":  plan.TaskCount(),
	}
	defer func() {
		if rec != nil {
			fields["path"] = rec.Path
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "export",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	data, err := export.Marshal(plan)
	if err != nil {
		return nil, err
	}
	path, err := export.WriteFile(s.dir, export.FileName(now), data)
	if err != nil {
		return nil, fmt.Errorf("exporting plan: %w", err)
	}

	sum := sha256.Sum256(data)
	rec = &domain.ExportRecord{
		ID:         uuid.New().String(),
		FileName:   filepath.Base(path),
		Path:       path,
		PhaseCount: plan.Len(),
		TaskCount:  plan.TaskCount(),
		SizeBytes:  int64(len(data)),
		SHA256:     hex.EncodeToString(sum[:]),
		ExportedAt: now.UTC(),
	}

	if !s.historyEnabled() || s.keep == 0 {
		return rec, nil
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRecords := repository.NewSQLiteExportRecordRepo(tx)
		if err := txRecords.Create(ctx, rec); err != nil {
			return err
		}
		pruned, err := txRecords.Prune(ctx, s.keep)
		if err != nil {
			return err
		}
		fields["pruned"] = pruned
		return nil
	})
	if err != nil {
		return rec, fmt.Errorf("exported to %s but recording history failed: %w", path, err)
	}
	return rec, nil
}

func (s *exportService) History(ctx context.Context, limit int) ([]*domain.ExportRecord, error) {
	if !s.historyEnabled() {
		return nil, ErrHistoryDisabled
	}
	return s.records.ListRecent(ctx, limit)
}

func (s *exportService) Record(ctx context.Context, id string) (*domain.ExportRecord, error) {
	if !s.historyEnabled() {
		return nil, ErrHistoryDisabled
	}
	rec, err := s.records.GetByID(ctx, id)
	if !errors.Is(err, repository.ErrNotFound) || len(id) < minIDPrefix {
		return rec, err
	}

	// History lists truncated ids; resolve those against the stored ones.
	all, listErr := s.records.ListRecent(ctx, 0)
	if listErr != nil {
		return nil, listErr
	}
	var match *domain.ExportRecord
	for _, r := range all {
		if !strings.HasPrefix(r.ID, id) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("export record %s: %w", id, ErrAmbiguousID)
		}
		match = r
	}
	if match == nil {
		return nil, err
	}
	return match, nil
}
