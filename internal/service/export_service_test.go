package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/export"
	"github.com/alexanderramin/workplan/internal/repository"
	"github.com/alexanderramin/workplan/internal/testutil"
	"github.com/alexanderramin/workplan/internal/workplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exportNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func TestExportService_WritesFileAndRecordsHistory(t *testing.T) {
	database := testutil.NewTestDB(t)
	records := repository.NewSQLiteExportRecordRepo(database)
	dir := t.TempDir()
	obs := &recordingObserver{}
	svc := NewExportService(dir, records, testutil.NewTestUoW(database), 10, obs)
	ctx := context.Background()

	plan := workplan.Seed()
	rec, err := svc.Export(ctx, plan, exportNow)
	require.NoError(t, err)

	assert.Equal(t, "workplan-2025-03-14.json", rec.FileName)
	assert.Equal(t, filepath.Join(dir, rec.FileName), rec.Path)
	assert.Equal(t, 4, rec.PhaseCount)
	assert.Equal(t, 6, rec.TaskCount)

	data, err := os.ReadFile(rec.Path)
	require.NoError(t, err)
	want, err := export.Marshal(plan)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(data))
	assert.Equal(t, int64(len(data)), rec.SizeBytes)
	sum := sha256.Sum256(data)
	assert.Equal(t, hex.EncodeToString(sum[:]), rec.SHA256)

	history, err := svc.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, rec.ID, history[0].ID)
	assert.True(t, history[0].ExportedAt.Equal(exportNow))

	ev := obs.last()
	assert.Equal(t, "export", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, rec.Path, ev.Fields["path"])
}

func TestExportService_SameDayExportsDoNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	svc := NewExportService(dir, nil, nil, 0)
	ctx := context.Background()

	first, err := svc.Export(ctx, workplan.Seed(), exportNow)
	require.NoError(t, err)
	second, err := svc.Export(ctx, workplan.NewPlan(), exportNow)
	require.NoError(t, err)

	assert.Equal(t, "workplan-2025-03-14.json", first.FileName)
	assert.Equal(t, "workplan-2025-03-14-1.json", second.FileName)

	data, err := os.ReadFile(second.Path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestExportService_PrunesToKeep(t *testing.T) {
	database := testutil.NewTestDB(t)
	records := repository.NewSQLiteExportRecordRepo(database)
	svc := NewExportService(t.TempDir(), records, testutil.NewTestUoW(database), 2)
	ctx := context.Background()

	var ids []string
	for i := range 4 {
		rec, err := svc.Export(ctx, workplan.Seed(), exportNow.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
		ids = append(ids, rec.ID)
	}

	history, err := svc.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, ids[3], history[0].ID)
	assert.Equal(t, ids[2], history[1].ID)
}

func TestExportService_HistoryDisabled(t *testing.T) {
	svc := NewExportService(t.TempDir(), nil, nil, 50)

	rec, err := svc.Export(context.Background(), workplan.Seed(), exportNow)
	require.NoError(t, err)
	assert.FileExists(t, rec.Path)

	_, err = svc.History(context.Background(), 10)
	assert.ErrorIs(t, err, ErrHistoryDisabled)
}

func TestExportService_HistoryFailureKeepsFileAndRollsBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	records := repository.NewSQLiteExportRecordRepo(database)

	// ExecContext #1 = insert, #2 = prune
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 2,
		Err:    fmt.Errorf("injected prune failure"),
	}
	obs := &recordingObserver{}
	svc := NewExportService(t.TempDir(), records, failUoW, 5, obs)
	ctx := context.Background()

	rec, err := svc.Export(ctx, workplan.Seed(), exportNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected prune failure")
	require.NotNil(t, rec, "the written file must still be reported")
	assert.FileExists(t, rec.Path)
	assert.Contains(t, err.Error(), rec.Path)

	history, err := records.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, history, "insert should be rolled back with the prune")

	assert.False(t, obs.last().Success)
}

func TestExportService_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	svc := NewExportService(blocker, nil, nil, 0)
	rec, err := svc.Export(context.Background(), workplan.Seed(), exportNow)
	require.Error(t, err)
	assert.Nil(t, rec)
	assert.Contains(t, err.Error(), "exporting plan")
}

func TestExportService_RecordByIDAndPrefix(t *testing.T) {
	database := testutil.NewTestDB(t)
	records := repository.NewSQLiteExportRecordRepo(database)
	svc := NewExportService(t.TempDir(), records, testutil.NewTestUoW(database), 10)
	ctx := context.Background()

	rec, err := svc.Export(ctx, workplan.Seed(), exportNow)
	require.NoError(t, err)

	got, err := svc.Record(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.FileName, got.FileName)

	got, err = svc.Record(ctx, rec.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)

	_, err = svc.Record(ctx, "ffffffff-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Record(ctx, rec.ID[:2])
	assert.ErrorIs(t, err, repository.ErrNotFound, "prefixes shorter than four characters are not resolved")
}

func TestExportService_RecordAmbiguousPrefix(t *testing.T) {
	database := testutil.NewTestDB(t)
	records := repository.NewSQLiteExportRecordRepo(database)
	svc := NewExportService(t.TempDir(), records, testutil.NewTestUoW(database), 10)
	ctx := context.Background()

	for _, id := range []string{"abcd1111-0000-0000-0000-000000000001", "abcd2222-0000-0000-0000-000000000002"} {
		require.NoError(t, records.Create(ctx, &domain.ExportRecord{
			ID:         id,
			FileName:   "workplan-2025-03-14.json",
			Path:       "/tmp/workplan-2025-03-14.json",
			ExportedAt: exportNow,
		}))
	}

	_, err := svc.Record(ctx, "abcd")
	assert.ErrorIs(t, err, ErrAmbiguousID)

	got, err := svc.Record(ctx, "abcd2")
	require.NoError(t, err)
	assert.Equal(t, "abcd2222-0000-0000-0000-000000000002", got.ID)
}

func TestExportService_RecordHistoryDisabled(t *testing.T) {
	svc := NewExportService(t.TempDir(), nil, nil, 0)

	_, err := svc.Record(context.Background(), "abcd")
	assert.ErrorIs(t, err, ErrHistoryDisabled)
}
