package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/workplan/internal/db"
	"github.com/alexanderramin/workplan/internal/domain"
)

const exportRecordColumns = `id, file_name, path, phase_count, task_count, size_bytes, sha256, exported_at`

// SQLiteExportRecordRepo implements ExportRecordRepo on SQLite.
type SQLiteExportRecordRepo struct {
	db db.DBTX
}

// NewSQLiteExportRecordRepo accepts a *sql.DB or a *sql.Tx.
func NewSQLiteExportRecordRepo(conn db.DBTX) *SQLiteExportRecordRepo {
	return &SQLiteExportRecordRepo{db: conn}
}

func (r *SQLiteExportRecordRepo) Create(ctx context.Context, rec *domain.ExportRecord) error {
	query := `INSERT INTO export_records (` + exportRecordColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.FileName,
		rec.Path,
		rec.PhaseCount,
		rec.TaskCount,
		rec.SizeBytes,
		rec.SHA256,
		formatTime(rec.ExportedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting export record: %w", err)
	}
	return nil
}

func (r *SQLiteExportRecordRepo) GetByID(ctx context.Context, id string) (*domain.ExportRecord, error) {
	query := `SELECT ` + exportRecordColumns + ` FROM export_records WHERE id = ?`
	rec, err := scanExportRecord(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("export record %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning export record: %w", err)
	}
	return rec, nil
}

func (r *SQLiteExportRecordRepo) ListRecent(ctx context.Context, limit int) ([]*domain.ExportRecord, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	query := `SELECT ` + exportRecordColumns + ` FROM export_records
		ORDER BY exported_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing export records: %w", err)
	}
	defer rows.Close()

	var records []*domain.ExportRecord
	for rows.Next() {
		rec, err := scanExportRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning export record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating export records: %w", err)
	}
	return records, nil
}

func (r *SQLiteExportRecordRepo) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	query := `DELETE FROM export_records WHERE rowid NOT IN (
		SELECT rowid FROM export_records ORDER BY exported_at DESC, rowid DESC LIMIT ?
	)`
	res, err := r.db.ExecContext(ctx, query, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning export records: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting pruned export records: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExportRecord(row rowScanner) (*domain.ExportRecord, error) {
	var rec domain.ExportRecord
	var exportedAt string
	err := row.Scan(
		&rec.ID, &rec.FileName, &rec.Path, &rec.PhaseCount, &rec.TaskCount,
		&rec.SizeBytes, &rec.SHA256, &exportedAt,
	)
	if err != nil {
		return nil, err
	}
	if rec.ExportedAt, err = parseTime(exportedAt); err != nil {
		return nil, err
	}
	return &rec, nil
}
