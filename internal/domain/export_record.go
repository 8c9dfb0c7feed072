package domain

import "time"

// ExportRecord is the history entry written each time the plan is exported.
// It describes the file, not the plan content.
type ExportRecord struct {
	ID         string
	FileName   string
	Path       string
	PhaseCount int
	TaskCount  int
	SizeBytes  int64
	SHA256     string
	ExportedAt time.Time
}
