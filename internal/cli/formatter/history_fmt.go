package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/workplan/internal/domain"
)

// FormatHistory renders export records, newest first, as a table.
func FormatHistory(records []*domain.ExportRecord, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Export history") + "\n\n")
	if len(records) == 0 {
		b.WriteString(Dim("No exports recorded yet.") + "\n")
		return b.String()
	}

	cols := []Column{
		{Title: "ID"},
		{Title: "FILE"},
		{Title: "PHASES", Right: true},
		{Title: "TASKS", Right: true},
		{Title: "SIZE", Right: true},
		{Title: "EXPORTED"},
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			TruncID(r.ID),
			r.FileName,
			strconv.Itoa(r.PhaseCount),
			strconv.Itoa(r.TaskCount),
			FormatBytes(r.SizeBytes),
			HumanTimestampFrom(r.ExportedAt, now),
		})
	}
	b.WriteString(RenderTable(cols, rows))
	return b.String()
}

// FormatExportRecord renders one export record as a boxed detail card.
func FormatExportRecord(r *domain.ExportRecord, now time.Time) string {
	lines := []string{
		detailLine("ID", r.ID),
		detailLine("File", r.FileName),
		detailLine("Path", r.Path),
		detailLine("Phases", strconv.Itoa(r.PhaseCount)),
		detailLine("Tasks", strconv.Itoa(r.TaskCount)),
		detailLine("Size", FormatBytes(r.SizeBytes)),
		detailLine("SHA-256", r.SHA256),
		detailLine("Exported", fmt.Sprintf("%s (%s)",
			r.ExportedAt.UTC().Format("2006-01-02 15:04:05 UTC"),
			HumanTimestampFrom(r.ExportedAt, now))),
	}
	return RenderBox("Export", strings.Join(lines, "\n")) + "\n"
}

func detailLine(label, value string) string {
	return Dim(fmt.Sprintf("%-9s", label)) + " " + value
}
