package formatter

import (
	"strings"

	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/workplan"
)

// CompletedPhases counts phases whose status is completed.
func CompletedPhases(p workplan.Plan) int {
	n := 0
	for _, ph := range p.Phases() {
		if ph.Status == domain.PhaseCompleted {
			n++
		}
	}
	return n
}

// FormatPlan renders the plan as a phase/task tree under a title header.
func FormatPlan(title, subtitle string, p workplan.Plan) string {
	var b strings.Builder
	b.WriteString(Header(title) + "\n")
	if subtitle != "" {
		b.WriteString(Dim(subtitle) + "\n")
	}
	b.WriteString("\n")

	if p.Len() == 0 {
		b.WriteString(Dim("Sin fases. Abre el dashboard y pulsa n para crear una.") + "\n")
		return b.String()
	}

	b.WriteString("Fases completadas " + RenderProgress(CompletedPhases(p), p.Len(), 20) + "\n\n")

	var items []TreeItem
	for _, ph := range p.Phases() {
		items = append(items, TreeItem{
			Title:  Bold(ph.Name),
			Status: string(ph.Status),
			Detail: joinDetail(ph.Timeline, ph.Budget, StatusLabel(ph.Status)),
		})
		for i, t := range ph.Tasks {
			items = append(items, TreeItem{
				Title:  PriorityColor(t.Priority).Render("●") + " " + t.Title,
				Level:  1,
				IsLast: i == len(ph.Tasks)-1,
				Detail: joinDetail(t.Duration, t.Owner, PriorityLabel(t.Priority)),
			})
		}
	}
	b.WriteString(RenderTree(items))
	return b.String()
}

func joinDetail(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " · ")
}
