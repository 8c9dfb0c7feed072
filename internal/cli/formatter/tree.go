package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem represents a single node in a tree display.
type TreeItem struct {
	Title  string
	Level  int
	IsLast bool
	// Status is a phase status value; "completed" and "in_progress" are
	// decorated, anything else renders plain.
	Status string
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders TreeItems as an indented tree using box-drawing
// connectors. Completed items get a green ✔ prefix, in-progress items an
// amber ▶ prefix, and details are right-aligned in a dim column.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		detail  string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	for idx, item := range items {
		var prefix string
		if item.Level > 0 {
			prefix = strings.Repeat(treePipe, item.Level-1)
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		title := item.Title
		statusPrefix := ""
		switch item.Status {
		case "completed":
			statusPrefix = StyleGreen.Render("✔ ")
			title = Dim(title)
		case "in_progress":
			statusPrefix = StyleYellowBold.Render("▶ ")
			title = StyleYellowBold.Render(title)
		}

		content := StyleDim.Render(prefix) + statusPrefix + title
		lines[idx].content = content
		if item.Detail != "" {
			lines[idx].detail = StyleDim.Render(item.Detail)
		}
		maxContentWidth = max(maxContentWidth, lipgloss.Width(content))
	}

	var b strings.Builder
	for _, li := range lines {
		if li.detail == "" {
			b.WriteString(li.content + "\n")
			continue
		}
		pad := maxContentWidth - lipgloss.Width(li.content)
		b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.detail + "\n")
	}
	return b.String()
}
