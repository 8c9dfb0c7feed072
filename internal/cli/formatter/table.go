package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column describes one table column. Right-aligned columns suit counts.
type Column struct {
	Title string
	Right bool
}

const colGap = 2

// RenderTable renders an aligned table with a header separator line. Widths
// are measured on visible text, so cells may carry ANSI styling.
func RenderTable(cols []Column, rows [][]string) string {
	if len(cols) == 0 {
		return ""
	}

	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = lipgloss.Width(c.Title)
	}
	for _, row := range rows {
		for i := 0; i < len(cols) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i, c := range cols {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", max(0, widths[i]-lipgloss.Width(cell)))
			styled := style(cell)
			last := i == len(cols)-1
			switch {
			case c.Right:
				b.WriteString(pad + styled)
			case last:
				b.WriteString(styled)
			default:
				b.WriteString(styled + pad)
			}
			if !last {
				b.WriteString(strings.Repeat(" ", colGap))
			}
		}
		b.WriteString("\n")
	}

	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.Title
	}
	writeRow(titles, func(s string) string { return StyleHeader.Render(s) })

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		writeRow(row, func(s string) string { return s })
	}
	return b.String()
}
