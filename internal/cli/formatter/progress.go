package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders done out of total as a bar like [████░░░░] 2/4.
// The bar is green once more than two thirds are done, yellow from one
// third, red below.
func RenderProgress(done, total, width int) string {
	if width < 2 {
		width = 2
	}
	pct := 0.0
	if total > 0 {
		pct = float64(min(max(done, 0), total)) / float64(total)
	}

	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), done, total)
}
