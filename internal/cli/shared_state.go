package cli

import "github.com/alexanderramin/workplan/internal/workplan"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int
}

// Plan returns the current plan snapshot.
func (s *SharedState) Plan() workplan.Plan {
	return s.App.Plan.Snapshot()
}

// ContentHeight returns the available height for view content,
// accounting for header (3 lines: title, subtitle, separator),
// the flash line, and status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 6
	if h < 1 {
		return 1
	}
	return h
}
