// Package workplan holds the canonical, immutable state of the dashboard: an
// ordered list of phases and the single update function that derives the next
// state from an action.
//
// Plans are values. Every mutation produces a new Plan whose unchanged phases
// (and unchanged task slices) are the very same pointers as in the previous
// Plan, so callers can compare subtrees by identity.
package workplan

import (
	"bytes"
	"encoding/json"
	"slices"

	"github.com/alexanderramin/workplan/internal/domain"
)

// Plan is an immutable snapshot of the work plan.
type Plan struct {
	phases []*domain.Phase
}

// NewPlan builds a plan from phases. The slice is copied; the phases are not.
func NewPlan(phases ...*domain.Phase) Plan {
	return Plan{phases: slices.Clone(phases)}
}

// Phases returns the ordered phases. The returned slice may be modified by the
// caller; the phases it points to must not be.
func (p Plan) Phases() []*domain.Phase {
	return slices.Clone(p.phases)
}

// Len returns the number of phases.
func (p Plan) Len() int { return len(p.phases) }

// TaskCount returns the total number of tasks across all phases.
func (p Plan) TaskCount() int {
	n := 0
	for _, ph := range p.phases {
		n += len(ph.Tasks)
	}
	return n
}

// Index returns the position of the phase with the given id, or -1.
func (p Plan) Index(phaseID string) int {
	return slices.IndexFunc(p.phases, func(ph *domain.Phase) bool { return ph.ID == phaseID })
}

// Phase returns the phase with the given id, or nil.
func (p Plan) Phase(phaseID string) *domain.Phase {
	if i := p.Index(phaseID); i >= 0 {
		return p.phases[i]
	}
	return nil
}

// IDs returns the phase ids in order.
func (p Plan) IDs() []string {
	ids := make([]string, len(p.phases))
	for i, ph := range p.phases {
		ids[i] = ph.ID
	}
	return ids
}

// MarshalJSON encodes the plan as the bare array of phases.
func (p Plan) MarshalJSON() ([]byte, error) {
	phases := p.phases
	if phases == nil {
		phases = []*domain.Phase{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(phases); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON decodes an array of phases.
func (p *Plan) UnmarshalJSON(data []byte) error {
	var phases []*domain.Phase
	if err := json.Unmarshal(data, &phases); err != nil {
		return err
	}
	for _, ph := range phases {
		if ph != nil && ph.Tasks == nil {
			ph.Tasks = []*domain.Task{}
		}
	}
	p.phases = phases
	return nil
}
