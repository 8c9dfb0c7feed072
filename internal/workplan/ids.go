package workplan

import (
	"strconv"
	"time"
)

// IDGenerator hands out identifiers for new phases and tasks.
type IDGenerator interface {
	NextID() string
}

// ClockIDs derives ids from the wall clock in milliseconds. Ids are strictly
// increasing: two calls inside the same millisecond (or a clock that moves
// backwards) still yield distinct values.
type ClockIDs struct {
	now  func() time.Time
	last int64
}

// NewClockIDs returns a generator reading time from now. A nil now uses
// time.Now.
func NewClockIDs(now func() time.Time) *ClockIDs {
	if now == nil {
		now = time.Now
	}
	return &ClockIDs{now: now}
}

func (g *ClockIDs) NextID() string {
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}

// taskID scopes a generated suffix under its phase.
func taskID(phaseID, suffix string) string {
	return phaseID + "-" + suffix
}
