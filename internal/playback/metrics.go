package playback

import (
	"time"

	"github.com/avolodin/sortlab/internal/step"
)

// Metrics accumulates counters over one playback cycle. It is reset
// when a cycle starts and is non-decreasing until the next reset. Once
// the cycle completes, the counters equal the producer's summary
// counters exactly.
type Metrics struct {
	Comparisons   int
	Swaps         int
	ArrayAccesses int
	StepsExecuted int
	StartTime     time.Time
	EndTime       time.Time
}

func (m *Metrics) Reset() { *m = Metrics{} }

// Elapsed returns the wall time of the cycle so far, or its final
// duration once EndTime is stamped.
func (m Metrics) Elapsed() time.Duration {
	if m.StartTime.IsZero() {
		return 0
	}
	if m.EndTime.IsZero() {
		return time.Since(m.StartTime)
	}
	return m.EndTime.Sub(m.StartTime)
}

// apply adds the counter deltas for one step. The deltas mirror the
// producer-side accounting (compare = 2 accesses, swap = 4, set = 2) so
// the running totals match the Result counters at completion.
func (m *Metrics) apply(s step.Step) {
	switch s.Action {
	case step.Compare:
		m.Comparisons++
		m.ArrayAccesses += 2
	case step.Swap:
		m.Swaps++
		m.ArrayAccesses += 4
	case step.Set:
		m.ArrayAccesses += 2
	}
}
