// Package playback owns the step-execution state machine: it
// materializes a step list from the selected producer, walks it under a
// cancellable timer, and feeds each step to the renderer and to any
// subscribed observers. The step list and cursor belong exclusively to
// the controller; nothing else mutates them.
package playback

// State is the playback lifecycle state.
//
// Valid transitions:
//   - Idle      → Playing   (Start)
//   - Playing   → Paused    (Pause, StepOnce)
//   - Paused    → Playing   (Resume, Start)
//   - Playing   → Completed (step list exhausted)
//   - any state → Idle      (Reset)
//
// Invalid transitions (Pause when not playing, Resume when not paused)
// are no-ops, not errors.
type State int

const (
	Idle State = iota
	Playing
	Paused
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// CanPause reports whether Pause has any effect in this state.
func (s State) CanPause() bool { return s == Playing }

// CanResume reports whether Resume has any effect in this state.
func (s State) CanResume() bool { return s == Paused }
