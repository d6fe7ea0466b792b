// Package viewer provides an interactive terminal browser over generated layouts.
package viewer

// State represents what the viewer is currently showing.
type State int

const (
	// StateLayout shows a generated layout.
	StateLayout State = iota
	// StateFailed shows why generation failed for the current seed.
	StateFailed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateLayout:
		return "layout"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
