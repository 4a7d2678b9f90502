// internal/pipeline/state.go
package pipeline

import (
	"errors"
	"fmt"
)

// State is the lifecycle position of a run.
type State string

const (
	StateIdle         State = "idle"
	StateResearching  State = "researching"
	StateDrafting     State = "drafting"
	StateVisualizing  State = "visualizing"
	StateDistributing State = "distributing"
	StateDone         State = "done"
	StateFailed       State = "failed"
)

var ErrInvalidTransition = errors.New("invalid state transition")

// next holds the single forward move allowed from each state.
var next = map[State]State{
	StateIdle:         StateResearching,
	StateResearching:  StateDrafting,
	StateDrafting:     StateVisualizing,
	StateVisualizing:  StateDistributing,
	StateDistributing: StateDone,
}

func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// CanTransition reports whether from -> to is a legal move: one step
// forward, or into failed from any non-terminal state.
func CanTransition(from, to State) bool {
	if to == StateFailed {
		return !from.Terminal()
	}
	return next[from] == to
}

func checkTransition(from, to State) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}
