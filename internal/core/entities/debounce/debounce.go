package debounce

import (
	"github.com/mcherald/mcherald/internal/core/entities/status"
)

// State counts how many consecutive check cycles agreed on the same
// classification. It is an immutable value: Observe returns the state
// of the next cycle rather than mutating the receiver.
type State struct {
	last  status.Classification
	count int
}

var Blank State // nolint: gochecknoglobals

// Observe folds the classification of the latest cycle into the state.
// Agreement with the previous cycle extends the streak, a flip restarts
// the count at one.
func (state State) Observe(classification status.Classification) State {
	if state.count > 0 && state.last == classification {
		return State{last: classification, count: state.count + 1}
	}
	return State{last: classification, count: 1}
}

// IsStable reports whether the current streak has reached the threshold.
// A blank state is never stable.
func (state State) IsStable(threshold int) bool {
	return state.count > 0 && state.count >= threshold
}

func (state State) Last() (status.Classification, bool) {
	if state.count == 0 {
		return status.Offline, false
	}
	return state.last, true
}

func (state State) Count() int {
	return state.count
}
