package announcement

import (
	"time"

	"github.com/mcherald/mcherald/internal/core/entities/status"
)

// State remembers what was last actually communicated to the
// notification sink. It only ever advances through Commit, so a
// suppressed or failed delivery leaves the transition eligible
// for a later cycle.
type State struct {
	last   status.Classification
	sentAt time.Time
}

var Blank State // nolint: gochecknoglobals

// Evaluate decides the fate of a stable classification. The repeat
// check runs before the rate limit check: re-announcing the current
// classification is never allowed, no matter how much time passed.
func (state State) Evaluate(
	now time.Time,
	classification status.Classification,
	cooldown time.Duration,
) Decision {
	if state.sentAt.IsZero() {
		return DecisionSent
	}
	if state.last == classification {
		return DecisionSuppressedAlreadyAnnounced
	}
	if now.Sub(state.sentAt) < cooldown {
		return DecisionSuppressedByRateLimit
	}
	return DecisionSent
}

// Commit records a successfully delivered announcement.
func (state State) Commit(now time.Time, classification status.Classification) State {
	return State{last: classification, sentAt: now}
}

func (state State) Last() (status.Classification, bool) {
	if state.sentAt.IsZero() {
		return status.Offline, false
	}
	return state.last, true
}

func (state State) SentAt() (time.Time, bool) {
	if state.sentAt.IsZero() {
		return time.Time{}, false
	}
	return state.sentAt, true
}
