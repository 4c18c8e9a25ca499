package announcement

import (
	"fmt"
)

// Decision is the verdict on whether a stable classification
// was worth announcing during a check cycle.
type Decision int

const (
	DecisionNone Decision = iota
	DecisionSent
	DecisionSuppressedByRateLimit
	DecisionSuppressedAlreadyAnnounced
)

func (decision Decision) String() string {
	switch decision {
	case DecisionSent:
		return "sent"
	case DecisionSuppressedByRateLimit:
		return "rate-limited"
	case DecisionSuppressedAlreadyAnnounced:
		return "already-announced"
	case DecisionNone:
		return "none"
	default:
		return fmt.Sprintf("%d", decision)
	}
}
