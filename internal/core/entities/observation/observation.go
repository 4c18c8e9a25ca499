package observation

import (
	"time"

	"github.com/google/uuid"

	"github.com/mcherald/mcherald/internal/core/entities/announcement"
	"github.com/mcherald/mcherald/internal/core/entities/status"
	"github.com/mcherald/mcherald/internal/core/entities/target"
)

// Observation is the full audit record of a single check cycle:
// the probe verdict along with the debounce and announcement
// outcomes it produced.
type Observation struct {
	ID             uuid.UUID
	Target         target.Target
	Status         status.ServerStatus
	Classification status.Classification
	Streak         int
	Stable         bool
	Decision       announcement.Decision
	ObservedAt     time.Time
}

var Blank Observation // nolint: gochecknoglobals

func New(
	tgt target.Target,
	serverStatus status.ServerStatus,
	streak int,
	stable bool,
	decision announcement.Decision,
	observedAt time.Time,
) Observation {
	return Observation{
		ID:             uuid.New(),
		Target:         tgt,
		Status:         serverStatus,
		Classification: serverStatus.Classification(),
		Streak:         streak,
		Stable:         stable,
		Decision:       decision,
		ObservedAt:     observedAt,
	}
}
