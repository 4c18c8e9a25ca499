package model

import (
	"time"

	"github.com/mcherald/mcherald/internal/core/entities/observation"
)

type Observation struct {
	ID             string       `json:"id"`
	Status         ServerStatus `json:"status"`
	Classification string       `json:"classification"`
	Streak         int          `json:"streak"`
	Stable         bool         `json:"stable"`
	Decision       string       `json:"decision"`
	ObservedAt     time.Time    `json:"observed_at"`
}

func NewObservationFromDomain(obs observation.Observation) Observation {
	return Observation{
		ID:             obs.ID.String(),
		Status:         NewServerStatusFromDomain(obs.Target, obs.Status),
		Classification: obs.Classification.String(),
		Streak:         obs.Streak,
		Stable:         obs.Stable,
		Decision:       obs.Decision.String(),
		ObservedAt:     obs.ObservedAt,
	}
}
