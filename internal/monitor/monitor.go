package monitor

import (
	"context"

	"github.com/mcherald/mcherald/internal/core/entities/announcement"
	"github.com/mcherald/mcherald/internal/core/entities/debounce"
	"github.com/mcherald/mcherald/internal/core/entities/observation"
	"github.com/mcherald/mcherald/internal/core/usecases/observeserver"
)

// Monitor carries the debounce and announcement state between check
// cycles. The state lives in memory only and starts blank on every
// process launch. It is driven from a single goroutine and is not
// safe for concurrent use.
type Monitor struct {
	uc       observeserver.UseCase
	debounce debounce.State
	announce announcement.State
}

func New(uc observeserver.UseCase) *Monitor {
	return &Monitor{
		uc:       uc,
		debounce: debounce.Blank,
		announce: announcement.Blank,
	}
}

// RunCycle performs one full check cycle and folds the resulting state
// back into the monitor for the next one.
func (m *Monitor) RunCycle(ctx context.Context) observation.Observation {
	resp := m.uc.Execute(ctx, observeserver.NewRequest(m.debounce, m.announce))
	m.debounce = resp.Debounce
	m.announce = resp.Announce
	return resp.Observation
}
