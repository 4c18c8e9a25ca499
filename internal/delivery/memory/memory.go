package memory

import (
	"context"
	"sync"

	"github.com/mcherald/mcherald/internal/core/sinks"
)

// Sink collects notices in memory instead of delivering them anywhere.
// It backs tests and dry runs that exercise the announcement flow
// without a real messaging channel.
type Sink struct {
	mutex   sync.RWMutex
	notices []sinks.Notice
}

func New() *Sink {
	return &Sink{}
}

func (s *Sink) Send(_ context.Context, notice sinks.Notice) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.notices = append(s.notices, notice)

	return nil
}

func (s *Sink) Notices() []sinks.Notice {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return append([]sinks.Notice{}, s.notices...)
}
