package sinks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mcherald/mcherald/internal/core/entities/status"
	"github.com/mcherald/mcherald/internal/core/entities/target"
)

var ErrDeliveryFailed = errors.New("unable to deliver the notice")

// Notice is a status transition handed over to a notification sink.
// How it is rendered is up to the sink.
type Notice struct {
	Target         target.Target
	Classification status.Classification
	Status         status.ServerStatus
	SentAt         time.Time
}

// Sink delivers status change notices to the outside world.
// Implementations are expected to wrap failures with ErrDeliveryFailed.
type Sink interface {
	Send(ctx context.Context, notice Notice) error
}

// Summary renders the one-line plain text form of the notice,
// suitable for audit records and logs.
func (notice Notice) Summary() string {
	switch notice.Classification {
	case status.Online:
		return fmt.Sprintf("Server %s is back online", notice.Target)
	default:
		return fmt.Sprintf("Server %s has gone offline", notice.Target)
	}
}
