package probers

import (
	"context"
	"errors"
	"time"

	"github.com/mcherald/mcherald/internal/core/entities/status"
	"github.com/mcherald/mcherald/internal/core/entities/target"
)

var ErrQueryUnavailable = errors.New("query capability is unavailable")

// Prober checks one protocol family against the target. A returned
// error means the server could not be confirmed available over that
// family.
type Prober interface {
	Probe(ctx context.Context, tgt target.Target, timeout time.Duration) (status.ServerStatus, error)
}
