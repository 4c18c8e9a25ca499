package status

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mcherald/mcherald/internal/core/entities/protocol"
)

// ServerStatus is the outcome of probing the monitored server
// during a single check cycle. Gameplay fields are only populated
// when the server is available, and only to the extent the probe
// method was able to collect them.
type ServerStatus struct {
	Available     bool
	Edition       protocol.Edition `validate:"edition"`
	Method        Method
	MOTD          string
	VersionName   string
	PlayersOnline int           `validate:"gte=0"`
	MaxPlayers    int           `validate:"gte=0"`
	Latency       time.Duration `validate:"gte=0"`
	Error         string
}

var Blank ServerStatus // nolint: gochecknoglobals

// NewUnavailable folds a failed probe into an offline status,
// keeping the diagnostic reason and guaranteeing that no stale
// gameplay fields leak through.
func NewUnavailable(edition protocol.Edition, reason string) ServerStatus {
	return ServerStatus{
		Available: false,
		Edition:   edition,
		Method:    MethodNone,
		Error:     reason,
	}
}

func (status ServerStatus) Classification() Classification {
	if status.Available {
		return Online
	}
	return Offline
}

func (status ServerStatus) Validate(validate *validator.Validate) error {
	return validate.Struct(status)
}
