package settings

import (
	"time"

	"github.com/mcherald/mcherald/internal/core/entities/protocol"
	"github.com/mcherald/mcherald/internal/core/entities/target"
)

type Settings struct {
	Target target.Target
	Mode   protocol.Mode

	ProbeTimeout        time.Duration
	JavaQueryEnabled    bool
	BedrockQueryEnabled bool

	StableThreshold  int
	AnnounceCooldown time.Duration

	RichFormat bool
}
