package protocol

import (
	"errors"
	"fmt"
)

// Mode selects which protocol families a check cycle is allowed to probe.
type Mode int

const (
	ModeAuto Mode = iota
	ModeJava
	ModeBedrock
)

var ErrUnknownMode = errors.New("unknown protocol mode")

func ParseMode(maybeMode string) (Mode, error) {
	switch maybeMode {
	case "auto":
		return ModeAuto, nil
	case "java":
		return ModeJava, nil
	case "bedrock":
		return ModeBedrock, nil
	default:
		return ModeAuto, fmt.Errorf("%w: '%s'", ErrUnknownMode, maybeMode)
	}
}

func (mode Mode) String() string {
	switch mode {
	case ModeAuto:
		return "auto"
	case ModeJava:
		return "java"
	case ModeBedrock:
		return "bedrock"
	default:
		return fmt.Sprintf("%d", mode)
	}
}

// Edition labels the protocol family that produced a probe verdict.
// The zero value is deliberately the unknown edition.
type Edition int

const (
	EditionUnknown Edition = iota
	EditionJava
	EditionBedrock
)

func (edition Edition) String() string {
	switch edition {
	case EditionJava:
		return "java"
	case EditionBedrock:
		return "bedrock"
	case EditionUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("%d", edition)
	}
}
