package status

import (
	"fmt"
)

// Classification is the binary verdict of a single check cycle.
type Classification int

const (
	Offline Classification = iota
	Online
)

func (c Classification) String() string {
	switch c {
	case Online:
		return "online"
	case Offline:
		return "offline"
	default:
		return fmt.Sprintf("%d", c)
	}
}
