package target

import (
	"errors"
	"fmt"
	"strings"
)

// Target is the address of the monitored game server.
// The host part is kept as configured so that DNS names
// are resolved at probe time, not at startup.
type Target struct {
	Host string
	Port int
}

var Blank Target // nolint: gochecknoglobals

var (
	ErrInvalidHost = errors.New("invalid or empty host")
	ErrInvalidPort = errors.New("port number is out of range")
)

func New(host string, port int) (Target, error) {
	host = strings.TrimSpace(host)
	if host == "" || strings.ContainsAny(host, " \t/:") {
		return Blank, ErrInvalidHost
	}
	if port < 1 || port > 65535 {
		return Blank, ErrInvalidPort
	}
	return Target{Host: host, Port: port}, nil
}

func MustNew(host string, port int) Target {
	tgt, err := New(host, port)
	if err != nil {
		panic(err)
	}
	return tgt
}

func (tgt Target) String() string {
	return fmt.Sprintf("%s:%d", tgt.Host, tgt.Port)
}
