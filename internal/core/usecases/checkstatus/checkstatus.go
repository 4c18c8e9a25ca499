package checkstatus

import (
	"context"

	"github.com/mcherald/mcherald/internal/core/entities/protocol"
	"github.com/mcherald/mcherald/internal/core/entities/status"
	"github.com/mcherald/mcherald/internal/prober/resolver"
)

// UseCase performs a one-off status check against the configured server.
// It shares the resolver with the monitor loop but none of its state,
// so on-demand checks never affect debouncing or announcements.
type UseCase struct {
	resolver resolver.Resolver
}

type Request struct {
	mode protocol.Mode
}

func New(resolver resolver.Resolver) UseCase {
	return UseCase{
		resolver: resolver,
	}
}

func NewRequest(mode protocol.Mode) Request {
	return Request{
		mode: mode,
	}
}

func (uc UseCase) Execute(ctx context.Context, req Request) status.ServerStatus {
	return uc.resolver.Resolve(ctx, req.mode)
}
