package checkstatus_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/mcherald/mcherald/internal/core/entities/protocol"
	"github.com/mcherald/mcherald/internal/core/entities/status"
	"github.com/mcherald/mcherald/internal/core/entities/target"
	"github.com/mcherald/mcherald/internal/core/usecases/checkstatus"
	"github.com/mcherald/mcherald/internal/metrics"
	"github.com/mcherald/mcherald/internal/prober/resolver"
)

type fakeProber struct {
	status status.ServerStatus
	err    error
}

func (f fakeProber) Probe(
	_ context.Context,
	_ target.Target,
	_ time.Duration,
) (status.ServerStatus, error) {
	if f.err != nil {
		return status.Blank, f.err
	}
	return f.status, nil
}

func makeUseCase(java, bedrock fakeProber) checkstatus.UseCase {
	logger := zerolog.Nop()
	opts := resolver.Opts{
		Target:              target.MustNew("mc.example.com", 25565),
		Timeout:             time.Second,
		BedrockQueryEnabled: true,
	}
	r := resolver.New(java, bedrock, metrics.New(), &logger, opts)
	return checkstatus.New(r)
}

func TestCheckStatusUseCase_ResolvesRequestedMode(t *testing.T) {
	java := fakeProber{
		status: status.ServerStatus{
			Available:     true,
			Edition:       protocol.EditionJava,
			Method:        status.MethodQuery,
			PlayersOnline: 2,
			MaxPlayers:    20,
		},
	}
	bedrock := fakeProber{err: errors.New("i/o timeout")}
	uc := makeUseCase(java, bedrock)

	st := uc.Execute(context.TODO(), checkstatus.NewRequest(protocol.ModeJava))

	assert.True(t, st.Available)
	assert.Equal(t, protocol.EditionJava, st.Edition)
	assert.Equal(t, 2, st.PlayersOnline)
}

func TestCheckStatusUseCase_FailuresAreReportedAsUnavailable(t *testing.T) {
	java := fakeProber{err: errors.New("connection refused")}
	bedrock := fakeProber{err: errors.New("i/o timeout")}
	uc := makeUseCase(java, bedrock)

	st := uc.Execute(context.TODO(), checkstatus.NewRequest(protocol.ModeAuto))

	assert.False(t, st.Available)
	assert.Equal(t, "connection refused", st.Error)
}
