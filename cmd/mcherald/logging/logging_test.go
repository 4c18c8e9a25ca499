package logging_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxevent"

	"github.com/mcherald/mcherald/cmd/mcherald/logging"
)

func TestProvide(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logging.Config
		wantErr error
	}{
		{
			"positive case - console/info",
			logging.Config{LogOutput: "console", LogLevel: "info"},
			nil,
		},
		{
			"positive case - json/error",
			logging.Config{LogOutput: "json", LogLevel: "error"},
			nil,
		},
		{
			"positive case - stdout/debug",
			logging.Config{LogOutput: "stdout", LogLevel: "debug"},
			nil,
		},
		{
			"positive case - stderr/warn",
			logging.Config{LogOutput: "stderr", LogLevel: "warn"},
			nil,
		},
		{
			"positive case - case insensitive",
			logging.Config{LogOutput: "stdout", LogLevel: "INFO"},
			nil,
		},
		{
			"invalid logging level",
			logging.Config{LogOutput: "stdout", LogLevel: "critical"},
			logging.ErrInvalidLogLevel,
		},
		{
			"invalid logging output",
			logging.Config{LogOutput: "text", LogLevel: "warn"},
			logging.ErrInvalidLogOutput,
		},
		{
			"invalid logging output and level",
			logging.Config{LogOutput: "out", LogLevel: "debug2"},
			logging.ErrInvalidLogLevel,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := logging.Provide(tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFxLogger(t *testing.T) {
	logger := zerolog.Nop()

	assert.IsType(t, &fxevent.ConsoleLogger{}, logging.FxLogger(&logger, zerolog.DebugLevel))
	assert.Equal(t, fxevent.NopLogger, logging.FxLogger(&logger, zerolog.InfoLevel))
	assert.Equal(t, fxevent.NopLogger, logging.FxLogger(&logger, zerolog.WarnLevel))
}
