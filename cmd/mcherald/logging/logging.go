package logging

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/mcherald/mcherald/pkg/logutils"
)

var (
	ErrInvalidLogOutput = errors.New("logging: unrecognized output format")
	ErrInvalidLogLevel  = errors.New("logging: unrecognized level")
)

type Config struct {
	LogOutput string
	LogLevel  string
}

type Result struct {
	fx.Out

	Logger   *zerolog.Logger
	LogLevel zerolog.Level
}

func Provide(cfg Config) (Result, error) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMicro
	// Durations logged here are mostly probe latencies, so millisecond units
	// keep them readable.
	zerolog.DurationFieldUnit = time.Millisecond
	zerolog.CallerMarshalFunc = logutils.ShortCallerFormatter

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return Result{}, ErrInvalidLogLevel
	}
	zerolog.SetGlobalLevel(lvl)

	output, err := selectOutput(cfg.LogOutput)
	if err != nil {
		return Result{}, err
	}

	logger := log.With().Caller().Logger()
	if output != nil {
		logger = logger.Output(output)
	}

	result := Result{
		Logger:   &logger,
		LogLevel: lvl,
	}
	return result, nil
}

// selectOutput maps the configured output format to a writer.
// A nil writer keeps zerolog's default json output.
func selectOutput(format string) (io.Writer, error) {
	switch format {
	case "console", "":
		return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}, nil
	case "stdout":
		return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339, NoColor: true}, nil
	case "stderr":
		return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339, NoColor: true}, nil
	case "json":
		return nil, nil
	default:
		return nil, ErrInvalidLogOutput
	}
}

func NoGlobal() {
	log.Logger = zerolog.Nop()
}

func FxLogger(logger *zerolog.Logger, lvl zerolog.Level) fxevent.Logger {
	switch lvl { // nolint: exhaustive
	case zerolog.DebugLevel:
		return &fxevent.ConsoleLogger{
			W: logger,
		}
	default:
		return fxevent.NopLogger
	}
}
