package application

import (
	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/mcherald/mcherald/cmd/mcherald/components/exporter"
	"github.com/mcherald/mcherald/cmd/mcherald/container"
	"github.com/mcherald/mcherald/cmd/mcherald/logging"
	"github.com/mcherald/mcherald/internal/metrics"
	"github.com/mcherald/mcherald/internal/prober/probers/bedrockprober"
	"github.com/mcherald/mcherald/internal/prober/probers/javaprober"
	"github.com/mcherald/mcherald/internal/prober/resolver"
	"github.com/mcherald/mcherald/internal/settings"
	"github.com/mcherald/mcherald/internal/validation"
)

type Probers struct {
	fx.Out

	Java    javaprober.JavaProber
	Bedrock bedrockprober.BedrockProber
}

func provideProbers(
	stngs settings.Settings,
	validate *validator.Validate,
	logger *zerolog.Logger,
) Probers {
	return Probers{
		Java:    javaprober.New(javaprober.Opts{QueryEnabled: stngs.JavaQueryEnabled}, validate, logger),
		Bedrock: bedrockprober.New(bedrockprober.Opts{QueryEnabled: stngs.BedrockQueryEnabled}, validate, logger),
	}
}

func provideResolver(
	java javaprober.JavaProber,
	bedrock bedrockprober.BedrockProber,
	collector *metrics.Collector,
	stngs settings.Settings,
	logger *zerolog.Logger,
) resolver.Resolver {
	return resolver.New(java, bedrock, collector, logger, resolver.Opts{
		Target:              stngs.Target,
		Timeout:             stngs.ProbeTimeout,
		BedrockQueryEnabled: stngs.BedrockQueryEnabled,
	})
}

type Builder struct {
	opts []fx.Option
}

func NewBuilder(opts ...fx.Option) *Builder {
	return &Builder{
		opts: opts,
	}
}

func (b *Builder) Add(opts ...fx.Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

func (b *Builder) WithExporter() *Builder {
	return b.Add(
		fx.Invoke(func(*exporter.Component) {}),
	)
}

func (b *Builder) Build() *fx.App {
	return fx.New(b.opts...)
}

var Module = fx.Module("application",
	fx.Invoke(logging.NoGlobal),
	fx.Provide(clockwork.NewRealClock),
	fx.Provide(validation.New),
	fx.Provide(metrics.New),
	fx.Provide(provideProbers),
	fx.Provide(provideResolver),
	container.Module,
)
