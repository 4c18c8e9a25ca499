package checker

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mcherald/mcherald/cmd/mcherald/commander"
	"github.com/mcherald/mcherald/internal/core/entities/protocol"
	"github.com/mcherald/mcherald/internal/core/entities/status"
	"github.com/mcherald/mcherald/internal/core/entities/target"
	"github.com/mcherald/mcherald/internal/core/usecases/checkstatus"
	"github.com/mcherald/mcherald/internal/metrics"
	"github.com/mcherald/mcherald/internal/prober/probers/bedrockprober"
	"github.com/mcherald/mcherald/internal/prober/probers/javaprober"
	"github.com/mcherald/mcherald/internal/prober/resolver"
	"github.com/mcherald/mcherald/internal/validation"
	"github.com/mcherald/mcherald/pkg/minecraft/motd"
)

type command struct{}

// Run probes the configured server once and reports the verdict on
// stdout. The process exits with a non-zero code when the server is
// unavailable, so the command can drive shell scripts and healthchecks.
func (c *command) Run(globals *commander.Globals) error {
	tgt, err := target.New(globals.Host, globals.Port)
	if err != nil {
		return err
	}
	mode, err := protocol.ParseMode(globals.Protocol)
	if err != nil {
		return err
	}

	logger := zerolog.Nop()
	validate := validation.MustNew()

	java := javaprober.New(javaprober.Opts{QueryEnabled: globals.JavaQuery}, validate, &logger)
	bedrock := bedrockprober.New(bedrockprober.Opts{QueryEnabled: globals.BedrockQuery}, validate, &logger)
	rslvr := resolver.New(java, bedrock, metrics.New(), &logger, resolver.Opts{
		Target:              tgt,
		Timeout:             globals.ProbeTimeout,
		BedrockQueryEnabled: globals.BedrockQuery,
	})

	uc := checkstatus.New(rslvr)
	serverStatus := uc.Execute(context.Background(), checkstatus.NewRequest(mode))
	printStatus(tgt, serverStatus)

	if !serverStatus.Available {
		os.Exit(1)
	}
	return nil
}

func printStatus(tgt target.Target, st status.ServerStatus) { // nolint: forbidigo
	verdict := strings.ToUpper(st.Classification().String())
	fmt.Printf("%s is %s (%s)\n", tgt, verdict, st.Edition)

	if !st.Available {
		if st.Error != "" {
			fmt.Printf("Reason:   %s\n", st.Error)
		}
		return
	}

	fmt.Printf("Method:   %s\n", st.Method)
	if st.MOTD != "" {
		fmt.Printf("MOTD:     %s\n", motd.Clean(st.MOTD))
	}
	if st.VersionName != "" {
		fmt.Printf("Version:  %s\n", st.VersionName)
	}
	if st.MaxPlayers > 0 {
		fmt.Printf("Players:  %d/%d\n", st.PlayersOnline, st.MaxPlayers)
	}
	if st.Latency > 0 {
		fmt.Printf("Latency:  %s\n", st.Latency.Round(time.Millisecond))
	}
}

type CLI struct {
	Check command `cmd:"" help:"Check the server status once and exit"`
}
