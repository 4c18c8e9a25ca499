package telegram

import (
	"fmt"
	"strings"
	"time"

	"github.com/mcherald/mcherald/internal/core/entities/status"
	"github.com/mcherald/mcherald/internal/core/entities/target"
	"github.com/mcherald/mcherald/internal/core/sinks"
	"github.com/mcherald/mcherald/pkg/minecraft/motd"
)

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;") // nolint: gochecknoglobals

func statusEmoji(classification status.Classification) string {
	if classification == status.Online {
		return "\U0001F7E2"
	}
	return "\U0001F534"
}

// renderNotice renders a status transition announcement.
func renderNotice(notice sinks.Notice, opts Opts) string {
	headline := notice.Summary()
	if opts.RichFormat {
		headline = fmt.Sprintf("<b>%s</b>", headline)
	}
	lines := append(
		[]string{fmt.Sprintf("%s %s", statusEmoji(notice.Classification), headline)},
		describeStatus(notice.Status, opts)...,
	)
	if opts.RichFormat {
		lines = append(lines, "", renderFooter(opts))
	}
	return strings.Join(lines, "\n")
}

// renderStatus renders the reply to an on-demand status check.
func renderStatus(tgt target.Target, st status.ServerStatus, opts Opts) string {
	classification := st.Classification()

	verdict := "offline"
	if classification == status.Online {
		verdict = "online"
	}
	headline := fmt.Sprintf("Server %s is %s", tgt, verdict)
	if opts.RichFormat {
		headline = fmt.Sprintf("<b>%s</b>", headline)
	}

	lines := append(
		[]string{fmt.Sprintf("%s %s", statusEmoji(classification), headline)},
		describeStatus(st, opts)...,
	)
	if opts.RichFormat {
		lines = append(lines, "", renderFooter(opts))
	}
	return strings.Join(lines, "\n")
}

// describeStatus renders the detail lines. Most of them are optional:
// a server probed with a bare connection reports nothing but its edition.
func describeStatus(st status.ServerStatus, opts Opts) []string {
	lines := make([]string, 0, 5)
	lines = append(lines, fmt.Sprintf("Edition: %s", st.Edition))
	if st.MOTD != "" {
		if opts.RichFormat {
			lines = append(lines, fmt.Sprintf("<i>%s</i>", motd.ToHTML(st.MOTD)))
		} else {
			lines = append(lines, motd.Clean(st.MOTD))
		}
	}
	if st.VersionName != "" {
		if opts.RichFormat {
			lines = append(lines, fmt.Sprintf("Version: %s", motd.ToHTML(st.VersionName)))
		} else {
			lines = append(lines, fmt.Sprintf("Version: %s", motd.Clean(st.VersionName)))
		}
	}
	if st.MaxPlayers > 0 {
		lines = append(lines, fmt.Sprintf("Players: %d/%d", st.PlayersOnline, st.MaxPlayers))
	}
	if st.Latency > 0 {
		lines = append(lines, fmt.Sprintf("Latency: %s", st.Latency.Round(time.Millisecond)))
	}
	if !st.Available && st.Error != "" {
		reason := st.Error
		if opts.RichFormat {
			reason = htmlEscaper.Replace(reason)
		}
		lines = append(lines, fmt.Sprintf("Reason: %s", reason))
	}
	return lines
}

func renderFooter(opts Opts) string {
	return fmt.Sprintf("<i>Debounce: %d checks • Rate limit: %s</i>", opts.StableThreshold, opts.Cooldown)
}
