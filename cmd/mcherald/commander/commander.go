package commander

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/mcherald/mcherald/cmd/mcherald/build"
)

type Globals struct {
	LogLevel  string `default:"info"    enum:"debug,info,warn,error"      env:"LOG_LEVEL" help:"Sets the minimum severity level for log messages"` // nolint:lll
	LogOutput string `default:"console" enum:"console,stdout,stderr,json" help:"Specifies the format for log output"`

	Host     string `default:"localhost" env:"MC_SERVER_HOST" help:"Host name or address of the monitored Minecraft server"`             // nolint:lll
	Port     int    `default:"25565"     env:"MC_SERVER_PORT" help:"Port of the monitored Minecraft server"`                             // nolint:lll
	Protocol string `default:"auto"      env:"MC_PROTOCOL"    enum:"auto,java,bedrock" help:"Selects the protocol family to probe with"` // nolint:lll

	CheckInterval   time.Duration `default:"60s" env:"CHECK_INTERVAL"   help:"Sets how often the server is checked"`                                                 // nolint:lll
	StableThreshold int           `default:"2"   env:"STABLE_THRESHOLD" help:"Sets how many consecutive agreeing checks are required before a verdict is announced"` // nolint:lll
	RateLimit       time.Duration `default:"5m"  env:"RATE_LIMIT"       help:"Sets the minimum time between two announcements"`                                      // nolint:lll
	ProbeTimeout    time.Duration `default:"5s"  env:"PROBE_TIMEOUT"    help:"Sets the maximum time to wait for a response from a status probe"`                     // nolint:lll

	JavaQuery    bool `default:"true" negatable:"" env:"MC_JAVA_QUERY"    help:"Allows rich status queries over the java protocols"` // nolint:lll
	BedrockQuery bool `default:"true" negatable:"" env:"MC_BEDROCK_QUERY" help:"Allows status queries over the bedrock protocol"`    // nolint:lll

	RichFormat bool `default:"true" negatable:"" env:"USE_RICH_FORMAT" help:"Formats telegram messages with HTML markup"` // nolint:lll

	TelegramToken  string `env:"TELEGRAM_TOKEN"    help:"Telegram bot API token used to deliver announcements"`        // nolint:lll
	TelegramChatID string `env:"TELEGRAM_CHAT_ID"  help:"Identifier of the telegram chat that receives announcements"` // nolint:lll
	TelegramAPIURL string `env:"TELEGRAM_API_URL"  help:"Overrides the telegram bot API endpoint"`                     // nolint:lll

	HistorySize int    `default:"1000" env:"HISTORY_SIZE" help:"Limits how many check outcomes and announcements are kept in history"` // nolint:lll
	RedisURL    string `env:"REDIS_URL" help:"Stores the history in Redis instead of process memory when set"`                         // nolint:lll

	ExporterHTTPListenAddress   string        `default:":9000" help:"Sets the address where the Prometheus exporter server listens for requests"`            // nolint:lll
	ExporterHTTPReadTimeout     time.Duration `default:"5s"    help:"Sets the maximum duration to read the request body before timing out"`                  // nolint:lll
	ExporterHTTPWriteTimeout    time.Duration `default:"5s"    help:"Sets the maximum duration to write a response before timing out"`                       // nolint:lll
	ExporterHTTPShutdownTimeout time.Duration `default:"10s"   help:"The amount of time the server will wait gracefully closing connections before exiting"` // nolint:lll
}

type VersionCmd struct{}

func (v *VersionCmd) Run() error {
	version := fmt.Sprintf("Version: %s (%s) built at %s", build.Version, build.Commit, build.Time)
	fmt.Println(version) // nolint: forbidigo
	os.Exit(0)
	return nil
}

type RunCmd struct {
	kong.Plugins
}

type CLI struct {
	Globals
	kong.Plugins

	Version VersionCmd `cmd:"" help:"Display the app version and exit"`
	Run     RunCmd     `cmd:""`
}
