package main

import (
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/preston-bernstein/dota-teaminfo/internal/config"
	"github.com/preston-bernstein/dota-teaminfo/internal/logging"
	"github.com/preston-bernstein/dota-teaminfo/internal/runner"
)

const serviceName = "teaminfo"

var (
	// Version contains the application version number. It's set via ldflags
	// when building.
	Version = ""

	// CommitSHA contains the SHA of the commit that this application was built
	// against. It's set via ldflags when building.
	CommitSHA = ""
)

type rootFlags struct {
	configPath  string
	key         string
	teams       string
	output      string
	provider    string
	camelCase   bool
	pretty      bool
	rate        time.Duration
	burst       int
	logLevel    string
	logFormat   string
	metricsFile string
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "teaminfo",
		Short: "Fetch Dota 2 team info from the Steam Web API",
		Long: "teaminfo reads team ids from a JSON file, fetches each team from the Steam Web API\n" +
			"at a fixed rate and writes the normalized records to a single JSON file.",
		Example:       "  teaminfo --key $STEAM_KEY --teams teams.json --camelcase --pretty",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       resolveVersion(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			f.apply(cmd.Flags(), cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := logging.NewLogger(logging.Config{
				Level:   cfg.Log.Level,
				Format:  cfg.Log.Format,
				Service: serviceName,
				Version: cmd.Root().Version,
				Output:  cmd.ErrOrStderr(),
			})

			_, err = runner.New(cfg, logger).Run(cmd.Context())
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVar(&f.key, "key", "", "Steam Web API key (required)")
	flags.StringVar(&f.teams, "teams", "", "path to the JSON file listing team ids (required)")
	flags.StringVarP(&f.output, "output", "o", defaults.Output, "where to write the results")
	flags.StringVar(&f.provider, "provider", defaults.Provider, "upstream provider: steam or fixture")
	flags.BoolVar(&f.camelCase, "camelcase", false, "convert snake_case keys to camelCase")
	flags.BoolVar(&f.pretty, "pretty", false, "group, convert and rename fields and indent the output")
	flags.DurationVar(&f.rate, "rate", defaults.RateLimit.Interval, "minimum interval between requests")
	flags.IntVar(&f.burst, "burst", defaults.RateLimit.Burst, "requests allowed back to back before the rate applies")
	flags.StringVar(&f.logLevel, "log-level", defaults.Log.Level, "log level: debug, info, warn, error")
	flags.StringVar(&f.logFormat, "log-format", defaults.Log.Format, "log format: json, text, console")
	flags.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile when the run ends")

	cmd.CompletionOptions.HiddenDefaultCmd = true
	if len(CommitSHA) >= 7 {
		vt := cmd.VersionTemplate()
		cmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	cmd.AddCommand(newManCmd())
	return cmd
}

// apply copies explicitly set flags over cfg so flags win over env and file.
func (f *rootFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	set := func(name string, fn func()) {
		if fs.Changed(name) {
			fn()
		}
	}
	set("key", func() { cfg.APIKey = f.key })
	set("teams", func() { cfg.TeamsPath = f.teams })
	set("output", func() { cfg.Output = f.output })
	set("provider", func() { cfg.Provider = f.provider })
	set("camelcase", func() { cfg.CamelCase = f.camelCase })
	set("pretty", func() { cfg.Pretty = f.pretty })
	set("rate", func() { cfg.RateLimit.Interval = f.rate })
	set("burst", func() { cfg.RateLimit.Burst = f.burst })
	set("log-level", func() { cfg.Log.Level = f.logLevel })
	set("log-format", func() { cfg.Log.Format = f.logFormat })
	set("metrics-file", func() { cfg.Metrics.File = f.metricsFile })
}

func resolveVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Sum != "" {
		return info.Main.Version
	}
	return "unknown (built from source)"
}
