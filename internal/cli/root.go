// Package cli wires the labkit tools into a cobra command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/danmuck/labkit/internal/config"
	"github.com/danmuck/labkit/internal/logging"
	"github.com/danmuck/labkit/internal/observability"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

type rootOptions struct {
	configPath      string
	debug           bool
	metricsTextfile string

	cfg config.Config
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:          "labkit",
		Short:        "labkit - small teaching tools: text transform, discounts, iris report, hero demo",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.load()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return opts.flushMetrics()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (defaults to ./"+config.DefaultPath+" when present)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr")
	cmd.PersistentFlags().StringVar(&opts.metricsTextfile, "metrics-textfile", "", "write prometheus metrics to this file on exit")

	cmd.AddCommand(
		transformCmd(opts),
		discountCmd(opts),
		irisCmd(opts),
		heroesCmd(),
		serveCmd(opts),
		versionCmd(),
	)
	return cmd
}

func (o *rootOptions) load() error {
	cfg, err := config.LoadOrDefault(o.configPath)
	if err != nil {
		return err
	}
	o.cfg = cfg
	if o.metricsTextfile == "" {
		o.metricsTextfile = cfg.Metrics.Textfile
	}

	logging.ConfigureWith(logging.ProfileRuntime, func(lc *logging.Config) {
		if lvl, ok := logging.ParseLevel(cfg.Log.Level); ok {
			lc.Level = lvl
		}
		lc.Timestamp = cfg.Log.Timestamp
		lc.NoColor = cfg.Log.NoColor
		if o.debug {
			lc.Level = zerolog.DebugLevel
		}
	})
	logging.Debugf("cli: config loaded path=%q", o.configPath)
	return nil
}

func (o *rootOptions) flushMetrics() error {
	if o.metricsTextfile == "" {
		return nil
	}
	if err := observability.WriteTextfile(o.metricsTextfile); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	logging.Debugf("cli: metrics written to %s", o.metricsTextfile)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the labkit version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "labkit %s\n", Version)
			return err
		},
	}
}
