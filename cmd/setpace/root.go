package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// options are the command-line overrides for a launch.
type options struct {
	DataDir  string
	Storage  string
	LogLevel string
}

func newRootCmd(run func(ctx context.Context, opts options) error) *cobra.Command {
	opts := options{LogLevel: "info"}

	root := &cobra.Command{
		Use:           "setpace",
		Short:         "Interval workout timer",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := parseLogLevel(opts.LogLevel); err != nil {
				return err
			}
			return run(cmd.Context(), opts)
		},
	}

	flags := root.Flags()
	flags.StringVar(&opts.DataDir, "data-dir", "", "directory for settings and workouts (default: user config dir)")
	flags.StringVar(&opts.Storage, "storage", "", "storage backend override: file, sqlite or memory")
	flags.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "log level: debug, info, warn or error")

	return root
}

func parseLogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", value)
	}
}
