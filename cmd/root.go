package main

import (
	"context"
	"fmt"

	"github.com/okian/pistachio/pkg/logger"
	"github.com/spf13/cobra"
)

var version = "dev"

// Persistent flags.
var (
	configPath string
	logLevel   string
	logFormat  string
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pistachio",
		Short: "Pistachio - standardized WAR projections from OOTP extracts",
		Long: `Pistachio reads the player, scouting and career extracts exported by the
game and projects standardized WAR for every batter and pitcher, for current
ability and for potential.

Each run writes a batter report, a pitcher report and a full snapshot of the
player table.`,
		Version:      version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (TOML or YAML); defaults to $PISTACHIO_CONFIG")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Override the configured log format (text or json)")

	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newSampleCommand())

	return cmd
}

func execute() error {
	return newRootCommand().Execute()
}

// setupLogging initializes the global logger on the command's error stream.
func setupLogging(ctx context.Context, cmd *cobra.Command, format, level string) (logger.Logger, error) {
	if logFormat != "" {
		format = logFormat
	}
	if logLevel != "" {
		level = logLevel
	}
	if err := logger.Init(logger.WithWriter(cmd.ErrOrStderr()), logger.WithFormat(format)); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	log := logger.Get()
	if level == "" {
		return log, nil
	}
	// Fall back to info on invalid input.
	if err := logger.SetLevelString(level); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", level), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	return log, nil
}
