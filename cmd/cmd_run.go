package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	app "github.com/okian/pistachio/internal/app"
	"github.com/okian/pistachio/internal/config"
	"github.com/spf13/cobra"
)

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the projection pipeline once",
		Long: `Run the projection pipeline once.

Settings are layered: defaults, then the settings file (--config or
$PISTACHIO_CONFIG), then PISTACHIO_* environment variables. csv_path,
scout_id, team_id and gb_weight are required.`,
		Args: cobra.NoArgs,
		RunE: runE,
	}
}

func runE(cmd *cobra.Command, _ []string) error {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(runContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log, err := setupLogging(ctx, cmd, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return err
	}

	svc := app.New(append(app.FromConfig(cfg), app.WithLogger(log.Named("pipeline")))...)
	res, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s: %d players, %d batters, %d pitchers in %s\n",
		res.RunID, res.Table.Len(), res.Batters.Len(), res.Pitcher.Len(), res.Duration)
	for _, f := range res.Files {
		fmt.Fprintf(out, "  wrote %s\n", f)
	}
	return nil
}

// runContext is cmd.Context with a background fallback for direct calls.
func runContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
