package sampledata

import (
	"context"
	"fmt"
	"time"

	service "github.com/okian/pistachio/internal/app"
	"github.com/okian/pistachio/internal/config"
	"github.com/okian/pistachio/pkg/logger"
)

// Outcome is what a sample run produced.
type Outcome struct {
	Dataset *Dataset
	Result  *service.Result
	Checks  []Check
	Stats   Stats
}

// Run generates a dataset, runs the pipeline over it through the generated
// settings file and verifies the invariants.
func Run(ctx context.Context, cfg *Config, opts ...service.Option) (*Outcome, error) {
	start := time.Now()
	log := logger.Named("sampledata")

	// Step 1: Generate extracts
	ds, err := Generate(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("sample generation failed: %w", err)
	}
	out := &Outcome{Dataset: ds, Stats: ds.Stats}
	out.Stats.StartTime = start

	// Step 2: Load the generated settings the way a real run does
	settings, err := config.Load(ctx, ds.Settings)
	if err != nil {
		return out, fmt.Errorf("sample settings: %w", err)
	}

	// Step 3: Run the pipeline
	svc := service.New(append(service.FromConfig(settings), opts...)...)
	res, err := svc.Run(ctx)
	if err != nil {
		return out, fmt.Errorf("sample pipeline run failed: %w", err)
	}
	out.Result = res
	out.Stats.Batters = res.Batters.Len()
	out.Stats.Pitchers = res.Pitcher.Len()

	// Step 4: Verify invariants
	out.Checks, err = Verify(ctx, ds, res)
	for _, c := range out.Checks {
		if c.Passed {
			out.Stats.ChecksPassed++
		} else {
			out.Stats.ChecksFailed++
		}
	}

	out.Stats.EndTime = time.Now()
	out.Stats.Duration = out.Stats.EndTime.Sub(out.Stats.StartTime)
	displayFinalStats(ctx, log, &out.Stats)
	return out, err
}

// displayFinalStats logs the final statistics.
func displayFinalStats(ctx context.Context, log logger.Logger, stats *Stats) {
	log.Info(ctx, "final statistics",
		logger.Int("players", stats.Players),
		logger.Int("active", stats.Active),
		logger.Int("retired", stats.Retired),
		logger.Int("unscouted", stats.Unscouted),
		logger.Int("scoutedRows", stats.ScoutedRows),
		logger.Int("duplicateScouted", stats.DuplicateScouted),
		logger.Int("battingRows", stats.BattingRows),
		logger.Int("pitchingRows", stats.PitchingRows),
		logger.Int("flagged", stats.Flagged),
		logger.Int("batters", stats.Batters),
		logger.Int("pitchers", stats.Pitchers),
		logger.Int("checksPassed", stats.ChecksPassed),
		logger.Int("checksFailed", stats.ChecksFailed),
		logger.Duration("duration", stats.Duration),
	)
}
