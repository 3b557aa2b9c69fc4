// Package service runs the projection pipeline: it loads the extracts,
// threads the player table through every stage and writes the outputs.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/pistachio/internal/adapters/report"
	"github.com/okian/pistachio/internal/adapters/snapshotdb"
	"github.com/okian/pistachio/internal/adapters/source"
	"github.com/okian/pistachio/internal/domain/aging"
	"github.com/okian/pistachio/internal/domain/defense"
	"github.com/okian/pistachio/internal/domain/export"
	"github.com/okian/pistachio/internal/domain/merge"
	"github.com/okian/pistachio/internal/domain/model"
	"github.com/okian/pistachio/internal/domain/offense"
	"github.com/okian/pistachio/internal/domain/pitching"
	"github.com/okian/pistachio/internal/domain/rating"
	"github.com/okian/pistachio/internal/domain/war"
	"github.com/okian/pistachio/pkg/logger"
	"github.com/okian/pistachio/pkg/metrics"
)

// Stage names used in logs and metrics.
const (
	StageLoad     = "load"
	StageMerge    = "merge"
	StageRating   = "rating"
	StageOffense  = "offense"
	StageDefense  = "defense"
	StageWAR      = "war"
	StagePitching = "pitching"
	StageAging    = "aging"
	StageFlag     = "flag"
	StageExport   = "export"
	StageWrite    = "write"
	StageStore    = "store"
)

// Rating set labels for metrics.
const (
	ratingsCurrent   = "current"
	ratingsPotential = "potential"
)

const defaultReportDir = "reports"

// Service runs the pipeline. Runs on one Service never overlap.
type Service struct {
	mu sync.Mutex

	// Inputs
	paths    source.Paths
	scoutID  int
	team     string
	gbWeight int

	// Outputs
	reportDir   string
	snapshotDB  string
	metricsFile string

	now      func() time.Time
	newRunID func() string

	logger logger.Logger
}

// Result is what one run produced.
type Result struct {
	RunID    string
	Started  time.Time
	Duration time.Duration

	Table   model.Table
	Merge   merge.Summary
	Batters export.Report
	Pitcher export.Report
	// Snapshot is the full player table as written to the snapshot file.
	Snapshot export.Report
	// Files lists the written report files in write order.
	Files []string
}

// New creates a Service with the given options.
func New(opts ...Option) *Service {
	s := &Service{
		reportDir: defaultReportDir,
		now:       time.Now,
		newRunID:  uuid.NewString,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Named("pipeline")
	}
	return s
}

// Run executes one pipeline run. Missing or unreadable inputs abort the run
// before any output is written. A failure while writing may leave the files
// of earlier reports in place.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := &Result{RunID: s.newRunID(), Started: s.now()}
	log := s.logger.With(logger.String("runID", res.RunID))
	log.Info(ctx, "pipeline run starting",
		logger.Int("scoutID", s.scoutID),
		logger.String("team", s.team),
		logger.Int("gbWeight", s.gbWeight),
	)

	err := s.run(ctx, log, res)

	res.Duration = s.now().Sub(res.Started)
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeFailure
	}
	metrics.RecordRun(outcome, res.Duration.Seconds(), float64(s.now().Unix()))
	s.exportMetrics(ctx, log)

	if err != nil {
		log.Error(ctx, "pipeline run failed", logger.Error(err), logger.Duration("duration", res.Duration))
		return nil, err
	}
	log.Info(ctx, "pipeline run finished",
		logger.Int("players", res.Table.Len()),
		logger.Int("batters", res.Batters.Len()),
		logger.Int("pitchers", res.Pitcher.Len()),
		logger.Duration("duration", res.Duration),
	)
	return res, nil
}

func (s *Service) run(ctx context.Context, log logger.Logger, res *Result) error {
	var bundle *source.Bundle
	if err := s.stage(ctx, log, StageLoad, func() (int, error) {
		var err error
		if bundle, err = source.Load(ctx, s.paths, source.WithLogger(log.Named("source"))); err != nil {
			return 0, err
		}
		for name, n := range bundle.Rows {
			metrics.UpdateSourceRows(name, n)
		}
		return bundle.Rows[source.SourcePlayers], nil
	}); err != nil {
		return err
	}

	t, err := s.mergeStage(ctx, log, bundle, res)
	if err != nil {
		return err
	}

	for _, step := range []struct {
		name  string
		apply func(model.Table) model.Table
	}{
		{StageRating, rating.Apply},
		{StageOffense, offense.Apply},
		{StageDefense, defense.Apply},
		{StageWAR, war.Apply},
		{StagePitching, func(t model.Table) model.Table { return pitching.Apply(t, s.gbWeight) }},
		{StageAging, aging.Apply},
		{StageFlag, func(t model.Table) model.Table { return export.Flag(t, bundle.Flagged) }},
	} {
		if err := s.stage(ctx, log, step.name, func() (int, error) {
			t = step.apply(t)
			return t.Len(), ctx.Err()
		}); err != nil {
			return err
		}
	}
	res.Table = t
	s.observe(ctx, log, t)

	if err := s.stage(ctx, log, StageExport, func() (int, error) {
		res.Batters = export.Batters(t, s.team)
		res.Pitcher = export.Pitchers(t, s.team)
		res.Snapshot = export.Snapshot(t)
		return res.Batters.Len() + res.Pitcher.Len(), nil
	}); err != nil {
		return err
	}

	if err := s.stage(ctx, log, StageWrite, func() (int, error) {
		w := report.New(s.reportDir, report.WithLogger(log.Named("report")))
		files, err := w.WriteAll(ctx, res.Batters, res.Pitcher, res.Snapshot)
		res.Files = files
		if err != nil {
			return 0, err
		}
		for _, r := range []export.Report{res.Batters, res.Pitcher, res.Snapshot} {
			metrics.UpdateReportRows(r.Name, r.Len())
		}
		return len(files), nil
	}); err != nil {
		return err
	}

	if s.snapshotDB == "" {
		return nil
	}
	return s.stage(ctx, log, StageStore, func() (int, error) {
		return res.Snapshot.Len(), s.store(ctx, log, res)
	})
}

func (s *Service) mergeStage(ctx context.Context, log logger.Logger, bundle *source.Bundle, res *Result) (model.Table, error) {
	var t model.Table
	err := s.stage(ctx, log, StageMerge, func() (int, error) {
		t, res.Merge = merge.Merge(bundle.Merge, s.scoutID)
		return t.Len(), nil
	})
	if err != nil {
		return t, err
	}

	sum := res.Merge
	metrics.RecordDuplicatesSkipped(source.SourceScouted, sum.DuplicateScouted)
	metrics.UpdatePlayersUnscouted(sum.Unscouted)
	if sum.DuplicateScouted > 0 {
		log.Warn(ctx, "duplicate scouted rows skipped", logger.Int("rows", sum.DuplicateScouted))
	}
	if sum.Unscouted > 0 {
		log.Warn(ctx, "players without scouted ratings", logger.Int("players", sum.Unscouted), logger.Int("scoutID", s.scoutID))
	}
	if sum.WithoutClub > 0 {
		log.Warn(ctx, "players without a club lookup entry", logger.Int("players", sum.WithoutClub))
	}
	log.Debug(ctx, "merge summary",
		logger.Int("retired", sum.Retired),
		logger.Int("scoutedRows", sum.ScoutedRows),
		logger.Int("careerBatters", sum.CareerBatters),
		logger.Int("seasonBatters", sum.SeasonBatters),
		logger.Int("careerPitchers", sum.CareerPitchers),
		logger.Int("seasonPitchers", sum.SeasonPitchers),
		logger.Int("seasonBattingYear", sum.SeasonBattingYear),
		logger.Int("seasonPitchingYear", sum.SeasonPitchYear),
	)
	return t, nil
}

// stage times fn and records its outcome.
func (s *Service) stage(ctx context.Context, log logger.Logger, name string, fn func() (int, error)) error {
	start := time.Now()
	rows, err := fn()
	elapsed := time.Since(start)
	if err != nil {
		metrics.RecordStageError(name)
		return fmt.Errorf("%w: %s: %w", ErrStage, name, err)
	}
	metrics.RecordStage(name, elapsed.Seconds(), rows)
	log.Info(ctx, "stage complete",
		logger.String("stage", name),
		logger.Int("rows", rows),
		logger.Duration("duration", elapsed),
	)
	return nil
}

// observe publishes the shape of the projected table.
func (s *Service) observe(ctx context.Context, log logger.Logger, t model.Table) {
	for _, set := range []struct {
		label     string
		potential bool
	}{
		{ratingsCurrent, false},
		{ratingsPotential, true},
	} {
		starters, relievers := pitching.RoleCounts(t, set.potential)
		metrics.UpdatePitcherRoles("starter", set.label, starters)
		metrics.UpdatePitcherRoles("reliever", set.label, relievers)

		counts := war.BestPositionCounts(t, set.potential)
		for _, pos := range model.Positions {
			metrics.UpdateBestPosition(pos.Key(), set.label, counts[pos])
		}
	}

	missingBat := t.Count(func(p *model.Player) bool { return model.IsMissing(p.Value.Best) })
	missingPitch := t.Count(func(p *model.Player) bool { return model.IsMissing(p.Pitcher.WAR) })
	metrics.UpdatePlayersMissingWAR("batting", missingBat)
	metrics.UpdatePlayersMissingWAR("pitching", missingPitch)

	flagged := export.Flagged(t)
	metrics.UpdatePlayersFlagged(flagged)
	log.Info(ctx, "projection summary",
		logger.Int("players", t.Len()),
		logger.Int("withoutBattingWAR", missingBat),
		logger.Int("withoutPitchingWAR", missingPitch),
		logger.Int("flagged", flagged),
	)
}

func (s *Service) store(ctx context.Context, log logger.Logger, res *Result) error {
	db, err := snapshotdb.Open(ctx, s.snapshotDB, snapshotdb.WithLogger(log.Named("snapshotdb")))
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	return db.Save(ctx, res.RunID, res.Started, res.Snapshot)
}

func (s *Service) exportMetrics(ctx context.Context, log logger.Logger) {
	if s.metricsFile == "" {
		return
	}
	if err := metrics.WriteTextfile(s.metricsFile); err != nil {
		log.Warn(ctx, "metrics textfile not written", logger.String("path", s.metricsFile), logger.Error(err))
	}
}
