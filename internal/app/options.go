package service

import (
	"time"

	"github.com/okian/pistachio/internal/adapters/source"
	"github.com/okian/pistachio/internal/config"
	"github.com/okian/pistachio/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithPaths sets the input files.
func WithPaths(p source.Paths) Option {
	return func(s *Service) {
		s.paths = p
	}
}

// WithScoutID selects whose scouted ratings are used.
func WithScoutID(id int) Option {
	return func(s *Service) {
		s.scoutID = id
	}
}

// WithTeam sets the managed club's display code.
func WithTeam(team string) Option {
	return func(s *Service) {
		s.team = team
	}
}

// WithGBWeight sets the minimum ground/fly tendency for a pitcher role.
func WithGBWeight(w int) Option {
	return func(s *Service) {
		s.gbWeight = w
	}
}

// WithReportDir sets the output directory.
func WithReportDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.reportDir = dir
		}
	}
}

// WithSnapshotDB also stores each snapshot in the SQLite file at path.
func WithSnapshotDB(path string) Option {
	return func(s *Service) {
		s.snapshotDB = path
	}
}

// WithMetricsFile writes a Prometheus textfile to path after each run.
func WithMetricsFile(path string) Option {
	return func(s *Service) {
		s.metricsFile = path
	}
}

// WithLogger sets the logger instance.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithClock replaces the wall clock used to stamp runs.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRunIDs replaces the run identifier generator.
func WithRunIDs(next func() string) Option {
	return func(s *Service) {
		if next != nil {
			s.newRunID = next
		}
	}
}

// FromConfig translates a loaded configuration into options.
func FromConfig(cfg *config.Config) []Option {
	return []Option{
		WithPaths(source.Paths{
			Players:        cfg.ExtractPath(cfg.PlayersFile),
			Scouted:        cfg.ExtractPath(cfg.ScoutedFile),
			CareerBatting:  cfg.ExtractPath(cfg.CareerBattingFile),
			CareerPitching: cfg.ExtractPath(cfg.CareerPitchingFile),
			ClubLookup:     cfg.LookupPath(cfg.ClubLookupFile),
			Flagged:        cfg.LookupPath(cfg.FlaggedFile),
		}),
		WithScoutID(cfg.ScoutID),
		WithTeam(cfg.TeamID),
		WithGBWeight(cfg.GBWeight),
		WithReportDir(cfg.ReportDir),
		WithSnapshotDB(cfg.SnapshotDB),
		WithMetricsFile(cfg.MetricsFile),
	}
}
