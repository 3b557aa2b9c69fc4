// Package config defines the pipeline configuration bundle and its loading hooks.
//
// Conventions:
//   - Provide New(ctx) to build a Config with defaults.
//   - Functions that touch the environment accept context.Context first.
//   - External errors are wrapped with this package's sentinel errors.
package config

import (
	"context"
	"path/filepath"
)

// Config contains everything a pipeline run reads once at start-up.
type Config struct {
	// CSVPath is the directory holding the game's CSV extracts.
	CSVPath string `koanf:"csv_path"`

	// ScoutID selects whose scouted ratings are used (scouting_coach_id).
	ScoutID int `koanf:"scout_id"`

	// TeamID is the managed club's display code; its players always reach the reports.
	TeamID string `koanf:"team_id"`

	// GBWeight is the minimum ground/fly tendency for a pitcher role.
	GBWeight int `koanf:"gb_weight"`

	// ConfigDir holds club_lookup.csv and flagged.txt.
	ConfigDir string `koanf:"config_dir"`

	// ReportDir receives the batter/pitcher reports and the snapshot.
	ReportDir string `koanf:"report_dir"`

	// SnapshotDB, when set, also stores the snapshot in a SQLite file.
	SnapshotDB string `koanf:"snapshot_db"`

	// MetricsFile, when set, receives a Prometheus textfile after each run.
	MetricsFile string `koanf:"metrics_file"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Extract file names inside CSVPath.
	PlayersFile        string `koanf:"players_file"`
	ScoutedFile        string `koanf:"scouted_file"`
	CareerBattingFile  string `koanf:"career_batting_file"`
	CareerPitchingFile string `koanf:"career_pitching_file"`

	// Lookup file names inside ConfigDir.
	ClubLookupFile string `koanf:"club_lookup_file"`
	FlaggedFile    string `koanf:"flagged_file"`
}

// New creates a Config holding the defaults. The four settings of the
// configuration bundle (csv_path, scout_id, team_id, gb_weight) have no
// defaults and must come from a file or the environment.
func New(_ context.Context) *Config {
	return &Config{
		ConfigDir:          "config",
		ReportDir:          "reports",
		LogLevel:           "info",
		LogFormat:          "text",
		PlayersFile:        "players.csv",
		ScoutedFile:        "players_scouted_ratings.csv",
		CareerBattingFile:  "players_career_batting_stats.csv",
		CareerPitchingFile: "players_career_pitching_stats.csv",
		ClubLookupFile:     "club_lookup.csv",
		FlaggedFile:        "flagged.txt",
	}
}

// ExtractPath returns the path of an extract inside CSVPath.
func (c *Config) ExtractPath(name string) string {
	return filepath.Join(c.CSVPath, name)
}

// LookupPath returns the path of a lookup file inside ConfigDir.
func (c *Config) LookupPath(name string) string {
	return filepath.Join(c.ConfigDir, name)
}

// ReportPath returns the path of an output file inside ReportDir.
func (c *Config) ReportPath(name string) string {
	return filepath.Join(c.ReportDir, name)
}
