package sampledata

import "time"

// Config holds configuration for a synthetic dataset.
type Config struct {
	Dir          string // Root directory; extracts, lookups and reports go below it
	Players      int    // Number of players to generate, retired ones included
	Seed         uint64 // Seed for the generator; equal seeds give equal datasets
	ScoutID      int    // Scout whose ratings the pipeline uses
	OtherScoutID int    // A second scout whose rows must be ignored
	GBWeight     int    // Ground/fly threshold written to the settings file
}

// DefaultConfig returns a Config rooted at dir.
func DefaultConfig(dir string) *Config {
	return &Config{
		Dir:          dir,
		Players:      DefaultPlayers,
		Seed:         DefaultSeed,
		ScoutID:      DefaultScoutID,
		OtherScoutID: DefaultScoutID + 1,
		GBWeight:     DefaultGBWeight,
	}
}

// Stats holds generation and run statistics.
type Stats struct {
	Players          int
	Active           int
	Retired          int
	Unscouted        int
	ScoutedRows      int
	DuplicateScouted int
	BattingRows      int
	PitchingRows     int
	Flagged          int
	Batters          int
	Pitchers         int
	ChecksPassed     int
	ChecksFailed     int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
