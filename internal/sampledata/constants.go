package sampledata

// Generation defaults.
const (
	DefaultPlayers  = 400
	DefaultSeed     = 2031
	DefaultScoutID  = 7
	DefaultGBWeight = 50
)

// Layout below Config.Dir.
const (
	ExtractDir   = "csv"
	LookupDir    = "config"
	ReportDir    = "reports"
	SettingsFile = "settings.toml"
)

// Season range of the generated career stats.
const (
	firstYear  = 2026
	latestYear = 2031
)

const (
	filePermission      = 0o600
	directoryPermission = 0o750
)

// minorLevel is a level_id below the majors; its rows must be ignored.
const minorLevel = 2

// Handedness splits; only AllSplits rows count.
const (
	splitVsLeft  = 2
	splitVsRight = 3
)
