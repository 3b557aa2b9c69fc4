package model

// Bio holds the identity columns of the players extract plus the names
// derived from them.
type Bio struct {
	FirstName      string
	LastName       string
	Name           string // "first last"
	Age            float64
	Height         float64
	Bats           float64 // 1 R, 2 L, 3 S
	Throws         float64 // 1 R, 2 L
	OrganizationID int
	TeamID         int
	Club           string // club lookup on OrganizationID
	Minor          bool   // OrganizationID != TeamID
}

// CareerBatting is the player's top-level, all-splits career batting line.
// Totals are missing for players with no qualifying rows.
type CareerBatting struct {
	PA, BB, K, H, D, T, HR, HP, PitchesSeen float64

	// Per-PA rates rounded to 3 decimals. Single is hits per PA, as the
	// career extract has no singles column.
	BBPct, KPct, SinglePct, DoublePct, TriplePct, HRPct, HPPct, PitchesPerPA float64
}

// CareerPitching is the player's top-level, all-splits career pitching total.
type CareerPitching struct {
	IP  float64
	WAR float64
}

// SeasonBatting is the latest season's top-level batting baseline.
type SeasonBatting struct {
	PA   float64
	WAR  float64
	SWAR float64 // WAR scaled to 650 PA
}

// SeasonPitching is the latest season's top-level pitching baseline.
type SeasonPitching struct {
	IP     float64
	WAR    float64
	RA9WAR float64
	SWAR   float64 // WAR scaled to 180 IP
}

// Rates are per-plate-appearance outcome probabilities.
type Rates struct {
	BB, K, HR, Double, Triple, Single float64
}

// Line is a batting line over 650 plate appearances.
type Line struct {
	BB, HR, K, Double, Triple, Single float64

	OBP, SLG, OPS float64

	// Report figures: OPS+ and HR rounded to integers, OBP to 3 decimals.
	OPSPlus, HRRounded, OBPRounded float64
}

// Offense is one rating set's offensive projection.
type Offense struct {
	Rates       Rates
	RunsPerGame float64
	WAR         float64 // toWAR
	Line        Line
}

// Defense holds per-position defensive run values and their WAR.
type Defense struct {
	Runs [NumPositions]float64
	WAR  [NumPositions]float64 // tdWAR
}

// Value is one rating set's standardized WAR by position.
type Value struct {
	SWAR    [NumPositions]float64
	Best    float64
	BestPos Position
}

// Pitcher is one rating set's pitching projection.
type Pitcher struct {
	Pitches     int
	Starter     bool
	Reliever    bool
	DonkeyFIP   float64
	Rating      float64
	FIP         float64
	StarterFIP  float64
	RelieverFIP float64
	FIPR9       float64
	RPW         float64
	WAR         float64 // p_sWAR at 180 IP
	StarterWAR  float64
	RelieverWAR float64
}

// Track compares the player against positional aging benchmarks.
type Track struct {
	Field     []Position // eligible positions, eligibility order
	Value     float64    // benchmark OPS+ at the player's age
	OPS21     float64
	OPS27     float64
	Tpct      float64
	OnTrack   string
	Ppct      float64
	Pscore    float64
	OPSPlusPF float64
	PscoreF   float64
}

// HasPosition reports whether any fielding position is within reach.
func (t Track) HasPosition() bool { return len(t.Field) > 0 }

// Player is one row of the unified player table.
type Player struct {
	ID      int
	Bio     Bio
	Scouted bool

	// Ratings are on the internal 1-250 scale once rescaled.
	Ratings Ratings
	// Ratings2080 keeps the values as exported.
	Ratings2080 Ratings

	CareerBatting  CareerBatting
	CareerPitching CareerPitching
	SeasonBatting  SeasonBatting
	SeasonPitching SeasonPitching

	// Extra holds passthrough columns, aligned with Table.Extra.
	Extra []string

	Current    Offense
	Potential  Offense
	CareerLine Line
	Defense    Defense
	Value      Value
	ValuePot   Value
	Pitcher    Pitcher
	PitcherPot Pitcher
	Track      Track
	Flagged    bool
}
