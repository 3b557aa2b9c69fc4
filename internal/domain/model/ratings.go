package model

// PitchType indexes the twelve pitch ratings.
type PitchType int8

const (
	Fastball PitchType = iota
	Slider
	Curveball
	Screwball
	Forkball
	Changeup
	Sinker
	Splitter
	Knuckleball
	Cutter
	CircleChange
	KnuckleCurve

	NumPitchTypes = 12
)

// pitchColumns holds the extract suffix and the short 20-80 copy prefix per pitch.
var pitchColumns = [NumPitchTypes][2]string{ //nolint:gochecknoglobals // fixed table
	{"fastball", "fb"},
	{"slider", "sl"},
	{"curveball", "crv"},
	{"screwball", "scrw"},
	{"forkball", "frk"},
	{"changeup", "chng"},
	{"sinker", "sink"},
	{"splitter", "spli"},
	{"knuckleball", "knuc"},
	{"cutter", "cut"},
	{"circlechange", "cchng"},
	{"knucklecurve", "kcurv"},
}

func (t PitchType) String() string { return pitchColumns[t][0] }

// Batting holds the five hitting ratings of one rating set.
type Batting struct {
	Eye        float64
	Strikeouts float64 // strikeout avoidance
	Power      float64
	Gap        float64
	Babip      float64
}

// Pitching holds the pitching ratings of one rating set.
type Pitching struct {
	Stuff    float64
	Control  float64
	Movement float64
	HRA      float64 // home-run avoidance
	PBabip   float64 // babip against
	Pitches  [NumPitchTypes]float64
}

// RatingSet is either the current or the potential (talent) view of a player.
type RatingSet struct {
	Batting  Batting
	Pitching Pitching
}

// Fielding ratings exist once; defense is the same for current and potential.
type Fielding struct {
	CatcherAbility float64
	CatcherArm     float64
	CatcherFraming float64
	InfieldRange   float64
	InfieldError   float64
	InfieldArm     float64
	TurnDoublePlay float64
	OutfieldRange  float64
	OutfieldError  float64
	OutfieldArm    float64
}

// Ratings is everything read from the scouted-ratings extract.
type Ratings struct {
	Current   RatingSet
	Potential RatingSet
	Fielding  Fielding
	Stamina   float64
	GroundFly float64
}

// MissingRatings returns a Ratings with every value missing, the state of a
// player the configured scout never rated.
func MissingRatings() Ratings {
	var r Ratings
	for _, c := range RatingColumns() {
		*c.Field(&r) = Missing()
	}
	return r
}

// RatingColumn binds one scouted-ratings extract column to its field.
type RatingColumn struct {
	// Name is the extract column.
	Name string
	// Copy names the preserved 20-80 column; empty when none is kept.
	Copy string
	// Remap marks columns rescaled to the internal 1-250 scale.
	Remap bool
	// Field addresses the value inside a Ratings.
	Field func(*Ratings) *float64
}

// RatingColumns lists every rating column in extract order.
func RatingColumns() []RatingColumn {
	return ratingColumns
}

var ratingColumns = buildRatingColumns() //nolint:gochecknoglobals // fixed table

func battingColumns(prefix, suffix string, set func(*Ratings) *RatingSet) []RatingColumn {
	return []RatingColumn{
		{prefix + "eye", "eye2080" + suffix, true, func(r *Ratings) *float64 { return &set(r).Batting.Eye }},
		{prefix + "strikeouts", "avK2080" + suffix, true, func(r *Ratings) *float64 { return &set(r).Batting.Strikeouts }},
		{prefix + "power", "pow2080" + suffix, true, func(r *Ratings) *float64 { return &set(r).Batting.Power }},
		{prefix + "gap", "gap2080" + suffix, true, func(r *Ratings) *float64 { return &set(r).Batting.Gap }},
		{prefix + "babip", "babip2080" + suffix, true, func(r *Ratings) *float64 { return &set(r).Batting.Babip }},
	}
}

func pitchTypeColumns(prefix, suffix string, set func(*Ratings) *RatingSet) []RatingColumn {
	cols := make([]RatingColumn, 0, NumPitchTypes)
	for i := range NumPitchTypes {
		cols = append(cols, RatingColumn{
			Name:  prefix + pitchColumns[i][0],
			Copy:  pitchColumns[i][1] + "2080" + suffix,
			Remap: true,
			Field: func(r *Ratings) *float64 { return &set(r).Pitching.Pitches[i] },
		})
	}
	return cols
}

func pitchingColumns(prefix, suffix string, set func(*Ratings) *RatingSet) []RatingColumn {
	return []RatingColumn{
		{prefix + "stuff", "stuff2080" + suffix, true, func(r *Ratings) *float64 { return &set(r).Pitching.Stuff }},
		{prefix + "control", "ctrl2080" + suffix, true, func(r *Ratings) *float64 { return &set(r).Pitching.Control }},
		{prefix + "movement", "mvt2080" + suffix, true, func(r *Ratings) *float64 { return &set(r).Pitching.Movement }},
		{prefix + "hra", "hra2080" + suffix, false, func(r *Ratings) *float64 { return &set(r).Pitching.HRA }},
		{prefix + "pbabip", "pbabip2080" + suffix, false, func(r *Ratings) *float64 { return &set(r).Pitching.PBabip }},
	}
}

func buildRatingColumns() []RatingColumn {
	current := func(r *Ratings) *RatingSet { return &r.Current }
	potential := func(r *Ratings) *RatingSet { return &r.Potential }
	fielding := func(name, copyName string, f func(*Fielding) *float64) RatingColumn {
		return RatingColumn{"fielding_ratings_" + name, copyName, true, func(r *Ratings) *float64 { return f(&r.Fielding) }}
	}

	var cols []RatingColumn
	cols = append(cols, battingColumns("batting_ratings_overall_", "", current)...)
	cols = append(cols, battingColumns("batting_ratings_talent_", "p", potential)...)
	cols = append(cols,
		fielding("catcher_ability", "cabi2080", func(f *Fielding) *float64 { return &f.CatcherAbility }),
		fielding("catcher_arm", "carm2080", func(f *Fielding) *float64 { return &f.CatcherArm }),
		fielding("catcher_framing", "", func(f *Fielding) *float64 { return &f.CatcherFraming }),
		fielding("infield_range", "ifrng2080", func(f *Fielding) *float64 { return &f.InfieldRange }),
		fielding("infield_error", "iferr2080", func(f *Fielding) *float64 { return &f.InfieldError }),
		fielding("infield_arm", "ifarm2080", func(f *Fielding) *float64 { return &f.InfieldArm }),
		fielding("turn_doubleplay", "turndp2080", func(f *Fielding) *float64 { return &f.TurnDoublePlay }),
		fielding("outfield_arm", "ofarm2080", func(f *Fielding) *float64 { return &f.OutfieldArm }),
		fielding("outfield_range", "ofrng2080", func(f *Fielding) *float64 { return &f.OutfieldRange }),
		fielding("outfield_error", "oferr2080", func(f *Fielding) *float64 { return &f.OutfieldError }),
	)
	cols = append(cols, pitchTypeColumns("pitching_ratings_pitches_", "", current)...)
	cols = append(cols, pitchTypeColumns("pitching_ratings_pitches_talent_", "p", potential)...)
	cols = append(cols,
		RatingColumn{"pitching_ratings_misc_stamina", "stam2080", true, func(r *Ratings) *float64 { return &r.Stamina }},
		RatingColumn{"pitching_ratings_misc_ground_fly", "", false, func(r *Ratings) *float64 { return &r.GroundFly }},
	)
	cols = append(cols, pitchingColumns("pitching_ratings_overall_", "", current)...)
	cols = append(cols, pitchingColumns("pitching_ratings_talent_", "p", potential)...)
	return cols
}
