package merge

import (
	"github.com/okian/pistachio/internal/domain/model"
)

// PlayerRow is one row of the players extract.
type PlayerRow struct {
	ID      int
	Bio     model.Bio
	Retired bool
	Extra   []string // aligned with Input.PlayerExtra
}

// ScoutedRow is one row of the scouted-ratings extract.
type ScoutedRow struct {
	PlayerID int
	ScoutID  int
	Ratings  model.Ratings
	Extra    []string // aligned with Input.ScoutedExtra
}

// BattingRow is one stint of the career batting extract.
type BattingRow struct {
	PlayerID int
	Year     int
	LevelID  int
	SplitID  int

	PA, BB, K, H, D, T, HR, HP, PitchesSeen, WAR float64
}

// PitchingRow is one stint of the career pitching extract.
type PitchingRow struct {
	PlayerID int
	Year     int
	LevelID  int
	SplitID  int

	IP, WAR, RA9WAR float64
}

// Input is everything the merge stage reads.
type Input struct {
	Players        []PlayerRow
	PlayerExtra    []string
	Scouted        []ScoutedRow
	ScoutedExtra   []string
	CareerBatting  []BattingRow
	CareerPitching []PitchingRow
	Clubs          map[int]string
}
