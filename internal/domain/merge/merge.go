// Package merge builds the unified player table from the raw extracts.
package merge

import (
	"github.com/okian/pistachio/internal/domain/model"
)

const (
	// TopLevel is the major-league level_id.
	TopLevel = 1
	// AllSplits is the split_id combining both pitcher handedness splits.
	AllSplits = 1

	battingBaselinePA  = 650
	pitchingBaselineIP = 180
	ratePlaces         = 3
)

// Summary counts what the merge dropped or could not resolve.
type Summary struct {
	Retired           int
	ScoutedRows       int // rows from the configured scout
	DuplicateScouted  int
	Unscouted         int
	WithoutClub       int
	CareerBatters     int
	SeasonBatters     int
	CareerPitchers    int
	SeasonPitchers    int
	SeasonBattingYear int
	SeasonPitchYear   int
}

// Merge joins scouted ratings, career and season aggregates onto the active
// players. Joins are left joins: a player lacking a source keeps missing
// values for it. When scouted rows collide on a player the first one wins.
func Merge(in Input, scoutID int) (model.Table, Summary) {
	var sum Summary

	ratings := make(map[int]*ScoutedRow, len(in.Scouted))
	for i := range in.Scouted {
		row := &in.Scouted[i]
		if row.ScoutID != scoutID {
			continue
		}
		sum.ScoutedRows++
		if _, dup := ratings[row.PlayerID]; dup {
			sum.DuplicateScouted++
			continue
		}
		ratings[row.PlayerID] = row
	}

	careerBat := aggregateCareerBatting(in.CareerBatting)
	seasonBat, batYear := aggregateSeasonBatting(in.CareerBatting)
	careerPitch := aggregateCareerPitching(in.CareerPitching)
	seasonPitch, pitchYear := aggregateSeasonPitching(in.CareerPitching)
	sum.CareerBatters = len(careerBat)
	sum.SeasonBatters = len(seasonBat)
	sum.CareerPitchers = len(careerPitch)
	sum.SeasonPitchers = len(seasonPitch)
	sum.SeasonBattingYear = batYear
	sum.SeasonPitchYear = pitchYear

	extra := newExtraLayout(in.PlayerExtra, in.ScoutedExtra)

	players := make([]model.Player, 0, len(in.Players))
	for _, row := range in.Players {
		if row.Retired {
			sum.Retired++
			continue
		}

		p := model.Player{ID: row.ID, Bio: row.Bio}
		p.Bio.Name = row.Bio.FirstName + " " + row.Bio.LastName
		p.Bio.Minor = row.Bio.OrganizationID != row.Bio.TeamID
		club, ok := in.Clubs[row.Bio.OrganizationID]
		if !ok {
			sum.WithoutClub++
		}
		p.Bio.Club = club

		var scoutedExtra []string
		if s, ok := ratings[row.ID]; ok {
			p.Scouted = true
			p.Ratings = s.Ratings
			scoutedExtra = s.Extra
		} else {
			sum.Unscouted++
			p.Ratings = model.MissingRatings()
		}
		p.Extra = extra.values(row.Extra, scoutedExtra)

		p.CareerBatting = missingCareerBatting()
		if c, ok := careerBat[row.ID]; ok {
			p.CareerBatting = c
		}
		p.SeasonBatting = model.SeasonBatting{PA: model.Missing(), WAR: model.Missing(), SWAR: model.Missing()}
		if s, ok := seasonBat[row.ID]; ok {
			p.SeasonBatting = s
		}
		p.CareerPitching = model.CareerPitching{IP: model.Missing(), WAR: model.Missing()}
		if c, ok := careerPitch[row.ID]; ok {
			p.CareerPitching = c
		}
		p.SeasonPitching = model.SeasonPitching{IP: model.Missing(), WAR: model.Missing(), RA9WAR: model.Missing(), SWAR: model.Missing()}
		if s, ok := seasonPitch[row.ID]; ok {
			p.SeasonPitching = s
		}

		players = append(players, p)
	}

	return model.Table{Extra: extra.names, Players: players}, sum
}

// plus adds v to acc, skipping a missing v the way a column sum does.
func plus(acc, v float64) float64 {
	if model.IsMissing(v) {
		return acc
	}
	return acc + v
}

func topLevel(levelID, splitID int) bool {
	return levelID == TopLevel && splitID == AllSplits
}

func missingCareerBatting() model.CareerBatting {
	m := model.Missing()
	return model.CareerBatting{
		PA: m, BB: m, K: m, H: m, D: m, T: m, HR: m, HP: m, PitchesSeen: m,
		BBPct: m, KPct: m, SinglePct: m, DoublePct: m, TriplePct: m, HRPct: m, HPPct: m, PitchesPerPA: m,
	}
}

func aggregateCareerBatting(rows []BattingRow) map[int]model.CareerBatting {
	out := make(map[int]model.CareerBatting)
	for _, r := range rows {
		if !topLevel(r.LevelID, r.SplitID) {
			continue
		}
		c := out[r.PlayerID]
		c.PA = plus(c.PA, r.PA)
		c.BB = plus(c.BB, r.BB)
		c.K = plus(c.K, r.K)
		c.H = plus(c.H, r.H)
		c.D = plus(c.D, r.D)
		c.T = plus(c.T, r.T)
		c.HR = plus(c.HR, r.HR)
		c.HP = plus(c.HP, r.HP)
		c.PitchesSeen = plus(c.PitchesSeen, r.PitchesSeen)
		out[r.PlayerID] = c
	}
	for id, c := range out {
		rate := func(n float64) float64 { return model.Round(model.Div(n, c.PA), ratePlaces) }
		c.BBPct = rate(c.BB)
		c.KPct = rate(c.K)
		c.SinglePct = rate(c.H)
		c.DoublePct = rate(c.D)
		c.TriplePct = rate(c.T)
		c.HRPct = rate(c.HR)
		c.HPPct = rate(c.HP)
		c.PitchesPerPA = rate(c.PitchesSeen)
		out[id] = c
	}
	return out
}

func latestBattingYear(rows []BattingRow) (int, bool) {
	year, found := 0, false
	for _, r := range rows {
		if topLevel(r.LevelID, r.SplitID) && (!found || r.Year > year) {
			year, found = r.Year, true
		}
	}
	return year, found
}

// aggregateSeasonBatting sums every stint of the latest top-level season.
func aggregateSeasonBatting(rows []BattingRow) (map[int]model.SeasonBatting, int) {
	out := make(map[int]model.SeasonBatting)
	year, ok := latestBattingYear(rows)
	if !ok {
		return out, 0
	}
	for _, r := range rows {
		if !topLevel(r.LevelID, r.SplitID) || r.Year != year {
			continue
		}
		s := out[r.PlayerID]
		s.PA = plus(s.PA, r.PA)
		s.WAR = plus(s.WAR, r.WAR)
		out[r.PlayerID] = s
	}
	for id, s := range out {
		s.SWAR = model.Div(battingBaselinePA, s.PA) * s.WAR
		out[id] = s
	}
	return out, year
}

func aggregateCareerPitching(rows []PitchingRow) map[int]model.CareerPitching {
	out := make(map[int]model.CareerPitching)
	for _, r := range rows {
		if !topLevel(r.LevelID, r.SplitID) {
			continue
		}
		c := out[r.PlayerID]
		c.IP = plus(c.IP, r.IP)
		c.WAR = plus(c.WAR, r.WAR)
		out[r.PlayerID] = c
	}
	return out
}

// aggregateSeasonPitching sums every stint of the latest top-level season.
func aggregateSeasonPitching(rows []PitchingRow) (map[int]model.SeasonPitching, int) {
	out := make(map[int]model.SeasonPitching)
	year, found := 0, false
	for _, r := range rows {
		if topLevel(r.LevelID, r.SplitID) && (!found || r.Year > year) {
			year, found = r.Year, true
		}
	}
	if !found {
		return out, 0
	}
	for _, r := range rows {
		if !topLevel(r.LevelID, r.SplitID) || r.Year != year {
			continue
		}
		s := out[r.PlayerID]
		s.IP = plus(s.IP, r.IP)
		s.WAR = plus(s.WAR, r.WAR)
		s.RA9WAR = plus(s.RA9WAR, r.RA9WAR)
		out[r.PlayerID] = s
	}
	for id, s := range out {
		s.SWAR = model.Div(pitchingBaselineIP, s.IP) * s.WAR
		out[id] = s
	}
	return out, year
}
