package merge_test

import (
	"testing"

	"github.com/okian/pistachio/internal/domain/merge"
	"github.com/okian/pistachio/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func ratingsWithEye(eye float64) model.Ratings {
	var r model.Ratings
	r.Current.Batting.Eye = eye
	return r
}

func fixture() merge.Input {
	return merge.Input{
		PlayerExtra: []string{"league_id", "nick_name", "position"},
		Players: []merge.PlayerRow{
			{ID: 1, Bio: model.Bio{FirstName: "Ada", LastName: "Stone", Age: 24, OrganizationID: 7, TeamID: 7}, Extra: []string{"100", "Rocky", "6"}},
			{ID: 2, Bio: model.Bio{FirstName: "Ben", LastName: "Ortiz", Age: 19, OrganizationID: 7, TeamID: 31}, Extra: []string{"100", "", "2"}},
			{ID: 3, Bio: model.Bio{FirstName: "Cy", LastName: "Old", Age: 44, OrganizationID: 9, TeamID: 9}, Retired: true},
			{ID: 4, Bio: model.Bio{FirstName: "Dee", LastName: "Nobody", Age: 30, OrganizationID: 99, TeamID: 99}, Extra: []string{"101", "", "1"}},
		},
		ScoutedExtra: []string{"position", "scouting_team_id", "overall_rating"},
		Scouted: []merge.ScoutedRow{
			{PlayerID: 1, ScoutID: 5, Ratings: ratingsWithEye(60), Extra: []string{"9", "7", "55"}},
			{PlayerID: 1, ScoutID: 5, Ratings: ratingsWithEye(80), Extra: []string{"9", "7", "70"}},
			{PlayerID: 1, ScoutID: 6, Ratings: ratingsWithEye(20), Extra: []string{"9", "7", "20"}},
			{PlayerID: 2, ScoutID: 5, Ratings: ratingsWithEye(45), Extra: []string{"2", "7", "45"}},
			{PlayerID: 4, ScoutID: 6, Ratings: ratingsWithEye(70), Extra: []string{"1", "7", "70"}},
		},
		CareerBatting: []merge.BattingRow{
			{PlayerID: 1, Year: 2030, LevelID: 1, SplitID: 1, PA: 300, BB: 30, K: 60, H: 80, D: 15, T: 2, HR: 10, HP: 3, PitchesSeen: 1200, WAR: 1.0},
			{PlayerID: 1, Year: 2031, LevelID: 1, SplitID: 1, PA: 200, BB: 20, K: 40, H: 50, D: 10, T: 1, HR: 8, HP: 1, PitchesSeen: 800, WAR: 0.8},
			{PlayerID: 1, Year: 2031, LevelID: 1, SplitID: 1, PA: 125, BB: 10, K: 30, H: 35, D: 5, T: 0, HR: 4, HP: 0, PitchesSeen: 500, WAR: 0.45},
			{PlayerID: 1, Year: 2031, LevelID: 1, SplitID: 2, PA: 90, BB: 9, K: 20, H: 20, D: 5, T: 0, HR: 3, HP: 0, PitchesSeen: 360, WAR: 0.2},
			{PlayerID: 1, Year: 2031, LevelID: 2, SplitID: 1, PA: 400, BB: 40, K: 80, H: 120, D: 20, T: 4, HR: 20, HP: 2, PitchesSeen: 1600, WAR: 2.0},
			{PlayerID: 2, Year: 2031, LevelID: 1, SplitID: 1, PA: 0, WAR: 0.1},
		},
		CareerPitching: []merge.PitchingRow{
			{PlayerID: 4, Year: 2030, LevelID: 1, SplitID: 1, IP: 100, WAR: 1.5, RA9WAR: 1.7},
			{PlayerID: 4, Year: 2031, LevelID: 1, SplitID: 1, IP: 60, WAR: 1.0, RA9WAR: 1.1},
			{PlayerID: 4, Year: 2031, LevelID: 1, SplitID: 1, IP: 30, WAR: 0.5, RA9WAR: 0.4},
			{PlayerID: 4, Year: 2032, LevelID: 2, SplitID: 1, IP: 90, WAR: 2.0, RA9WAR: 2.0},
		},
		Clubs: map[int]string{7: "TOR", 9: "BOS"},
	}
}

func byID(t model.Table) map[int]model.Player {
	out := make(map[int]model.Player, t.Len())
	for _, p := range t.Players {
		out[p.ID] = p
	}
	return out
}

func TestMergePlayers(t *testing.T) {
	Convey("Given raw extracts", t, func() {
		tbl, sum := merge.Merge(fixture(), 5)
		players := byID(tbl)

		Convey("Then retired players are excluded and the rest kept in order", func() {
			So(tbl.Len(), ShouldEqual, 3)
			So(tbl.Players[0].ID, ShouldEqual, 1)
			So(tbl.Players[2].ID, ShouldEqual, 4)
			So(sum.Retired, ShouldEqual, 1)
		})

		Convey("Then only the configured scout's first row per player is used", func() {
			So(players[1].Scouted, ShouldBeTrue)
			So(players[1].Ratings.Current.Batting.Eye, ShouldEqual, 60)
			So(sum.ScoutedRows, ShouldEqual, 3)
			So(sum.DuplicateScouted, ShouldEqual, 1)
		})

		Convey("Then a player the scout never rated is kept with missing ratings", func() {
			p := players[4]
			So(p.Scouted, ShouldBeFalse)
			So(model.IsMissing(p.Ratings.Current.Batting.Eye), ShouldBeTrue)
			So(model.IsMissing(p.Ratings.Fielding.OutfieldRange), ShouldBeTrue)
			So(sum.Unscouted, ShouldEqual, 1)
		})

		Convey("Then names, club and affiliation are derived", func() {
			So(players[1].Bio.Name, ShouldEqual, "Ada Stone")
			So(players[1].Bio.Club, ShouldEqual, "TOR")
			So(players[1].Bio.Minor, ShouldBeFalse)
			So(players[2].Bio.Minor, ShouldBeTrue)
			So(players[4].Bio.Club, ShouldEqual, "")
			So(sum.WithoutClub, ShouldEqual, 1)
		})

		Convey("Then passthrough columns keep the first-seen copy and skip dropped ones", func() {
			So(tbl.Extra, ShouldResemble, []string{"league_id", "position", "overall_rating"})
			So(players[1].Extra, ShouldResemble, []string{"100", "6", "55"})
			So(players[4].Extra, ShouldResemble, []string{"101", "1", ""})
		})
	})
}

func TestMergeBattingAggregates(t *testing.T) {
	Convey("Given multi-year, multi-level and multi-split batting rows", t, func() {
		tbl, sum := merge.Merge(fixture(), 5)
		players := byID(tbl)
		c := players[1].CareerBatting

		Convey("Then the career sums only top-level, all-split rows", func() {
			So(c.PA, ShouldEqual, 625)
			So(c.BB, ShouldEqual, 60)
			So(c.H, ShouldEqual, 165)
			So(c.PitchesSeen, ShouldEqual, 2500)
		})

		Convey("Then career rates recompute from the counting stats", func() {
			So(c.BBPct, ShouldEqual, model.Round(c.BB/c.PA, 3))
			So(c.KPct, ShouldEqual, model.Round(c.K/c.PA, 3))
			So(c.SinglePct, ShouldEqual, model.Round(c.H/c.PA, 3))
			So(c.DoublePct, ShouldEqual, model.Round(c.D/c.PA, 3))
			So(c.TriplePct, ShouldEqual, model.Round(c.T/c.PA, 3))
			So(c.HRPct, ShouldEqual, model.Round(c.HR/c.PA, 3))
			So(c.HPPct, ShouldEqual, model.Round(c.HP/c.PA, 3))
			So(c.PitchesPerPA, ShouldEqual, 4)
		})

		Convey("Then the season sums both stints of the latest year", func() {
			s := players[1].SeasonBatting
			So(sum.SeasonBattingYear, ShouldEqual, 2031)
			So(s.PA, ShouldEqual, 325)
			So(s.WAR, ShouldAlmostEqual, 1.25, 1e-9)
			So(s.SWAR, ShouldAlmostEqual, 2.5, 1e-9)
		})

		Convey("Then zero plate appearances leave the standardized figures missing", func() {
			So(model.IsMissing(players[2].SeasonBatting.SWAR), ShouldBeTrue)
			So(model.IsMissing(players[2].CareerBatting.BBPct), ShouldBeTrue)
		})

		Convey("Then a player with no batting rows has missing aggregates", func() {
			So(model.IsMissing(players[4].CareerBatting.PA), ShouldBeTrue)
			So(model.IsMissing(players[4].SeasonBatting.PA), ShouldBeTrue)
		})
	})
}

func TestMergePitchingAggregates(t *testing.T) {
	Convey("Given pitching rows where a minor-league year is the newest", t, func() {
		tbl, sum := merge.Merge(fixture(), 5)
		p := byID(tbl)[4]

		Convey("Then the season is the latest top-level year", func() {
			So(sum.SeasonPitchYear, ShouldEqual, 2031)
			So(p.SeasonPitching.IP, ShouldEqual, 90)
			So(p.SeasonPitching.WAR, ShouldAlmostEqual, 1.5, 1e-9)
			So(p.SeasonPitching.RA9WAR, ShouldAlmostEqual, 1.5, 1e-9)
			So(p.SeasonPitching.SWAR, ShouldAlmostEqual, 3.0, 1e-9)
		})

		Convey("Then the career sums every top-level year", func() {
			So(p.CareerPitching.IP, ShouldEqual, 190)
			So(p.CareerPitching.WAR, ShouldAlmostEqual, 3.0, 1e-9)
		})

		Convey("Then batters without pitching rows have missing pitching figures", func() {
			So(model.IsMissing(byID(tbl)[1].SeasonPitching.IP), ShouldBeTrue)
		})
	})
}

func TestMergeSkipsMissingCounts(t *testing.T) {
	Convey("Given a stint with a blank WAR", t, func() {
		in := fixture()
		in.CareerBatting = []merge.BattingRow{
			{PlayerID: 1, Year: 2031, LevelID: 1, SplitID: 1, PA: 100, WAR: 1},
			{PlayerID: 1, Year: 2031, LevelID: 1, SplitID: 1, PA: 30, WAR: model.Missing()},
		}
		tbl, _ := merge.Merge(in, 5)

		Convey("Then the blank is skipped in the sum", func() {
			s := byID(tbl)[1].SeasonBatting
			So(s.PA, ShouldEqual, 130)
			So(s.WAR, ShouldEqual, 1)
		})
	})
}
