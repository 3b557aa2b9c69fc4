package export_test

import (
	"testing"

	"github.com/okian/pistachio/internal/domain/export"
	"github.com/okian/pistachio/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func player(id int, name, club string, best, bestPot float64) model.Player {
	var p model.Player
	p.ID = id
	p.Bio.Name = name
	p.Bio.Club = club
	p.Bio.Age = 24
	p.Bio.Bats = 3
	p.Bio.Throws = 2
	p.Value.Best = best
	p.Value.BestPos = model.Shortstop
	p.ValuePot.Best = bestPot
	p.ValuePot.BestPos = model.Shortstop
	p.SeasonBatting.PA = model.Missing()
	p.SeasonPitching.IP = model.Missing()
	p.CareerLine.HRRounded = model.Missing()
	p.Current.Line.OBPRounded = model.Missing()
	p.Potential.Line.OBPRounded = model.Missing()
	p.Track.Tpct = model.Missing()
	for _, pc := range []*model.Pitcher{&p.Pitcher, &p.PitcherPot} {
		pc.WAR = model.Missing()
		pc.StarterWAR = model.Missing()
		pc.RelieverWAR = model.Missing()
		pc.FIP = model.Missing()
	}
	return p
}

func column(r export.Report, name string) int {
	for i, h := range r.Header {
		if h == name {
			return i
		}
	}
	return -1
}

func names(r export.Report) []string {
	i := column(r, "name")
	out := make([]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		out = append(out, row[i])
	}
	return out
}

func TestFlag(t *testing.T) {
	Convey("Given a shortlist pasted in capitals", t, func() {
		tbl := model.Table{Players: []model.Player{
			player(1, "Ana Ruiz", "BOS", 0, 0),
			player(2, "Ben Cole", "NYY", 0, 0),
		}}
		out := export.Flag(tbl, []string{"ANA RUIZ", "  ", "nobody here"})

		Convey("Then matching ignores case", func() {
			So(out.Players[0].Flagged, ShouldBeTrue)
			So(out.Players[1].Flagged, ShouldBeFalse)
			So(export.Flagged(out), ShouldEqual, 1)
		})

		Convey("Then the input table is unchanged", func() {
			So(tbl.Players[0].Flagged, ShouldBeFalse)
		})
	})
}

func TestBatters(t *testing.T) {
	Convey("Given players around the threshold", t, func() {
		weak := player(3, "Cal Weak", "SEA", 0.05, 0.02)
		listed := player(4, "Dee Listed", "SEA", 0.05, 0.02)
		unscouted := player(5, "Eve Blank", "SEA", model.Missing(), model.Missing())
		unscouted.Value.BestPos = model.NoPosition
		tbl := model.Table{Players: []model.Player{
			player(1, "Ann Own", "BOS", -1, -1),
			player(2, "Bo Good", "SEA", 0.1, -1),
			weak,
			listed,
			unscouted,
			player(6, "Fay Future", "SEA", -2, 0.1),
		}}
		tbl = export.Flag(tbl, []string{"dee listed"})
		r := export.Batters(tbl, "BOS")

		Convey("Then the managed club, threshold and flagged players are kept", func() {
			So(names(r), ShouldResemble, []string{"Ann Own", "Bo Good", "Dee Listed", "Fay Future"})
		})

		Convey("Then the header is the fixed contract", func() {
			So(r.Header, ShouldResemble, []string{
				"name", "age", "club", "minor", "pa", "best", "pos", "field", "bats", "HR_mlb",
				"HR", "OBP", "OPS+", "bestP", "HR_p", "OBP_p", "OPS+_p", "OPS+_pF", "Tpct",
				"c", "1b", "2b", "3b", "ss", "lf", "cf", "rf", "dh",
				"cP", "1bP", "2bP", "3bP", "ssP", "lfP", "cfP", "rfP", "dhP",
				"toWAR", "toWARP",
				"c_tdWAR", "1b_tdWAR", "2b_tdWAR", "3b_tdWAR", "ss_tdWAR", "lf_tdWAR", "cf_tdWAR", "rf_tdWAR", "dh_tdWAR",
				"in_list",
			})
			So(r.Name, ShouldEqual, export.BatterReport)
		})

		Convey("Then cells are recoded and filled", func() {
			row := r.Rows[2]
			So(row[column(r, "bats")], ShouldEqual, "S")
			So(row[column(r, "pos")], ShouldEqual, "ss")
			So(row[column(r, "pa")], ShouldEqual, "0")
			So(row[column(r, "HR_mlb")], ShouldEqual, "")
			So(row[column(r, "OBP")], ShouldEqual, "")
			So(row[column(r, "best")], ShouldEqual, "0.05")
			So(row[column(r, "in_list")], ShouldEqual, export.FlagLabel)
			So(row[column(r, "minor")], ShouldEqual, "0")
		})
	})

	Convey("Given a flagged player with no WAR", t, func() {
		p := player(7, "Gil Ghost", "SEA", model.Missing(), model.Missing())
		p.Value.BestPos = model.NoPosition
		p.Current.WAR = model.Missing()
		tbl := export.Flag(model.Table{Players: []model.Player{p}}, []string{"gil ghost"})
		r := export.Batters(tbl, "BOS")

		Convey("Then WAR-like cells carry the sentinel", func() {
			So(r.Len(), ShouldEqual, 1)
			So(r.Rows[0][column(r, "best")], ShouldEqual, "-999")
			So(r.Rows[0][column(r, "toWAR")], ShouldEqual, "-999")
			So(r.Rows[0][column(r, "pos")], ShouldEqual, "")
		})
	})

	Convey("Given rounding at a half", t, func() {
		p := player(8, "Hal Half", "BOS", 1.125, 0.5)
		p.SeasonBatting.PA = 412.5
		p.CareerLine.HRRounded = 18
		r := export.Batters(model.Table{Players: []model.Player{p}}, "BOS")

		Convey("Then halves round to even", func() {
			So(r.Rows[0][column(r, "best")], ShouldEqual, "1.12")
			So(r.Rows[0][column(r, "pa")], ShouldEqual, "412")
			So(r.Rows[0][column(r, "HR_mlb")], ShouldEqual, "18")
		})
	})
}

func TestPitchers(t *testing.T) {
	Convey("Given pitchers in different roles", t, func() {
		starter := player(1, "Ike Start", "SEA", 0, 0)
		starter.Pitcher.StarterWAR = 2.346
		starter.Pitcher.RelieverWAR = 0
		starter.Pitcher.FIP = 3.101
		starter.SeasonPitching.IP = 150.1
		reliever := player(2, "Jo Pen", "SEA", 0, 0)
		reliever.PitcherPot.RelieverWAR = 0.1
		none := player(3, "Kip None", "SEA", 0, 0)
		own := player(4, "Lu Own", "BOS", 0, 0)
		tbl := model.Table{Players: []model.Player{starter, reliever, none, own}}
		r := export.Pitchers(tbl, "BOS")

		Convey("Then any role clearing the threshold is enough", func() {
			So(names(r), ShouldResemble, []string{"Ike Start", "Jo Pen", "Lu Own"})
		})

		Convey("Then the columns are renamed and recoded", func() {
			So(r.Header, ShouldResemble, []string{
				"name", "age", "club", "minor", "ip", "throws", "sp", "rp", "spP", "rpP", "FIP", "FIP_pot", "in_list",
			})
			row := r.Rows[0]
			So(row[column(r, "throws")], ShouldEqual, "L")
			So(row[column(r, "sp")], ShouldEqual, "2.35")
			So(row[column(r, "rp")], ShouldEqual, "0")
			So(row[column(r, "spP")], ShouldEqual, "-999")
			So(row[column(r, "FIP")], ShouldEqual, "3.1")
			So(row[column(r, "ip")], ShouldEqual, "150.1")
			So(r.Rows[1][column(r, "ip")], ShouldEqual, "")
		})
	})
}

func TestSnapshot(t *testing.T) {
	Convey("Given a table with passthrough columns", t, func() {
		p := player(9, "Max Snap", "BOS", 1, 2)
		p.Extra = []string{"R", "7"}
		p.Ratings.Current.Batting.Eye = 101
		p.Ratings2080.Current.Batting.Eye = 50
		tbl := model.Table{Extra: []string{"position_note", "role"}, Players: []model.Player{p}}
		r := export.Snapshot(tbl)

		Convey("Then every player is written with passthrough and derived columns", func() {
			So(r.Len(), ShouldEqual, 1)
			So(r.Header[0], ShouldEqual, "player_id")
			So(r.Rows[0][column(r, "position_note")], ShouldEqual, "R")
			So(r.Rows[0][column(r, "role")], ShouldEqual, "7")
			So(r.Rows[0][column(r, "batting_ratings_overall_eye")], ShouldEqual, "101")
			So(r.Rows[0][column(r, "eye2080")], ShouldEqual, "50")
			So(r.Rows[0][column(r, "best_sWAR_pot_pos")], ShouldEqual, "ss")
			So(r.Rows[0][column(r, "PscoreF")], ShouldEqual, "0")
		})

		Convey("Then column names are unique", func() {
			seen := map[string]bool{}
			for _, h := range r.Header {
				So(seen[h], ShouldBeFalse)
				seen[h] = true
			}
			for _, h := range []string{"toWAR_pot", "OPS+_p", "HR_mlb", "OBP_mlb", "c_def", "dh_tdWAR", "sp_sWAR_pot", "donkeyFIP", "onT"} {
				So(seen[h], ShouldBeTrue)
			}
		})
	})
}

func TestInclusionEdges(t *testing.T) {
	Convey("Given best values just under the threshold", t, func() {
		near := player(1, "Nia Near", "SEA", 0.097, -1)
		nearPot := player(2, "Ody Near", "SEA", -1, 0.095001)
		short := player(3, "Pat Short", "SEA", 0.094, 0.0949)
		arm := player(4, "Quin Arm", "SEA", -1, -1)
		arm.Pitcher.StarterWAR = 0.097
		tbl := model.Table{Players: []model.Player{near, nearPot, short, arm}}

		Convey("Then batters are compared as reported", func() {
			So(names(export.Batters(tbl, "BOS")), ShouldResemble, []string{"Nia Near", "Ody Near"})
		})

		Convey("Then pitchers are compared unrounded", func() {
			So(export.Pitchers(tbl, "BOS").Len(), ShouldEqual, 0)
		})
	})

	Convey("Given no managed club", t, func() {
		clubless := player(5, "Ray Free", "", -1, -1)
		tbl := model.Table{Players: []model.Player{clubless}}

		Convey("Then players without a club are not pulled in", func() {
			So(export.Batters(tbl, "").Len(), ShouldEqual, 0)
			So(export.Pitchers(tbl, "").Len(), ShouldEqual, 0)
		})
	})

	Convey("Given a player with blank age and handedness", t, func() {
		p := player(6, "Sol Blank", "BOS", 1, 1)
		p.Bio.Age = model.Missing()
		p.Bio.Bats = model.Missing()
		p.Bio.Throws = model.Missing()
		tbl := model.Table{Players: []model.Player{p}}

		Convey("Then the cells stay blank", func() {
			b := export.Batters(tbl, "BOS")
			So(b.Rows[0][column(b, "age")], ShouldEqual, "")
			So(b.Rows[0][column(b, "bats")], ShouldEqual, "")
			pr := export.Pitchers(tbl, "BOS")
			So(pr.Rows[0][column(pr, "throws")], ShouldEqual, "")
			s := export.Snapshot(tbl)
			So(s.Rows[0][column(s, "bats")], ShouldEqual, "")
			So(s.Rows[0][column(s, "age")], ShouldEqual, "")
		})
	})
}
