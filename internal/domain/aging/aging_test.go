package aging_test

import (
	"testing"

	"github.com/okian/pistachio/internal/domain/aging"
	"github.com/okian/pistachio/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEligible(t *testing.T) {
	Convey("Given fielding ratings on the internal scale", t, func() {
		Convey("When a player qualifies nowhere", func() {
			Convey("Then the list is empty", func() {
				So(aging.Eligible(model.Fielding{}), ShouldBeEmpty)
				So(aging.GroupOf(nil), ShouldEqual, aging.GroupNone)
			})
		})

		Convey("When a player has infield range and arm", func() {
			f := model.Fielding{InfieldRange: 181, InfieldArm: 166, CatcherFraming: 150}
			field := aging.Eligible(f)

			Convey("Then positions are listed in eligibility order", func() {
				So(field, ShouldResemble, []model.Position{model.Catcher, model.Shortstop, model.ThirdBase})
				So(aging.FieldLabel(field), ShouldEqual, "C, SS, 3B")
				So(aging.GroupOf(field), ShouldEqual, aging.GroupB)
			})
		})

		Convey("When range sits exactly on a boundary", func() {
			Convey("Then strict bounds exclude it", func() {
				So(aging.Eligible(model.Fielding{InfieldRange: 159}), ShouldBeEmpty)
				So(aging.Eligible(model.Fielding{OutfieldRange: 133}), ShouldBeEmpty)
				So(aging.Eligible(model.Fielding{InfieldRange: 160}), ShouldBeEmpty)
			})
		})

		Convey("When a player is a corner outfielder", func() {
			field := aging.Eligible(model.Fielding{OutfieldRange: 117})

			Convey("Then the player is in the middle tier", func() {
				So(field, ShouldResemble, []model.Position{model.LeftField})
				So(aging.GroupOf(field), ShouldEqual, aging.GroupC)
			})
		})

		Convey("When ratings are missing", func() {
			Convey("Then nothing qualifies", func() {
				m := model.MissingRatings()
				So(aging.Eligible(m.Fielding), ShouldBeEmpty)
			})
		})
	})
}

func TestGroups(t *testing.T) {
	Convey("Given mixed positions", t, func() {
		Convey("Then the highest tier wins", func() {
			So(aging.GroupOf([]model.Position{model.FirstBase, model.LeftField}), ShouldEqual, aging.GroupC)
			So(aging.GroupOf([]model.Position{model.RightField, model.CenterField}), ShouldEqual, aging.GroupB)
			So(aging.GroupOf([]model.Position{model.DesignatedHitter}), ShouldEqual, aging.GroupA)
		})
	})

	Convey("Given the benchmark tables", t, func() {
		Convey("Then ages are clamped and extended flat", func() {
			So(aging.TrackValue(10, aging.GroupB), ShouldEqual, 52)
			So(aging.TrackValue(20, aging.GroupB), ShouldEqual, 62)
			So(aging.TrackValue(20, aging.GroupC), ShouldEqual, 69)
			So(aging.TrackValue(27, aging.GroupA), ShouldEqual, 110)
			So(aging.TrackValue(45, aging.GroupC), ShouldEqual, 100)
			So(aging.TrackValue(60, aging.GroupB), ShouldEqual, 90)
		})

		Convey("Then a player without a tier gets the defaults", func() {
			So(aging.TrackValue(20, aging.GroupNone), ShouldEqual, 100)
			So(aging.Divisor(aging.GroupNone), ShouldEqual, 100)
			So(aging.Divisor(aging.GroupB), ShouldEqual, 90)
			So(aging.Divisor(aging.GroupA), ShouldEqual, 110)
		})
	})
}

func TestProjection(t *testing.T) {
	Convey("Given a current OPS+", t, func() {
		Convey("When the player is young", func() {
			Convey("Then growth compounds to the target age and floors", func() {
				So(aging.OPS21(18, 80), ShouldEqual, 97)
				So(aging.OPS21(12, 60), ShouldEqual, 77)
				So(aging.OPS27(20, 100), ShouldEqual, 144)
				So(aging.OPS27(25, 95), ShouldEqual, 96)
			})
		})

		Convey("When the player has reached the target age", func() {
			Convey("Then the current value is kept", func() {
				So(aging.OPS21(21, 88.5), ShouldEqual, 88.5)
				So(aging.OPS27(27, 101), ShouldEqual, 101)
				So(aging.OPS27(33, 101), ShouldEqual, 101)
			})
		})

		Convey("When the player is past 21", func() {
			Convey("Then the age-21 projection is zero", func() {
				So(aging.OPS21(22, 120), ShouldEqual, 0)
			})
		})

		Convey("When OPS+ is missing", func() {
			Convey("Then projections stay missing", func() {
				So(model.IsMissing(aging.OPS21(18, model.Missing())), ShouldBeTrue)
				So(model.IsMissing(aging.OPS27(18, model.Missing())), ShouldBeTrue)
			})
		})
	})
}

func TestEvaluate(t *testing.T) {
	Convey("Given a young shortstop ahead of the curve", t, func() {
		var p model.Player
		p.Bio.Age = 20
		p.Bio.Club = "BOS"
		p.Ratings.Fielding.InfieldRange = 181
		p.Current.Line.OPSPlus = 99
		p.Potential.Line.OPSPlus = 120

		tr := aging.Evaluate(&p)

		Convey("Then the tier B benchmarks apply", func() {
			So(tr.Value, ShouldEqual, 62)
			So(tr.Tpct, ShouldEqual, 1.6)
			So(tr.OnTrack, ShouldEqual, "BOS track")
			So(tr.Ppct, ShouldEqual, 1.33)
			So(tr.Pscore, ShouldEqual, 2.13)
			So(tr.OPSPlusPF, ShouldEqual, 120)
			So(tr.PscoreF, ShouldEqual, 2.13)
			So(tr.OPS21, ShouldEqual, 107)
		})
	})

	Convey("Given a veteran with no fielding position", t, func() {
		var p model.Player
		p.Bio.Age = 30
		p.Bio.Club = "NYY"
		p.Current.Line.OPSPlus = 99
		p.Potential.Line.OPSPlus = 120

		tr := aging.Evaluate(&p)

		Convey("Then defaults apply and the filtered columns are blanked out", func() {
			So(tr.HasPosition(), ShouldBeFalse)
			So(tr.Value, ShouldEqual, 100)
			So(tr.Tpct, ShouldEqual, 0.99)
			So(tr.OnTrack, ShouldEqual, "")
			So(tr.Ppct, ShouldEqual, 1.2)
			So(tr.Pscore, ShouldEqual, 1.19)
			So(tr.OPSPlusPF, ShouldEqual, aging.Filtered)
			So(tr.PscoreF, ShouldEqual, aging.Filtered)
			So(tr.OPS21, ShouldEqual, 0)
			So(tr.OPS27, ShouldEqual, 99)
		})
	})

	Convey("Given an unscouted player", t, func() {
		var p model.Player
		p.Bio.Age = 19
		p.Ratings = model.MissingRatings()
		p.Current.Line.OPSPlus = model.Missing()
		p.Potential.Line.OPSPlus = model.Missing()

		out := aging.Apply(model.Table{Players: []model.Player{p}})
		tr := out.Players[0].Track

		Convey("Then the percentages are missing", func() {
			So(model.IsMissing(tr.Tpct), ShouldBeTrue)
			So(model.IsMissing(tr.Ppct), ShouldBeTrue)
			So(model.IsMissing(tr.Pscore), ShouldBeTrue)
			So(tr.OnTrack, ShouldEqual, "")
		})
	})
}

func TestUnknownAge(t *testing.T) {
	Convey("Given a shortstop whose age is blank", t, func() {
		var p model.Player
		p.Bio.Age = model.Missing()
		p.Bio.Club = "BOS"
		p.Ratings.Fielding.InfieldRange = 181
		p.Current.Line.OPSPlus = 99
		p.Potential.Line.OPSPlus = 120

		tr := aging.Evaluate(&p)

		Convey("Then nothing age-based is projected", func() {
			So(model.IsMissing(aging.TrackValue(model.Missing(), aging.GroupB)), ShouldBeTrue)
			So(model.IsMissing(tr.Value), ShouldBeTrue)
			So(model.IsMissing(tr.OPS21), ShouldBeTrue)
			So(model.IsMissing(tr.OPS27), ShouldBeTrue)
			So(model.IsMissing(tr.Tpct), ShouldBeTrue)
			So(tr.OnTrack, ShouldEqual, "")
		})
	})
}
