package pitching_test

import (
	"testing"

	"github.com/okian/pistachio/internal/domain/model"
	"github.com/okian/pistachio/internal/domain/pitching"
	"github.com/okian/pistachio/internal/domain/rating"
	. "github.com/smartystreets/goconvey/convey"
)

const tol = 1e-9

// pitcher builds a scouted pitcher from exported grades and rescales it.
func pitcher(stuff, control, hra, pbabip, stamina, groundFly float64, pitches ...float64) model.Player {
	var p model.Player
	for _, set := range []*model.Pitching{&p.Ratings.Current.Pitching, &p.Ratings.Potential.Pitching} {
		set.Stuff = stuff
		set.Control = control
		set.Movement = 50
		set.HRA = hra
		set.PBabip = pbabip
		for i := range set.Pitches {
			set.Pitches[i] = 20
		}
		for i, g := range pitches {
			set.Pitches[i] = g
		}
	}
	p.Ratings.Stamina = stamina
	p.Ratings.GroundFly = groundFly
	return rating.Apply(model.Table{Players: []model.Player{p}}).Players[0]
}

func TestFormulas(t *testing.T) {
	Convey("Given blended ratings around the league average", t, func() {
		Convey("When the rating is above 50", func() {
			r := pitching.Rating(model.Pitching{Stuff: 60, Control: 55, HRA: 65, PBabip: 50})

			Convey("Then FIP falls toward the elite anchor", func() {
				So(r, ShouldAlmostEqual, 61.1, tol)
				So(pitching.FIP(r), ShouldAlmostEqual, 3.101, tol)
				So(pitching.FIP(65), ShouldAlmostEqual, 2.75, tol)
			})
		})

		Convey("When the rating is 50 or below", func() {
			Convey("Then FIP rises five times as steeply", func() {
				So(pitching.FIP(50), ShouldAlmostEqual, 4.1, tol)
				So(pitching.FIP(45), ShouldAlmostEqual, 5.45, tol)
				So(pitching.FIP(44.05), ShouldAlmostEqual, 5.7065, tol)
			})
		})

		Convey("When the rating is missing", func() {
			Convey("Then FIP is missing", func() {
				So(model.IsMissing(pitching.FIP(model.Missing())), ShouldBeTrue)
			})
		})

		Convey("When converting FIP to WAR", func() {
			fipr9 := 3.101 + 4.62 - 4.25
			rpw := pitching.RunsPerWin(fipr9)

			Convey("Then runs per win and WAR follow the 180 inning baseline", func() {
				So(rpw, ShouldAlmostEqual, 9.39140625, tol)
				So(pitching.WAR(fipr9, rpw), ShouldAlmostEqual, 4.846917893686049, tol)
			})
		})

		Convey("When computing the half-scale FIP", func() {
			Convey("Then it uses halved internal ratings", func() {
				d := pitching.DonkeyFIP(model.Pitching{Stuff: 134, Control: 101, Movement: 117})
				So(d, ShouldAlmostEqual, 4.688231, tol)
			})
		})
	})
}

func TestRoles(t *testing.T) {
	Convey("Given a ground-ball threshold of 55", t, func() {
		const gb = 55

		Convey("When a pitcher has three pitches and stamina", func() {
			p := pitcher(60, 55, 65, 50, 40, 60, 45, 50, 55)
			out := pitching.Project(&p, gb, false)

			Convey("Then the pitcher starts and the WAR is the full projection", func() {
				So(out.Pitches, ShouldEqual, 3)
				So(out.Starter, ShouldBeTrue)
				So(out.Reliever, ShouldBeFalse)
				So(out.StarterWAR, ShouldAlmostEqual, 4.846917893686049, tol)
				So(out.RelieverWAR, ShouldEqual, 0)
				So(out.StarterFIP, ShouldAlmostEqual, 3.101, tol)
			})
		})

		Convey("When the same pitcher lacks stamina", func() {
			p := pitcher(60, 55, 65, 50, 35, 60, 45, 50, 55)
			out := pitching.Project(&p, gb, false)

			Convey("Then the pitcher relieves for a third of the WAR", func() {
				So(out.Starter, ShouldBeFalse)
				So(out.Reliever, ShouldBeTrue)
				So(out.RelieverWAR, ShouldAlmostEqual, 1.6156392978953498, tol)
				So(out.StarterWAR, ShouldEqual, 0)
			})
		})

		Convey("When stamina grades to exactly 68 or 69 on the internal scale", func() {
			p := pitcher(60, 55, 65, 50, 40, 60, 45, 50, 55)
			p.Ratings.Stamina = 68

			Convey("Then current ratings start but potential ratings relieve", func() {
				So(pitching.Project(&p, gb, false).Starter, ShouldBeTrue)
				pot := pitching.Project(&p, gb, true)
				So(pot.Starter, ShouldBeFalse)
				So(pot.Reliever, ShouldBeTrue)
			})
		})

		Convey("When the pitcher is a fly-ball pitcher", func() {
			p := pitcher(60, 55, 65, 50, 40, 50, 45, 50, 55)
			out := pitching.Project(&p, gb, false)

			Convey("Then neither role applies", func() {
				So(out.Starter, ShouldBeFalse)
				So(out.Reliever, ShouldBeFalse)
				So(out.WAR, ShouldAlmostEqual, 4.846917893686049, tol)
			})
		})

		Convey("When babip against grades below 45", func() {
			p := pitcher(60, 55, 65, 40, 40, 60, 45, 50, 55)
			out := pitching.Project(&p, gb, false)

			Convey("Then neither role applies", func() {
				So(out.Starter, ShouldBeFalse)
				So(out.Reliever, ShouldBeFalse)
			})
		})

		Convey("When only one pitch qualifies", func() {
			p := pitcher(60, 55, 65, 50, 40, 60, 45, 40, 40)
			out := pitching.Project(&p, gb, false)

			Convey("Then neither role applies", func() {
				So(out.Pitches, ShouldEqual, 1)
				So(out.Starter || out.Reliever, ShouldBeFalse)
			})
		})

		Convey("When the pitcher is unscouted", func() {
			var p model.Player
			p.Ratings = model.MissingRatings()
			p.Ratings2080 = model.MissingRatings()
			out := pitching.Project(&p, gb, false)

			Convey("Then no role is assigned and WAR is missing in both roles", func() {
				So(out.Starter || out.Reliever, ShouldBeFalse)
				So(model.IsMissing(out.WAR), ShouldBeTrue)
				So(model.IsMissing(out.StarterWAR), ShouldBeTrue)
				So(model.IsMissing(out.RelieverWAR), ShouldBeTrue)
			})
		})
	})
}

func TestApply(t *testing.T) {
	Convey("Given a staff of pitchers", t, func() {
		staff := model.Table{Players: []model.Player{
			pitcher(60, 55, 65, 50, 40, 60, 45, 50, 55),
			pitcher(60, 55, 65, 50, 35, 60, 45, 50, 55),
			pitcher(60, 55, 65, 50, 40, 40, 45, 50, 55),
		}}
		out := pitching.Apply(staff, 55)

		Convey("Then roles are never both set", func() {
			for _, p := range out.Players {
				So(p.Pitcher.Starter && p.Pitcher.Reliever, ShouldBeFalse)
				So(p.PitcherPot.Starter && p.PitcherPot.Reliever, ShouldBeFalse)
			}
		})

		Convey("Then roles are counted per rating set", func() {
			sp, rp := pitching.RoleCounts(out, false)
			So(sp, ShouldEqual, 1)
			So(rp, ShouldEqual, 1)
		})
	})
}
