// Package pitching classifies pitchers as starters or relievers and projects
// FIP and standardized WAR over 180 innings.
package pitching

import (
	"github.com/okian/pistachio/internal/domain/model"
)

const (
	// PitchMinimum is the internal-scale rating a pitch needs to count.
	PitchMinimum = 85
	// PBabipMinimum is the exported babip-against grade a role requires.
	PBabipMinimum = 45

	starterPitches  = 3
	relieverPitches = 2

	leagueFIP   = 4.1
	eliteFIP    = 2.75
	poorFIP     = 5.45
	leagueRA9   = 4.62
	leagueERA   = 4.25
	innings     = 180.0
	replacement = 0.12
)

// Stamina thresholds on the internal scale. Potential asks for one point more.
const (
	StarterStaminaCurrent   = 68
	StarterStaminaPotential = 69
)

// view is one rating set's pitching ratings and its stamina threshold.
type view struct {
	scaled  model.Pitching // internal scale
	graded  model.Pitching // exported 20-80 grades
	stamina float64
}

// Project computes the pitching projection of p for one rating set. groundFly
// is the minimum ground-ball tendency for either role.
func Project(p *model.Player, groundFly int, potential bool) model.Pitcher {
	v := view{
		scaled:  p.Ratings.Current.Pitching,
		graded:  p.Ratings2080.Current.Pitching,
		stamina: StarterStaminaCurrent,
	}
	if potential {
		v.scaled = p.Ratings.Potential.Pitching
		v.graded = p.Ratings2080.Potential.Pitching
		v.stamina = StarterStaminaPotential
	}

	var out model.Pitcher
	out.Pitches = CountPitches(v.scaled.Pitches)

	gb := p.Ratings.GroundFly >= float64(groundFly)
	babip := v.graded.PBabip >= PBabipMinimum
	out.Starter = gb && p.Ratings.Stamina >= v.stamina && babip && out.Pitches >= starterPitches
	out.Reliever = gb && out.Pitches >= relieverPitches && babip && !out.Starter

	out.DonkeyFIP = DonkeyFIP(v.scaled)
	out.Rating = Rating(v.graded)
	out.FIP = FIP(out.Rating)
	out.StarterFIP = model.Bool01(out.Starter) * out.FIP
	out.RelieverFIP = model.Bool01(out.Reliever) * out.FIP

	out.FIPR9 = out.FIP + leagueRA9 - leagueERA
	out.RPW = RunsPerWin(out.FIPR9)
	out.WAR = WAR(out.FIPR9, out.RPW)
	out.StarterWAR = out.WAR * model.Bool01(out.Starter)
	out.RelieverWAR = (out.WAR / 3) * model.Bool01(out.Reliever)
	return out
}

// CountPitches counts pitches rated at least PitchMinimum. Missing ratings
// never count.
func CountPitches(pitches [model.NumPitchTypes]float64) int {
	n := 0
	for _, r := range pitches {
		if r >= PitchMinimum {
			n++
		}
	}
	return n
}

// DonkeyFIP is the older FIP estimate on a half-value scale. It is kept in
// the snapshot but no longer drives WAR.
func DonkeyFIP(scaled model.Pitching) float64 {
	stuff := scaled.Stuff / 2
	control := scaled.Control / 2
	movement := scaled.Movement / 2
	return 8.661141 - (0.01747 * stuff) - (0.03291 * movement) - (0.01737 * control)
}

// Rating blends the exported stuff, control, home-run avoidance and babip
// against grades.
func Rating(graded model.Pitching) float64 {
	return (0.25 * graded.Stuff) + (0.19 * graded.Control) + (0.51 * graded.HRA) + (0.05 * graded.PBabip)
}

// FIP maps a blended rating onto FIP: 65, 50 and 45 land on 2.75, 4.1 and
// 5.45. A missing rating gives a missing FIP.
func FIP(rating float64) float64 {
	if rating > 50 {
		return leagueFIP - ((rating - 50) * ((leagueFIP - eliteFIP) / 15))
	}
	return leagueFIP + ((50 - rating) * ((poorFIP - leagueFIP) / 5))
}

// RunsPerWin derives the run environment from FIP per nine.
func RunsPerWin(fipr9 float64) float64 {
	return ((((12.375 * leagueRA9) + (5.625 * fipr9)) / 18) + 2) * 1.5
}

// WAR is standardized pitcher WAR over 180 innings.
func WAR(fipr9, rpw float64) float64 {
	return ((((leagueRA9 - fipr9) / rpw) + replacement) * innings) / 9
}

// Apply projects current and potential pitching for every player.
func Apply(t model.Table, groundFly int) model.Table {
	return t.Map(func(p *model.Player) {
		p.Pitcher = Project(p, groundFly, false)
		p.PitcherPot = Project(p, groundFly, true)
	})
}

// RoleCounts counts starters and relievers for one rating set.
func RoleCounts(t model.Table, potential bool) (starters, relievers int) {
	for i := range t.Players {
		pc := t.Players[i].Pitcher
		if potential {
			pc = t.Players[i].PitcherPot
		}
		if pc.Starter {
			starters++
		}
		if pc.Reliever {
			relievers++
		}
	}
	return starters, relievers
}
