// Package defense projects defensive run values and defensive standardized
// WAR per fielding position.
//
// Each position sums one term per contributing rating. A term is the league
// average run value less a piecewise-linear fit of that rating, so a better
// fielder gives up fewer runs and earns a positive term.
package defense

import (
	"github.com/okian/pistachio/internal/domain/model"
	pw "github.com/okian/pistachio/internal/domain/piecewise"
)

// LeagueAverage is the run value each term is measured against.
const LeagueAverage = 4.6385

type input func(p *model.Player) float64

type term struct {
	in  input
	fit pw.Func
}

type position struct {
	terms []term
	bonus float64 // positional scarcity, in wins
}

func framing(p *model.Player) float64       { return p.Ratings.Fielding.CatcherFraming }
func catcherArm(p *model.Player) float64    { return p.Ratings.Fielding.CatcherArm }
func height(p *model.Player) float64        { return p.Bio.Height }
func infieldRange(p *model.Player) float64  { return p.Ratings.Fielding.InfieldRange }
func infieldError(p *model.Player) float64  { return p.Ratings.Fielding.InfieldError }
func infieldArm(p *model.Player) float64    { return p.Ratings.Fielding.InfieldArm }
func doublePlay(p *model.Player) float64    { return p.Ratings.Fielding.TurnDoublePlay }
func outfieldRange(p *model.Player) float64 { return p.Ratings.Fielding.OutfieldRange }
func outfieldError(p *model.Player) float64 { return p.Ratings.Fielding.OutfieldError }
func outfieldArm(p *model.Player) float64   { return p.Ratings.Fielding.OutfieldArm }

// neutral is a term that never moves off the league average.
var neutral = pw.Func{pw.Flat(LeagueAverage)} //nolint:gochecknoglobals // fitted parameters

// positions holds every fitted term, indexed by model.Position. The
// designated hitter has no terms and no bonus.
var positions = [model.NumPositions]position{ //nolint:gochecknoglobals // fitted parameters
	model.Catcher: {bonus: 1.5, terms: []term{
		{framing, pw.Func{
			pw.Below(pw.LE(40), 0, 5.311),
			pw.Between(pw.GE(41), pw.LE(61), -0.0204, 6.125),
			pw.Linear(-0.0028608333, 4.998622222),
		}},
		{catcherArm, pw.Func{pw.Linear(-0.0006034965035, 4.712621212)}},
	}},
	model.FirstBase: {bonus: 0.5, terms: []term{
		{height, pw.Func{pw.Linear(-0.0014708625, 4.917895105)}},
		{infieldRange, pw.Func{pw.Linear(-0.0001325174825, 4.645893939)}},
		{infieldError, pw.Func{pw.Linear(-0.0001685314685, 4.658242424)}},
		{infieldArm, neutral},
		{doublePlay, neutral},
	}},
	model.SecondBase: {bonus: 1.75, terms: []term{
		{doublePlay, pw.Func{
			pw.Below(pw.LE(200), -0.0012715152, 4.825866667),
			pw.Flat(4.569020596),
		}},
		{infieldRange, pw.Func{pw.Linear(-0.0016293706, 4.844484848)}},
		{infieldError, pw.Func{
			pw.Below(pw.LE(160), -0.0006464285714, 4.720428571),
			pw.Flat(4.628635714),
		}},
		{infieldArm, pw.Func{pw.Linear(-0.0002284965035, 4.658287879)}},
	}},
	model.ThirdBase: {bonus: 1.8, terms: []term{
		{doublePlay, neutral},
		{infieldRange, pw.Func{pw.Linear(-0.0015907343, 4.808545455)}},
		{infieldError, pw.Func{
			pw.Below(pw.LE(180), -0.0008091666667, 4.748583333),
			pw.Flat(4.61),
		}},
		{infieldArm, pw.Func{
			pw.Below(pw.LE(60), 0, 4.788),
			pw.Linear(-0.0021283333, 4.963644444),
		}},
	}},
	model.Shortstop: {bonus: 2.0, terms: []term{
		{doublePlay, pw.Func{
			pw.Below(pw.LE(200), -0.0007603030303, 4.7435333333),
			pw.Flat(4.597),
		}},
		{infieldRange, pw.Func{
			pw.Below(pw.LE(60), 0, 4.985),
			pw.Linear(-0.0045308333, 5.330155556),
		}},
		{infieldError, pw.Func{
			pw.Below(pw.LE(180), -0.0011291667, 4.793027778),
			pw.Flat(4.588),
		}},
		{infieldArm, pw.Func{pw.Linear(-0.0011823427, 4.809787879)}},
	}},
	model.LeftField: {bonus: 0.3, terms: []term{
		{outfieldArm, pw.Func{pw.Linear(-0.000190034965, 4.665287879)}},
		{outfieldRange, pw.Func{
			pw.Below(pw.LE(40), 0, 4.9135),
			pw.Between(pw.GE(41), pw.LE(80), -0.000825, 4.9445),
			pw.Between(pw.GE(81), pw.LE(100), -0.01135, 5.787),
			pw.Between(pw.GE(101), pw.LE(180), -0.000625, 4.661),
			pw.Flat(4.54),
		}},
		{outfieldError, neutral},
	}},
	model.CenterField: {bonus: 2.5, terms: []term{
		{outfieldArm, pw.Func{pw.Linear(-0.000190034965, 4.665287879)}},
		{outfieldRange, pw.Func{
			pw.Below(pw.LE(80), 0, 4.86),
			pw.Linear(-0.0030625, 5.15075),
		}},
		{outfieldError, pw.Func{pw.Linear(-0.0001664335664, 4.659636364)}},
	}},
	model.RightField: {bonus: 0.6, terms: []term{
		{outfieldArm, pw.Func{
			pw.Below(pw.LE(60), 0, 4.683),
			pw.Between(pw.GE(61), pw.LE(180), -0.0005428571429, 4.716142857),
			pw.Flat(4.618),
		}},
		{outfieldRange, pw.Func{
			pw.Below(pw.LE(80), -0.000455, 4.89),
			pw.Between(pw.GE(81), pw.LE(160), -0.004385, 5.1866),
			pw.Flat(4.5),
		}},
		{outfieldError, neutral},
	}},
}

// Runs returns the defensive run value of p at pos. The designated hitter
// is always zero.
func Runs(p *model.Player, pos model.Position) float64 {
	if pos == model.DesignatedHitter {
		return 0
	}
	var v float64
	for _, t := range positions[pos].terms {
		v = v + LeagueAverage - t.fit.Eval(t.in(p))
	}
	return v
}

// WAR converts a run value at pos to defensive standardized WAR.
func WAR(runs float64, pos model.Position) float64 {
	if pos == model.DesignatedHitter {
		return 0
	}
	return ((runs * 162) / 10) + positions[pos].bonus
}

// Project computes every position's run value and WAR for p.
func Project(p *model.Player) model.Defense {
	var d model.Defense
	for _, pos := range model.Positions {
		d.Runs[pos] = Runs(p, pos)
		d.WAR[pos] = WAR(d.Runs[pos], pos)
	}
	return d
}

// Apply projects defense for every player.
func Apply(t model.Table) model.Table {
	return t.Map(func(p *model.Player) {
		p.Defense = Project(p)
	})
}
