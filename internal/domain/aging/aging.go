// Package aging compares a hitter's projected OPS+ with positional aging
// benchmarks.
//
// Positions fall into three tiers by how demanding they are. A player's tier
// comes from the positions the fielding ratings qualify for, not from the
// best-WAR position.
package aging

import (
	"math"
	"strings"

	"github.com/okian/pistachio/internal/domain/model"
)

// Group is a positional tier.
type Group int8

const (
	// GroupNone applies when no fielding position is within reach.
	GroupNone Group = iota
	// GroupA is first base and designated hitter.
	GroupA
	// GroupB is catcher, shortstop and center field.
	GroupB
	// GroupC is second base, third base and the outfield corners.
	GroupC
)

const (
	minAge = 14
	maxAge = 50

	defaultTrack   = 100
	defaultDivisor = 100

	// Filtered is written when a player has no fielding position.
	Filtered = -999.0
)

// benchmarks holds OPS+ by age, 14 through 30. Older ages use the age-30 value.
var benchmarks = map[Group][17]float64{ //nolint:gochecknoglobals // fixed table
	GroupA: {64, 65, 65, 66, 68, 72, 76, 83, 91, 99, 103, 107, 108, 110, 110, 110, 110},
	GroupB: {52, 53, 53, 54, 56, 59, 62, 68, 75, 81, 84, 88, 89, 90, 90, 90, 90},
	GroupC: {58, 59, 59, 60, 62, 65, 69, 75, 83, 90, 93, 98, 99, 100, 100, 100, 100},
}

// divisors scale potential OPS+ by tier.
var divisors = map[Group]float64{ //nolint:gochecknoglobals // fixed table
	GroupB: 90,
	GroupC: 100,
	GroupA: 110,
}

// growth is the median year-on-year OPS+ growth on reaching each age, 14
// through 28. Later ages do not grow.
var growth = [15]float64{ //nolint:gochecknoglobals // fixed table
	0.00, 0.01, 0.00, 0.02, 0.04, 0.05, 0.06, 0.09, 0.10, 0.08, 0.04, 0.05, 0.01, 0.01, 0.00,
}

func (g Group) String() string {
	switch g {
	case GroupA:
		return "A"
	case GroupB:
		return "B"
	case GroupC:
		return "C"
	default:
		return ""
	}
}

// Eligible lists the positions the fielding ratings qualify for, in the
// order C, SS, 2B, 3B, CF, RF, LF.
func Eligible(f model.Fielding) []model.Position {
	var out []model.Position
	if f.CatcherFraming >= 150 {
		out = append(out, model.Catcher)
	}
	if f.InfieldRange > 160 {
		out = append(out, model.Shortstop)
	}
	if 133 < f.InfieldRange && f.InfieldRange < 159 {
		out = append(out, model.SecondBase)
	}
	if f.InfieldRange > 111 && f.InfieldArm > 133 {
		out = append(out, model.ThirdBase)
	}
	if f.OutfieldRange > 160 {
		out = append(out, model.CenterField)
	}
	if 133 < f.OutfieldRange && f.OutfieldRange < 159 {
		out = append(out, model.RightField)
	}
	if 111 < f.OutfieldRange && f.OutfieldRange < 133 {
		out = append(out, model.LeftField)
	}
	return out
}

// GroupOf returns the highest-priority tier among positions: B, then C, then A.
func GroupOf(positions []model.Position) Group {
	var b, c, a bool
	for _, p := range positions {
		switch p {
		case model.Catcher, model.Shortstop, model.CenterField:
			b = true
		case model.SecondBase, model.ThirdBase, model.LeftField, model.RightField:
			c = true
		case model.FirstBase, model.DesignatedHitter:
			a = true
		}
	}
	switch {
	case b:
		return GroupB
	case c:
		return GroupC
	case a:
		return GroupA
	default:
		return GroupNone
	}
}

// FieldLabel joins positions as "C, SS".
func FieldLabel(positions []model.Position) string {
	labels := make([]string, len(positions))
	for i, p := range positions {
		labels[i] = p.Label()
	}
	return strings.Join(labels, ", ")
}

// TrackValue returns the tier's benchmark OPS+ at age, clamped to 14..50.
// An unknown age has no benchmark.
func TrackValue(age float64, g Group) float64 {
	if model.IsMissing(age) {
		return model.Missing()
	}
	table, ok := benchmarks[g]
	if !ok {
		return defaultTrack
	}
	a := min(max(int(age), minAge), maxAge)
	i := min(a-minAge, len(table)-1)
	return table[i]
}

// Divisor returns the tier's potential OPS+ divisor.
func Divisor(g Group) float64 {
	if d, ok := divisors[g]; ok {
		return d
	}
	return defaultDivisor
}

func growthAt(age int) float64 {
	i := age - minAge
	if i < 0 || i >= len(growth) {
		return 0
	}
	return growth[i]
}

// project compounds growth for every birthday after age up to target and
// floors the result.
func project(age, target int, ops float64) float64 {
	projected := ops
	for next := age + 1; next <= target; next++ {
		projected *= 1 + growthAt(next)
	}
	return math.Floor(projected)
}

// OPS21 projects OPS+ at age 21. Players already 22 or older get 0; at 21
// the current value is returned as is.
func OPS21(age, ops float64) float64 {
	switch {
	case model.IsMissing(age):
		return model.Missing()
	case age >= 22:
		return 0
	case age == 21:
		return ops
	default:
		return project(int(age), 21, ops)
	}
}

// OPS27 projects OPS+ at age 27. From 27 on the current value is returned.
func OPS27(age, ops float64) float64 {
	switch {
	case model.IsMissing(age):
		return model.Missing()
	case age >= 27:
		return ops
	default:
		return project(int(age), 27, ops)
	}
}

// OnTrack labels a player who meets the benchmark.
func OnTrack(club string, tpct float64) string {
	if tpct >= 1 {
		return strings.TrimSpace(club + " track")
	}
	return ""
}

// Evaluate compares p's projected OPS+ with the benchmarks. Offense must
// already be projected.
func Evaluate(p *model.Player) model.Track {
	var t model.Track
	t.Field = Eligible(p.Ratings.Fielding)
	g := GroupOf(t.Field)

	ops := p.Current.Line.OPSPlus
	opsPot := p.Potential.Line.OPSPlus

	t.Value = TrackValue(p.Bio.Age, g)
	t.OPS21 = OPS21(p.Bio.Age, ops)
	t.OPS27 = OPS27(p.Bio.Age, ops)
	t.Tpct = model.Round(model.Div(ops, t.Value), 2)
	t.OnTrack = OnTrack(p.Bio.Club, t.Tpct)
	t.Ppct = model.Round(opsPot/Divisor(g), 2)
	t.Pscore = model.Round(t.Tpct*t.Ppct, 2)

	t.OPSPlusPF, t.PscoreF = Filtered, Filtered
	if t.HasPosition() {
		t.OPSPlusPF = opsPot
		t.PscoreF = t.Pscore
	}
	return t
}

// Apply evaluates every player.
func Apply(t model.Table) model.Table {
	return t.Map(func(p *model.Player) {
		p.Track = Evaluate(p)
	})
}
