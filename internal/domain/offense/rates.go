package offense

import (
	"math"

	"github.com/okian/pistachio/internal/domain/model"
	pw "github.com/okian/pistachio/internal/domain/piecewise"
)

const (
	strikeoutCap     = 180.0
	strikeoutDampen  = 0.1
	gapDampen        = 0.6666
	doubleAnchor     = 0.0628
	tripleAnchor     = 0.0044
	singleAnchor     = 0.28
	ratingBreakpoint = 100.0
)

// Walk rate by eye. Current ratings switch above 100, potential ratings
// switch at 101, so a potential eye strictly between the two has no rate.
var (
	walkCurrent = pw.Func{ //nolint:gochecknoglobals // fitted parameters
		pw.Below(pw.LE(100), 0.0007268758188, 0.001460739),
		pw.Above(pw.GT(100), 0.0012280964, -0.0469974639),
	}
	walkPotential = pw.Func{ //nolint:gochecknoglobals // fitted parameters
		pw.Below(pw.LE(100), 0.0007268758188, 0.001460739),
		pw.Above(pw.GE(101), 0.0012280964, -0.0469974639),
	}
)

//nolint:gochecknoglobals // fitted parameters
var (
	strikeout = pw.Func{
		pw.Below(pw.LE(100), -0.002454367, 0.4655792299),
		pw.Between(pw.GE(101), pw.LE(220), -0.0016592514, 0.383395059),
		pw.Flat(0.02385),
	}
	homeRun = pw.Func{
		pw.Below(pw.LE(100), 0.0001965717055, 0.0057097943),
		pw.Above(pw.GT(100), 0.0005767110238, -0.0305087264),
	}

	doubleGap   = pw.Func{pw.Linear(0.0005759923464, 0.0046460781)}
	doublePower = pw.Func{
		pw.Below(pw.LE(100), -0.0000508547503, 0.0669597896),
		pw.Linear(-0.00008542726043, 0.071154717),
	}
	doubleStrikeout = pw.Func{
		pw.Below(pw.LE(100), -0.0002084865135, 0.0828934273),
		pw.Between(pw.GE(101), pw.LE(220), -0.000008259599351, 0.0708287518),
		pw.Flat(0.053),
	}

	tripleGap   = pw.Func{pw.Linear(0.00004451978242, 0.00007767274633)}
	triplePower = pw.Func{
		pw.Below(pw.LE(100), -0.00000206286281, 0.0046134367),
		pw.Linear(-0.000007041275071, 0.0051236727),
	}
	tripleStrikeout = pw.Func{
		pw.Below(pw.LE(100), -0.00001098275967, 0.0055735013),
		pw.Between(pw.GE(101), pw.LE(220), -0.00000526736139, 0.0048976614),
		pw.Flat(0.0037),
	}

	singleBabip = pw.Func{
		pw.Below(pw.LE(100), 0.0015140038, 0.1281801944),
		pw.Linear(0.000964994955, 0.1837822012),
	}
	singleGap       = pw.Func{pw.Linear(-0.0003887320573, 0.3178756912)}
	singleStrikeout = pw.Func{
		pw.Below(pw.LE(100), 0.000149985378, 0.2648525907),
		pw.Between(pw.GE(101), pw.LE(220), 0.00005179135613, 0.2754044069),
		pw.Flat(0.286),
	}
)

// CurrentRates projects plate-outcome rates from current batting ratings.
func CurrentRates(b model.Batting) model.Rates {
	return rates(b, walkCurrent)
}

// PotentialRates projects plate-outcome rates from potential batting ratings.
func PotentialRates(b model.Batting) model.Rates {
	return rates(b, walkPotential)
}

func rates(b model.Batting, walk pw.Func) model.Rates {
	return model.Rates{
		BB:     walk.Eval(b.Eye),
		K:      strikeoutRate(b.Strikeouts),
		HR:     homeRun.Eval(b.Power),
		Double: doubleRate(b),
		Triple: tripleRate(b),
		Single: singleRate(b),
	}
}

// strikeoutRate caps the rating at 180 and pulls it a tenth of the way back
// to 100. The segment is chosen on the capped rating.
func strikeoutRate(avk float64) float64 {
	capped := math.Min(avk, strikeoutCap)
	damped := capped + (ratingBreakpoint-capped)*strikeoutDampen
	return strikeout.EvalAt(capped, damped)
}

// doubleRate pulls gap two thirds of the way back to 100.
func doubleRate(b model.Batting) float64 {
	gap := b.Gap - (b.Gap-ratingBreakpoint)*gapDampen
	part1 := doubleGap.Eval(gap)
	part2 := doublePower.Eval(b.Power) - doubleAnchor
	part3 := doubleStrikeout.Eval(b.Strikeouts) - doubleAnchor
	return part1 + part2 + part3
}

func tripleRate(b model.Batting) float64 {
	part1 := tripleGap.Eval(b.Gap)
	part2 := triplePower.Eval(b.Power) - tripleAnchor
	part3 := tripleStrikeout.Eval(b.Strikeouts) - tripleAnchor
	return part1 + part2 + part3
}

func singleRate(b model.Batting) float64 {
	part1 := singleBabip.Eval(b.Babip)
	part2 := singleGap.Eval(b.Gap) - singleAnchor
	part3 := singleStrikeout.Eval(b.Strikeouts) - singleAnchor
	return part1 + part2 + part3
}

// RunsPerGame combines the rates against league-average anchors.
func RunsPerGame(r model.Rates) float64 {
	return ((r.BB - 0.0738) / 0.875) +
		((r.K - 0.2195) / -1.217) +
		((r.HR - 0.0272) / 0.219) +
		((r.Double - doubleAnchor) / 0.693) +
		((r.Triple - tripleAnchor) / 0.0519) +
		((r.Single - singleAnchor) / 0.594)
}

// WAR converts runs per game to offensive standardized WAR.
func WAR(runsPerGame float64) float64 {
	return (runsPerGame * 162) / 10
}
