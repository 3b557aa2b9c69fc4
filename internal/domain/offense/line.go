package offense

import (
	"github.com/okian/pistachio/internal/domain/model"
)

const (
	plateAppearances = 650.0
	leagueOPS        = 0.734
)

// ProjectLine spreads rates over 650 plate appearances. Each outcome draws
// from what the earlier outcomes left over.
func ProjectLine(r model.Rates) model.Line {
	var l model.Line
	l.BB = r.BB * plateAppearances
	l.HR = r.HR * (plateAppearances - l.BB)
	l.K = r.K * (plateAppearances - l.BB)
	l.Double = r.Double * (plateAppearances - l.BB - l.HR - l.K)
	l.Triple = r.Triple * (plateAppearances - l.BB - l.HR - l.K)
	l.Single = r.Single * (plateAppearances - l.BB - l.HR - l.K - l.Double - l.Triple)
	return finish(l)
}

// CareerLine scales the MLB career rates straight to 650 plate appearances.
// The career single rate is hits per PA, so the line counts extra-base hits
// twice; OPS+ for careers runs high accordingly.
func CareerLine(c model.CareerBatting) model.Line {
	l := model.Line{
		BB:     c.BBPct * plateAppearances,
		HR:     c.HRPct * plateAppearances,
		K:      c.KPct * plateAppearances,
		Double: c.DoublePct * plateAppearances,
		Triple: c.TriplePct * plateAppearances,
		Single: c.SinglePct * plateAppearances,
	}
	return finish(l)
}

func finish(l model.Line) model.Line {
	l.OBP = (l.BB + l.HR + l.Double + l.Triple + l.Single) / plateAppearances
	l.SLG = (l.Single + (2 * l.Double) + (3 * l.Triple) + (4 * l.HR)) / (plateAppearances - l.BB)
	l.OPS = l.OBP + l.SLG
	l.OPSPlus = model.Round((l.OPS/leagueOPS)*100, 0)
	l.HRRounded = model.Round(l.HR, 0)
	l.OBPRounded = model.Round(l.OBP, 3)
	return l
}
