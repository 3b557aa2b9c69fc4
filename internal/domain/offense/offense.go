// Package offense projects plate-outcome rates, runs and offensive
// standardized WAR from batting ratings, and the batting lines derived from
// them.
package offense

import (
	"github.com/okian/pistachio/internal/domain/model"
)

// Project computes one rating set's offensive projection.
func Project(r model.Rates) model.Offense {
	runs := RunsPerGame(r)
	return model.Offense{
		Rates:       r,
		RunsPerGame: runs,
		WAR:         WAR(runs),
		Line:        ProjectLine(r),
	}
}

// Apply projects current and potential offense and the MLB career line for
// every player. Ratings must already be on the internal scale.
func Apply(t model.Table) model.Table {
	return t.Map(func(p *model.Player) {
		p.Current = Project(CurrentRates(p.Ratings.Current.Batting))
		p.Potential = Project(PotentialRates(p.Ratings.Potential.Batting))
		p.CareerLine = CareerLine(p.CareerBatting)
	})
}
