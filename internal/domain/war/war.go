// Package war combines offensive and defensive standardized WAR per
// position and picks each player's best position.
package war

import (
	"github.com/okian/pistachio/internal/domain/model"
)

// Combine adds offensive WAR to every position's defensive WAR. The best
// position is the first maximum in canonical order; with no computable value
// Best is missing and BestPos is NoPosition.
func Combine(offensive float64, d model.Defense) model.Value {
	var v model.Value
	for _, pos := range model.Positions {
		v.SWAR[pos] = offensive + d.WAR[pos]
	}
	v.Best = model.Missing()
	v.BestPos = model.NoPosition
	if i := model.FirstMax(v.SWAR[:]); i >= 0 {
		v.Best = v.SWAR[i]
		v.BestPos = model.Positions[i]
	}
	return v
}

// Apply computes current and potential standardized WAR for every player.
// Defense is shared: it depends on fielding ratings only.
func Apply(t model.Table) model.Table {
	return t.Map(func(p *model.Player) {
		p.Value = Combine(p.Current.WAR, p.Defense)
		p.ValuePot = Combine(p.Potential.WAR, p.Defense)
	})
}

// BestPositionCounts counts players per best position for one rating set.
// Players without a best position are not counted.
func BestPositionCounts(t model.Table, potential bool) map[model.Position]int {
	out := make(map[model.Position]int, model.NumPositions)
	for i := range t.Players {
		v := t.Players[i].Value
		if potential {
			v = t.Players[i].ValuePot
		}
		if v.BestPos.Valid() {
			out[v.BestPos]++
		}
	}
	return out
}
