// Package rating rescales exported scouting grades onto the internal 1-250
// scale every projection formula is calibrated against.
package rating

import (
	"github.com/okian/pistachio/internal/domain/model"
)

// scale maps the exported 20-100 grades (in steps of 5) to the internal scale.
var scale = map[float64]float64{ //nolint:gochecknoglobals // fixed lookup
	20: 6, 25: 20, 30: 35, 35: 52, 40: 69,
	45: 85, 50: 101, 55: 117, 60: 134, 65: 150,
	70: 166, 75: 181, 80: 201, 85: 213, 90: 225,
	95: 238, 100: 250,
}

// Rescale maps one grade. Values outside the lookup pass through unchanged.
func Rescale(v float64) float64 {
	if out, ok := scale[v]; ok {
		return out
	}
	return v
}

// Apply keeps a copy of every player's exported ratings and rescales the
// remapped columns in place, identically for current and potential.
func Apply(t model.Table) model.Table {
	cols := model.RatingColumns()
	return t.Map(func(p *model.Player) {
		p.Ratings2080 = p.Ratings
		for _, c := range cols {
			if c.Remap {
				f := c.Field(&p.Ratings)
				*f = Rescale(*f)
			}
		}
	})
}
