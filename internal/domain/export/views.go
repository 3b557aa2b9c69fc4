package export

import (
	"github.com/okian/pistachio/internal/domain/aging"
	"github.com/okian/pistachio/internal/domain/model"
)

func playerName(p *model.Player) string { return p.Bio.Name }
func playerAge(p *model.Player) float64 { return p.Bio.Age }
func playerClub(p *model.Player) string { return p.Bio.Club }
func isMinor(p *model.Player) bool      { return p.Bio.Minor }
func bats(p *model.Player) float64      { return p.Bio.Bats }
func throws(p *model.Player) float64    { return p.Bio.Throws }
func fieldList(p *model.Player) string  { return aging.FieldLabel(p.Track.Field) }

// positionColumns lays out one column per position, named key+suffix.
func positionColumns(suffix string, kind func(string, value) column, f func(p *model.Player) *[model.NumPositions]float64) []column {
	cols := make([]column, 0, model.NumPositions)
	for _, pos := range model.Positions {
		cols = append(cols, kind(pos.Key()+suffix, func(p *model.Player) float64 { return f(p)[pos] }))
	}
	return cols
}

func sWAR(p *model.Player) *[model.NumPositions]float64    { return &p.Value.SWAR }
func sWARPot(p *model.Player) *[model.NumPositions]float64 { return &p.ValuePot.SWAR }
func tdWAR(p *model.Player) *[model.NumPositions]float64   { return &p.Defense.WAR }

var batterColumns = buildBatterColumns() //nolint:gochecknoglobals // fixed layout

func buildBatterColumns() []column {
	cols := []column{
		text("name", playerName),
		num("age", playerAge),
		text("club", playerClub),
		flag("minor", isMinor),
		count("pa", func(p *model.Player) float64 { return p.SeasonBatting.PA }),
		war("best", func(p *model.Player) float64 { return p.Value.Best }),
		text("pos", func(p *model.Player) string { return p.Value.BestPos.Key() }),
		text("field", fieldList),
		hand("bats", bats, batsCodes),
		countOrBlank("HR_mlb", func(p *model.Player) float64 { return p.CareerLine.HRRounded }),
		count("HR", func(p *model.Player) float64 { return p.Current.Line.HRRounded }),
		num("OBP", func(p *model.Player) float64 { return p.Current.Line.OBPRounded }),
		count("OPS+", func(p *model.Player) float64 { return p.Current.Line.OPSPlus }),
		war("bestP", func(p *model.Player) float64 { return p.ValuePot.Best }),
		count("HR_p", func(p *model.Player) float64 { return p.Potential.Line.HRRounded }),
		num("OBP_p", func(p *model.Player) float64 { return p.Potential.Line.OBPRounded }),
		count("OPS+_p", func(p *model.Player) float64 { return p.Potential.Line.OPSPlus }),
		count("OPS+_pF", func(p *model.Player) float64 { return p.Track.OPSPlusPF }),
		num("Tpct", func(p *model.Player) float64 { return p.Track.Tpct }),
	}
	cols = append(cols, positionColumns("", war, sWAR)...)
	cols = append(cols, positionColumns("P", war, sWARPot)...)
	cols = append(cols,
		war("toWAR", func(p *model.Player) float64 { return p.Current.WAR }),
		war("toWARP", func(p *model.Player) float64 { return p.Potential.WAR }),
	)
	cols = append(cols, positionColumns("_tdWAR", war, tdWAR)...)
	cols = append(cols, text("in_list", inList))
	return cols
}

var pitcherColumns = []column{ //nolint:gochecknoglobals // fixed layout
	text("name", playerName),
	num("age", playerAge),
	text("club", playerClub),
	flag("minor", isMinor),
	num("ip", func(p *model.Player) float64 { return p.SeasonPitching.IP }),
	hand("throws", throws, throwsCodes),
	war("sp", func(p *model.Player) float64 { return p.Pitcher.StarterWAR }),
	war("rp", func(p *model.Player) float64 { return p.Pitcher.RelieverWAR }),
	war("spP", func(p *model.Player) float64 { return p.PitcherPot.StarterWAR }),
	war("rpP", func(p *model.Player) float64 { return p.PitcherPot.RelieverWAR }),
	war("FIP", func(p *model.Player) float64 { return p.Pitcher.FIP }),
	war("FIP_pot", func(p *model.Player) float64 { return p.PitcherPot.FIP }),
	text("in_list", inList),
}
