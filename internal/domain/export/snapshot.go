package export

import (
	"github.com/okian/pistachio/internal/domain/model"
)

// snapshotColumns lays out the full table: identity, passthrough columns,
// ratings on both scales, then every derived column in pipeline order.
func snapshotColumns(extra []string) []column {
	cols := []column{
		integer("player_id", func(p *model.Player) int { return p.ID }),
		text("first_name", func(p *model.Player) string { return p.Bio.FirstName }),
		text("last_name", func(p *model.Player) string { return p.Bio.LastName }),
		num("age", playerAge),
		num("height", func(p *model.Player) float64 { return p.Bio.Height }),
		num("bats", bats),
		num("throws", throws),
		integer("organization_id", func(p *model.Player) int { return p.Bio.OrganizationID }),
		integer("team_id", func(p *model.Player) int { return p.Bio.TeamID }),
	}
	for i, name := range extra {
		cols = append(cols, text(name, func(p *model.Player) string {
			if i < len(p.Extra) {
				return p.Extra[i]
			}
			return ""
		}))
	}

	cols = append(cols, careerColumns()...)
	cols = append(cols, ratingColumns()...)
	cols = append(cols, offenseColumns("", func(p *model.Player) *model.Offense { return &p.Current })...)
	cols = append(cols, positionColumns("_def", num, func(p *model.Player) *[model.NumPositions]float64 { return &p.Defense.Runs })...)
	cols = append(cols, positionColumns("_tdWAR", war, tdWAR)...)
	cols = append(cols, valueColumns("", func(p *model.Player) *model.Value { return &p.Value })...)
	cols = append(cols, text("name", playerName))
	cols = append(cols, offenseColumns("_pot", func(p *model.Player) *model.Offense { return &p.Potential })...)
	cols = append(cols, valueColumns("_pot", func(p *model.Player) *model.Value { return &p.ValuePot })...)
	cols = append(cols,
		text("has_pos", func(p *model.Player) string {
			if p.Track.HasPosition() {
				return "yes"
			}
			return ""
		}),
		text("field", fieldList),
	)
	cols = append(cols, pitcherColumnsFor("", func(p *model.Player) *model.Pitcher { return &p.Pitcher })...)
	cols = append(cols, pitcherColumnsFor("_pot", func(p *model.Player) *model.Pitcher { return &p.PitcherPot })...)
	cols = append(cols, lineColumns("", "", func(p *model.Player) *model.Line { return &p.Current.Line })...)
	cols = append(cols, lineColumns("_pot", "_p", func(p *model.Player) *model.Line { return &p.Potential.Line })...)
	cols = append(cols, lineColumns("_mlb", "_mlb", func(p *model.Player) *model.Line { return &p.CareerLine })...)
	cols = append(cols,
		flag("minor", isMinor),
		text("club", playerClub),
		text("in_list", inList),
		num("track", func(p *model.Player) float64 { return p.Track.Value }),
		num("ops21", func(p *model.Player) float64 { return p.Track.OPS21 }),
		num("ops27", func(p *model.Player) float64 { return p.Track.OPS27 }),
		num("Tpct", func(p *model.Player) float64 { return p.Track.Tpct }),
		text("onT", func(p *model.Player) string { return p.Track.OnTrack }),
		num("Ppct", func(p *model.Player) float64 { return p.Track.Ppct }),
		war("Pscore", func(p *model.Player) float64 { return p.Track.Pscore }),
		count("OPS+_pF", func(p *model.Player) float64 { return p.Track.OPSPlusPF }),
		war("PscoreF", func(p *model.Player) float64 { return p.Track.PscoreF }),
	)
	return cols
}

func careerColumns() []column {
	return []column{
		num("pa_mlb", func(p *model.Player) float64 { return p.CareerBatting.PA }),
		num("bb%_mlb", func(p *model.Player) float64 { return p.CareerBatting.BBPct }),
		num("k%_mlb", func(p *model.Player) float64 { return p.CareerBatting.KPct }),
		num("1b%_mlb", func(p *model.Player) float64 { return p.CareerBatting.SinglePct }),
		num("2b%_mlb", func(p *model.Player) float64 { return p.CareerBatting.DoublePct }),
		num("3b%_mlb", func(p *model.Player) float64 { return p.CareerBatting.TriplePct }),
		num("hr%_mlb", func(p *model.Player) float64 { return p.CareerBatting.HRPct }),
		num("hp%_mlb", func(p *model.Player) float64 { return p.CareerBatting.HPPct }),
		num("pitches/plate_appearance_mlb", func(p *model.Player) float64 { return p.CareerBatting.PitchesPerPA }),
		count("pa", func(p *model.Player) float64 { return p.SeasonBatting.PA }),
		num("WAR_actual", func(p *model.Player) float64 { return p.SeasonBatting.WAR }),
		num("sWAR_actual", func(p *model.Player) float64 { return p.SeasonBatting.SWAR }),
		num("ip", func(p *model.Player) float64 { return p.SeasonPitching.IP }),
		num("WAR_actual_p", func(p *model.Player) float64 { return p.SeasonPitching.WAR }),
		num("ra9war", func(p *model.Player) float64 { return p.SeasonPitching.RA9WAR }),
		num("sWAR_actual_p", func(p *model.Player) float64 { return p.SeasonPitching.SWAR }),
		num("ip_mlb", func(p *model.Player) float64 { return p.CareerPitching.IP }),
		num("war_mlb_p", func(p *model.Player) float64 { return p.CareerPitching.WAR }),
	}
}

// ratingColumns writes each rating on the internal scale under its extract
// name, then the preserved exported grades under their short names.
func ratingColumns() []column {
	rc := model.RatingColumns()
	cols := make([]column, 0, 2*len(rc))
	for _, c := range rc {
		cols = append(cols, num(c.Name, func(p *model.Player) float64 { return *c.Field(&p.Ratings) }))
	}
	for _, c := range rc {
		if c.Copy == "" {
			continue
		}
		cols = append(cols, num(c.Copy, func(p *model.Player) float64 { return *c.Field(&p.Ratings2080) }))
	}
	return cols
}

func offenseColumns(suffix string, f func(p *model.Player) *model.Offense) []column {
	return []column{
		num("bb%"+suffix, func(p *model.Player) float64 { return f(p).Rates.BB }),
		num("k%"+suffix, func(p *model.Player) float64 { return f(p).Rates.K }),
		num("hr%"+suffix, func(p *model.Player) float64 { return f(p).Rates.HR }),
		num("2b%"+suffix, func(p *model.Player) float64 { return f(p).Rates.Double }),
		num("3b%"+suffix, func(p *model.Player) float64 { return f(p).Rates.Triple }),
		num("1b%"+suffix, func(p *model.Player) float64 { return f(p).Rates.Single }),
		num("orc_per_game"+suffix, func(p *model.Player) float64 { return f(p).RunsPerGame }),
		war("toWAR"+suffix, func(p *model.Player) float64 { return f(p).WAR }),
	}
}

func valueColumns(suffix string, f func(p *model.Player) *model.Value) []column {
	cols := positionColumns("_sWAR"+suffix, war, func(p *model.Player) *[model.NumPositions]float64 { return &f(p).SWAR })
	return append(cols,
		war("best_sWAR"+suffix, func(p *model.Player) float64 { return f(p).Best }),
		text("best_sWAR"+suffix+"_pos", func(p *model.Player) string { return f(p).BestPos.Key() }),
	)
}

func pitcherColumnsFor(suffix string, f func(p *model.Player) *model.Pitcher) []column {
	return []column{
		integer("no_of_pitches"+suffix, func(p *model.Player) int { return f(p).Pitches }),
		flag("is_sp"+suffix, func(p *model.Player) bool { return f(p).Starter }),
		flag("is_rp"+suffix, func(p *model.Player) bool { return f(p).Reliever }),
		num("donkeyFIP"+suffix, func(p *model.Player) float64 { return f(p).DonkeyFIP }),
		num("pitcher_rtg"+suffix, func(p *model.Player) float64 { return f(p).Rating }),
		war("FIP"+suffix, func(p *model.Player) float64 { return f(p).FIP }),
		war("sp_FIP"+suffix, func(p *model.Player) float64 { return f(p).StarterFIP }),
		war("rp_FIP"+suffix, func(p *model.Player) float64 { return f(p).RelieverFIP }),
		num("fipr9"+suffix, func(p *model.Player) float64 { return f(p).FIPR9 }),
		num("rpw"+suffix, func(p *model.Player) float64 { return f(p).RPW }),
		num("p_sWAR"+suffix, func(p *model.Player) float64 { return f(p).WAR }),
		war("sp_sWAR"+suffix, func(p *model.Player) float64 { return f(p).StarterWAR }),
		war("rp_sWAR"+suffix, func(p *model.Player) float64 { return f(p).RelieverWAR }),
	}
}

// lineColumns names the 650 PA counts with suffix and the report figures
// with short, e.g. hr650_pot and HR_p.
func lineColumns(suffix, short string, f func(p *model.Player) *model.Line) []column {
	counts := []column{
		num("bb650"+suffix, func(p *model.Player) float64 { return f(p).BB }),
		num("hr650"+suffix, func(p *model.Player) float64 { return f(p).HR }),
		num("k650"+suffix, func(p *model.Player) float64 { return f(p).K }),
		num("2b"+suffix, func(p *model.Player) float64 { return f(p).Double }),
		num("3b"+suffix, func(p *model.Player) float64 { return f(p).Triple }),
		num("1b"+suffix, func(p *model.Player) float64 { return f(p).Single }),
		num("obp"+suffix, func(p *model.Player) float64 { return f(p).OBP }),
		num("slg"+suffix, func(p *model.Player) float64 { return f(p).SLG }),
		num("ops"+suffix, func(p *model.Player) float64 { return f(p).OPS }),
	}
	opsPlus := count("OPS+"+short, func(p *model.Player) float64 { return f(p).OPSPlus })
	hr := count("HR"+short, func(p *model.Player) float64 { return f(p).HRRounded })
	if short == "_mlb" {
		opsPlus = num("OPS+"+short, func(p *model.Player) float64 { return f(p).OPSPlus })
		hr = countOrBlank("HR"+short, func(p *model.Player) float64 { return f(p).HRRounded })
	}
	return append(counts, opsPlus, hr, num("OBP"+short, func(p *model.Player) float64 { return f(p).OBPRounded }))
}
