// Package export flags shortlisted players and lays out the batter report,
// the pitcher report and the full snapshot of the player table.
package export

import (
	"github.com/okian/pistachio/internal/domain/model"
)

// Report names.
const (
	BatterReport  = "batter"
	PitcherReport = "pitcher"
	SnapshotName  = "snapshot"
)

// Threshold is the standardized WAR a player outside the managed club needs
// to make a report.
const Threshold = 0.1

// Report is a rendered table, ready to write.
type Report struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Len returns the number of rows.
func (r Report) Len() int { return len(r.Rows) }

func render(name string, cols []column, players []*model.Player) Report {
	r := Report{Name: name, Header: make([]string, len(cols)), Rows: make([][]string, 0, len(players))}
	for i, c := range cols {
		r.Header[i] = c.name
	}
	for _, p := range players {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = c.cell(p)
		}
		r.Rows = append(r.Rows, row)
	}
	return r
}

func selectPlayers(t model.Table, keep func(p *model.Player) bool) []*model.Player {
	var out []*model.Player
	for i := range t.Players {
		if keep(&t.Players[i]) {
			out = append(out, &t.Players[i])
		}
	}
	return out
}

// IncludeBatter reports whether p belongs in the batter report. Best values
// are compared as reported, rounded to 2 decimals. Missing WAR never clears
// the threshold.
func IncludeBatter(p *model.Player, team string) bool {
	return managed(p, team) ||
		model.Round(p.Value.Best, 2) >= Threshold ||
		model.Round(p.ValuePot.Best, 2) >= Threshold ||
		p.Flagged
}

// IncludePitcher reports whether p belongs in the pitcher report. Role WAR is
// compared unrounded.
func IncludePitcher(p *model.Player, team string) bool {
	return managed(p, team) ||
		p.Pitcher.StarterWAR >= Threshold ||
		p.Pitcher.RelieverWAR >= Threshold ||
		p.PitcherPot.StarterWAR >= Threshold ||
		p.PitcherPot.RelieverWAR >= Threshold ||
		p.Flagged
}

// managed reports whether p plays for team. No team means no managed club.
func managed(p *model.Player, team string) bool {
	return team != "" && p.Bio.Club == team
}

// Batters renders the batter report for team, the managed club's display code.
func Batters(t model.Table, team string) Report {
	players := selectPlayers(t, func(p *model.Player) bool { return IncludeBatter(p, team) })
	return render(BatterReport, batterColumns, players)
}

// Pitchers renders the pitcher report for team.
func Pitchers(t model.Table, team string) Report {
	players := selectPlayers(t, func(p *model.Player) bool { return IncludePitcher(p, team) })
	return render(PitcherReport, pitcherColumns, players)
}

// Snapshot renders every player with every passthrough and derived column.
func Snapshot(t model.Table) Report {
	players := selectPlayers(t, func(*model.Player) bool { return true })
	return render(SnapshotName, snapshotColumns(t.Extra), players)
}
