package sampledata

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	service "github.com/okian/pistachio/internal/app"
	"github.com/okian/pistachio/internal/domain/export"
	"github.com/okian/pistachio/internal/domain/merge"
	"github.com/okian/pistachio/internal/domain/model"
	"github.com/okian/pistachio/pkg/logger"
)

// ErrVerification is returned when a run breaks an invariant.
var ErrVerification = errors.New("verification failed")

// rateTolerance is half a unit in the third decimal.
const rateTolerance = 0.0005 + 1e-9

// Check is the outcome of one invariant.
type Check struct {
	Name   string
	Passed bool
	Detail string
}

// Verify checks a run's output against the dataset that produced it.
func Verify(ctx context.Context, ds *Dataset, res *service.Result) ([]Check, error) {
	checks := []Check{
		checkUniqueActive(ds, res.Table),
		checkBestPosition(res.Table),
		checkRoleExclusivity(res.Table),
		checkCareerRates(ds, res.Table),
		checkFlaggedInclusion(ds, res),
		checkReportFilter(ds, res),
	}

	log := logger.Named("sampledata")
	var failed []string
	for _, c := range checks {
		if c.Passed {
			log.Info(ctx, "invariant holds", logger.String("check", c.Name))
			continue
		}
		log.Warn(ctx, "invariant broken", logger.String("check", c.Name), logger.String("detail", c.Detail))
		failed = append(failed, c.Name+": "+c.Detail)
	}
	if len(failed) > 0 {
		return checks, fmt.Errorf("%w: %s", ErrVerification, strings.Join(failed, "; "))
	}
	return checks, nil
}

func pass(name string) Check { return Check{Name: name, Passed: true} }

func fail(name, format string, args ...any) Check {
	return Check{Name: name, Detail: fmt.Sprintf(format, args...)}
}

// checkUniqueActive: one record per id, retired players excluded.
func checkUniqueActive(ds *Dataset, t model.Table) Check {
	const name = "unique-active"
	retired := make(map[int]bool)
	active := 0
	for _, p := range ds.Input.Players {
		if p.Retired {
			retired[p.ID] = true
		} else {
			active++
		}
	}
	seen := make(map[int]bool, t.Len())
	for i := range t.Players {
		id := t.Players[i].ID
		if seen[id] {
			return fail(name, "player %d appears twice", id)
		}
		if retired[id] {
			return fail(name, "retired player %d kept", id)
		}
		seen[id] = true
	}
	if len(seen) != active {
		return fail(name, "%d players, want %d", len(seen), active)
	}
	return pass(name)
}

// checkBestPosition: best_sWAR is the largest positional sWAR and pos points at it.
func checkBestPosition(t model.Table) Check {
	const name = "best-position"
	for i := range t.Players {
		p := &t.Players[i]
		for _, v := range []model.Value{p.Value, p.ValuePot} {
			top := math.Inf(-1)
			for _, s := range v.SWAR {
				if !model.IsMissing(s) && s > top {
					top = s
				}
			}
			if math.IsInf(top, -1) {
				if !model.IsMissing(v.Best) || v.BestPos != model.NoPosition {
					return fail(name, "player %d has a best value without any positional value", p.ID)
				}
				continue
			}
			if v.Best != top {
				return fail(name, "player %d best %v, max %v", p.ID, v.Best, top)
			}
			if !v.BestPos.Valid() || v.SWAR[v.BestPos] != top {
				return fail(name, "player %d best position %v does not hold the max", p.ID, v.BestPos)
			}
		}
	}
	return pass(name)
}

// checkRoleExclusivity: no pitcher is both starter and reliever.
func checkRoleExclusivity(t model.Table) Check {
	const name = "role-exclusivity"
	for i := range t.Players {
		p := &t.Players[i]
		for _, pc := range []model.Pitcher{p.Pitcher, p.PitcherPot} {
			if pc.Starter && pc.Reliever {
				return fail(name, "player %d is starter and reliever", p.ID)
			}
			if !model.IsMissing(pc.StarterWAR) && pc.StarterWAR != 0 && !pc.Starter {
				return fail(name, "player %d has starter WAR without the role", p.ID)
			}
		}
	}
	return pass(name)
}

// checkCareerRates recomputes career rates from the generated stints.
func checkCareerRates(ds *Dataset, t model.Table) Check {
	const name = "career-rate-round-trip"
	type totals struct{ pa, bb, k, hr float64 }
	sums := make(map[int]*totals)
	for _, r := range ds.Input.CareerBatting {
		if r.LevelID != merge.TopLevel || r.SplitID != merge.AllSplits {
			continue
		}
		s := sums[r.PlayerID]
		if s == nil {
			s = &totals{}
			sums[r.PlayerID] = s
		}
		s.pa += r.PA
		s.bb += r.BB
		s.k += r.K
		s.hr += r.HR
	}

	for i := range t.Players {
		p := &t.Players[i]
		s, ok := sums[p.ID]
		if !ok {
			if !model.IsMissing(p.CareerBatting.PA) {
				return fail(name, "player %d has career batting without top-level rows", p.ID)
			}
			continue
		}
		if p.CareerBatting.PA != s.pa {
			return fail(name, "player %d pa %v, want %v", p.ID, p.CareerBatting.PA, s.pa)
		}
		for _, r := range []struct {
			label     string
			got, want float64
		}{
			{"bb%", p.CareerBatting.BBPct, s.bb / s.pa},
			{"k%", p.CareerBatting.KPct, s.k / s.pa},
			{"hr%", p.CareerBatting.HRPct, s.hr / s.pa},
		} {
			if math.Abs(r.got-r.want) > rateTolerance {
				return fail(name, "player %d %s %v, recomputed %v", p.ID, r.label, r.got, r.want)
			}
		}
	}
	return pass(name)
}

// checkFlaggedInclusion: every flagged player reaches both reports.
func checkFlaggedInclusion(ds *Dataset, res *service.Result) Check {
	const name = "flagged-inclusion"
	wanted := make(map[string]bool)
	for _, n := range ds.Flagged {
		wanted[strings.ToLower(strings.TrimSpace(n))] = true
	}
	for _, r := range []export.Report{res.Batters, res.Pitcher} {
		names := reportNames(r)
		for i := range res.Table.Players {
			p := &res.Table.Players[i]
			if !wanted[strings.ToLower(p.Bio.Name)] {
				continue
			}
			if !p.Flagged {
				return fail(name, "player %d (%s) not flagged", p.ID, p.Bio.Name)
			}
			if !names[p.Bio.Name] {
				return fail(name, "flagged player %s missing from %s report", p.Bio.Name, r.Name)
			}
		}
	}
	return pass(name)
}

// checkReportFilter: report sizes match the inclusion rules and only the
// managed club's sub-threshold players get in without a flag.
func checkReportFilter(ds *Dataset, res *service.Result) Check {
	const name = "report-filter"
	t := res.Table
	batters := t.Count(func(p *model.Player) bool { return export.IncludeBatter(p, ds.Team) })
	if batters != res.Batters.Len() {
		return fail(name, "batter report has %d rows, %d players qualify", res.Batters.Len(), batters)
	}
	pitchers := t.Count(func(p *model.Player) bool { return export.IncludePitcher(p, ds.Team) })
	if pitchers != res.Pitcher.Len() {
		return fail(name, "pitcher report has %d rows, %d players qualify", res.Pitcher.Len(), pitchers)
	}
	names := reportNames(res.Batters)
	for i := range t.Players {
		p := &t.Players[i]
		if p.Bio.Club == ds.Team || p.Flagged || export.IncludeBatter(p, ds.Team) {
			continue
		}
		if names[p.Bio.Name] && !anyIncludedNamed(t, ds.Team, p.Bio.Name) {
			return fail(name, "sub-threshold player %s in batter report", p.Bio.Name)
		}
	}
	return pass(name)
}

// anyIncludedNamed reports whether some qualifying batter carries name,
// since generated names repeat.
func anyIncludedNamed(t model.Table, team, name string) bool {
	for i := range t.Players {
		p := &t.Players[i]
		if p.Bio.Name == name && export.IncludeBatter(p, team) {
			return true
		}
	}
	return false
}

func reportNames(r export.Report) map[string]bool {
	col := -1
	for i, h := range r.Header {
		if h == "name" {
			col = i
			break
		}
	}
	names := make(map[string]bool, r.Len())
	if col < 0 {
		return names
	}
	for _, row := range r.Rows {
		names[row[col]] = true
	}
	return names
}
