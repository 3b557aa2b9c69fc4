package sampledata

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"

	"github.com/okian/pistachio/internal/adapters/source"
	"github.com/okian/pistachio/internal/adapters/tabular"
	"github.com/okian/pistachio/internal/domain/merge"
	"github.com/okian/pistachio/internal/domain/model"
	"github.com/okian/pistachio/pkg/logger"
)

// Rates of the generated population.
const (
	retiredRate     = 0.05
	unscoutedRate   = 0.08
	duplicateRate   = 0.03
	pitcherRate     = 0.35
	minorRate       = 0.3
	careerRate      = 0.7
	secondStintRate = 0.15
	flaggedPlayers  = 3
)

var clubs = []string{"TOR", "BOS", "NYY", "BAL", "TB", "CLE"} //nolint:gochecknoglobals // fixed table

var firstNames = []string{ //nolint:gochecknoglobals // fixed table
	"Ada", "Ben", "Cy", "Dot", "Eli", "Fay", "Gus", "Hal", "Ike", "Jo", "Kit", "Lou",
}

var lastNames = []string{ //nolint:gochecknoglobals // fixed table
	"Stone", "Old", "Park", "Reyes", "Moss", "Quinn", "Vance", "Webb", "Young", "Ortiz",
}

// playerExtra are passthrough columns of the players extract; nick_name is dropped by the merge.
var playerExtra = []string{"nick_name", "league_id"} //nolint:gochecknoglobals // fixed schema

// scoutedExtra are passthrough columns of the scouted extract; scouting_team_id is dropped.
var scoutedExtra = []string{"scouting_team_id", "overall_rating"} //nolint:gochecknoglobals // fixed schema

// Dataset is a generated input set, kept in memory for verification.
type Dataset struct {
	Input    merge.Input
	Paths    source.Paths
	Settings string
	Team     string
	ScoutID  int
	Flagged  []string
	Stats    Stats
}

// Generate writes a self-consistent set of extracts, lookups and a settings
// file below cfg.Dir.
func Generate(ctx context.Context, cfg *Config) (*Dataset, error) {
	if cfg.Players <= 0 {
		return nil, fmt.Errorf("players must be positive, got %d", cfg.Players)
	}
	root, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, err
	}
	log := logger.Named("sampledata")
	log.Info(ctx, "generating sample extracts",
		logger.String("dir", root),
		logger.Int("players", cfg.Players),
		logger.Any("seed", cfg.Seed),
	)

	g := &generator{
		rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		cfg: cfg,
	}
	ds := &Dataset{Team: clubs[0], ScoutID: cfg.ScoutID}
	ds.Input = g.input(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ds.Flagged = g.flagged(ds.Input.Players)
	ds.Stats = g.stats
	ds.Stats.Flagged = len(ds.Flagged)

	extracts := filepath.Join(root, ExtractDir)
	lookups := filepath.Join(root, LookupDir)
	ds.Paths = source.Paths{
		Players:        filepath.Join(extracts, "players.csv"),
		Scouted:        filepath.Join(extracts, "players_scouted_ratings.csv"),
		CareerBatting:  filepath.Join(extracts, "players_career_batting_stats.csv"),
		CareerPitching: filepath.Join(extracts, "players_career_pitching_stats.csv"),
		ClubLookup:     filepath.Join(lookups, "club_lookup.csv"),
		Flagged:        filepath.Join(lookups, "flagged.txt"),
	}
	ds.Settings = filepath.Join(root, SettingsFile)

	for _, w := range []struct {
		path string
		fn   func(string, merge.Input) error
	}{
		{ds.Paths.Players, writePlayers},
		{ds.Paths.Scouted, writeScouted},
		{ds.Paths.CareerBatting, writeBatting},
		{ds.Paths.CareerPitching, writePitching},
		{ds.Paths.ClubLookup, writeClubs},
	} {
		if err := w.fn(w.path, ds.Input); err != nil {
			return nil, fmt.Errorf("write %s: %w", w.path, err)
		}
	}
	if err := writeLines(ds.Paths.Flagged, ds.Flagged); err != nil {
		return nil, fmt.Errorf("write %s: %w", ds.Paths.Flagged, err)
	}
	if err := writeSettings(ds.Settings, root, ds.Team, cfg); err != nil {
		return nil, fmt.Errorf("write %s: %w", ds.Settings, err)
	}

	log.Info(ctx, "sample extracts written",
		logger.Int("active", ds.Stats.Active),
		logger.Int("retired", ds.Stats.Retired),
		logger.Int("unscouted", ds.Stats.Unscouted),
		logger.Int("battingRows", ds.Stats.BattingRows),
		logger.Int("pitchingRows", ds.Stats.PitchingRows),
		logger.String("settings", ds.Settings),
	)
	return ds, nil
}

type generator struct {
	rng   *rand.Rand
	cfg   *Config
	stats Stats
}

func (g *generator) chance(p float64) bool { return g.rng.Float64() < p }

func (g *generator) between(lo, hi float64) float64 { return lo + g.rng.Float64()*(hi-lo) }

// grade draws an exported grade in steps of 5 within [lo, hi].
func (g *generator) grade(lo, hi int) float64 {
	return float64(lo + 5*g.rng.IntN((hi-lo)/5+1))
}

// upside returns a talent grade at or above cur.
func (g *generator) upside(cur float64) float64 {
	return math.Min(80, cur+5*float64(g.rng.IntN(4)))
}

func (g *generator) input(ctx context.Context) merge.Input {
	in := merge.Input{
		PlayerExtra:  playerExtra,
		ScoutedExtra: scoutedExtra,
		Clubs:        make(map[int]string, len(clubs)),
	}
	for i, c := range clubs {
		in.Clubs[i+1] = c
	}

	for id := 1; id <= g.cfg.Players; id++ {
		if ctx.Err() != nil {
			return in
		}
		row := g.player(id)
		in.Players = append(in.Players, row)
		g.stats.Players++
		if row.Retired {
			g.stats.Retired++
		} else {
			g.stats.Active++
		}

		pitcher := g.chance(pitcherRate)
		if g.chance(unscoutedRate) {
			if !row.Retired {
				g.stats.Unscouted++
			}
		} else {
			scouted := g.scouted(id, g.cfg.ScoutID, pitcher)
			in.Scouted = append(in.Scouted, scouted)
			g.stats.ScoutedRows++
			if g.chance(duplicateRate) {
				dup := g.scouted(id, g.cfg.ScoutID, pitcher)
				in.Scouted = append(in.Scouted, dup)
				g.stats.ScoutedRows++
				g.stats.DuplicateScouted++
			}
		}
		in.Scouted = append(in.Scouted, g.scouted(id, g.cfg.OtherScoutID, pitcher))

		if row.Bio.Age >= 21 && g.chance(careerRate) {
			if pitcher {
				in.CareerPitching = append(in.CareerPitching, g.pitchingCareer(id)...)
			} else {
				in.CareerBatting = append(in.CareerBatting, g.battingCareer(id)...)
			}
		}
	}
	g.stats.BattingRows = len(in.CareerBatting)
	g.stats.PitchingRows = len(in.CareerPitching)
	return in
}

func (g *generator) player(id int) merge.PlayerRow {
	org := 1 + g.rng.IntN(len(clubs))
	team := org
	if g.chance(minorRate) {
		team = org*100 + 1 + g.rng.IntN(3)
	}
	first := firstNames[g.rng.IntN(len(firstNames))]
	last := lastNames[g.rng.IntN(len(lastNames))]
	return merge.PlayerRow{
		ID: id,
		Bio: model.Bio{
			FirstName:      first,
			LastName:       last,
			Age:            float64(17 + g.rng.IntN(22)),
			Height:         float64(170 + g.rng.IntN(31)),
			Bats:           float64(1 + g.rng.IntN(3)),
			Throws:         float64(1 + g.rng.IntN(2)),
			OrganizationID: org,
			TeamID:         team,
		},
		Retired: g.chance(retiredRate),
		Extra:   []string{strings.ToLower(first[:1] + last), "100"},
	}
}

func (g *generator) scouted(id, scout int, pitcher bool) merge.ScoutedRow {
	var r model.Ratings
	r.Current.Batting = model.Batting{
		Eye:        g.grade(20, 80),
		Strikeouts: g.grade(20, 80),
		Power:      g.grade(20, 80),
		Gap:        g.grade(20, 80),
		Babip:      g.grade(20, 80),
	}
	cb := r.Current.Batting
	r.Potential.Batting = model.Batting{
		Eye:        g.upside(cb.Eye),
		Strikeouts: g.upside(cb.Strikeouts),
		Power:      g.upside(cb.Power),
		Gap:        g.upside(cb.Gap),
		Babip:      g.upside(cb.Babip),
	}
	r.Fielding = model.Fielding{
		CatcherAbility: g.grade(20, 80),
		CatcherArm:     g.grade(20, 80),
		CatcherFraming: g.grade(20, 80),
		InfieldRange:   g.grade(20, 80),
		InfieldError:   g.grade(20, 80),
		InfieldArm:     g.grade(20, 80),
		TurnDoublePlay: g.grade(20, 80),
		OutfieldRange:  g.grade(20, 80),
		OutfieldError:  g.grade(20, 80),
		OutfieldArm:    g.grade(20, 80),
	}

	lo, hi := 20, 40
	if pitcher {
		lo, hi = 40, 80
	}
	r.Current.Pitching = model.Pitching{
		Stuff:    g.grade(lo, hi),
		Control:  g.grade(lo, hi),
		Movement: g.grade(lo, hi),
		HRA:      g.grade(lo, hi),
		PBabip:   g.grade(lo, hi),
	}
	cp := r.Current.Pitching
	r.Potential.Pitching = model.Pitching{
		Stuff:    g.upside(cp.Stuff),
		Control:  g.upside(cp.Control),
		Movement: g.upside(cp.Movement),
		HRA:      g.upside(cp.HRA),
		PBabip:   g.upside(cp.PBabip),
	}
	if pitcher {
		for _, i := range g.rng.Perm(model.NumPitchTypes)[:2+g.rng.IntN(4)] {
			r.Current.Pitching.Pitches[i] = g.grade(35, 80)
			r.Potential.Pitching.Pitches[i] = g.upside(r.Current.Pitching.Pitches[i])
		}
	}
	r.Stamina = g.grade(lo, hi)
	r.GroundFly = float64(20 + g.rng.IntN(61))

	return merge.ScoutedRow{
		PlayerID: id,
		ScoutID:  scout,
		Ratings:  r,
		Extra:    []string{"1", strconv.Itoa(int(g.grade(20, 80)))},
	}
}

// battingLine draws one split's counting stats.
func (g *generator) battingLine(id, year, level, split int, pa float64) merge.BattingRow {
	bb := math.Round(pa * g.between(0.04, 0.14))
	k := math.Round(pa * g.between(0.1, 0.3))
	h := math.Round((pa - bb - k) * g.between(0.2, 0.35))
	return merge.BattingRow{
		PlayerID:    id,
		Year:        year,
		LevelID:     level,
		SplitID:     split,
		PA:          pa,
		BB:          bb,
		K:           k,
		H:           h,
		D:           math.Round(h * g.between(0.12, 0.25)),
		T:           math.Round(h * g.between(0, 0.04)),
		HR:          math.Round(h * g.between(0, 0.2)),
		HP:          float64(g.rng.IntN(6)),
		PitchesSeen: math.Round(pa * g.between(3.5, 4.2)),
		WAR:         math.Round(g.between(-1, 5)*pa/650*10) / 10,
	}
}

// battingCareer emits per-stint rows: a vs-left and a vs-right split plus
// their all-splits sum, sometimes a second stint, and minor-league rows.
func (g *generator) battingCareer(id int) []merge.BattingRow {
	var rows []merge.BattingRow
	for year := firstYear + g.rng.IntN(latestYear-firstYear+1); year <= latestYear; year++ {
		stints := 1
		if g.chance(secondStintRate) {
			stints = 2
		}
		for range stints {
			left := g.battingLine(id, year, merge.TopLevel, splitVsLeft, float64(20+g.rng.IntN(200)))
			right := g.battingLine(id, year, merge.TopLevel, splitVsRight, float64(40+g.rng.IntN(400)))
			all := merge.BattingRow{
				PlayerID: id, Year: year, LevelID: merge.TopLevel, SplitID: merge.AllSplits,
				PA: left.PA + right.PA, BB: left.BB + right.BB, K: left.K + right.K,
				H: left.H + right.H, D: left.D + right.D, T: left.T + right.T,
				HR: left.HR + right.HR, HP: left.HP + right.HP,
				PitchesSeen: left.PitchesSeen + right.PitchesSeen,
				WAR:         left.WAR + right.WAR,
			}
			rows = append(rows, all, left, right)
		}
		if g.chance(0.5) {
			rows = append(rows, g.battingLine(id, year, minorLevel, merge.AllSplits, float64(50+g.rng.IntN(400))))
		}
	}
	return rows
}

func (g *generator) pitchingLine(id, year, level, split int) merge.PitchingRow {
	ip := math.Round(g.between(5, 120)*10) / 10
	war := math.Round(g.between(-0.5, 3)*ip/180*100) / 100
	return merge.PitchingRow{
		PlayerID: id,
		Year:     year,
		LevelID:  level,
		SplitID:  split,
		IP:       ip,
		WAR:      war,
		RA9WAR:   math.Round((war+g.between(-0.5, 0.5))*100) / 100,
	}
}

func (g *generator) pitchingCareer(id int) []merge.PitchingRow {
	var rows []merge.PitchingRow
	for year := firstYear + g.rng.IntN(latestYear-firstYear+1); year <= latestYear; year++ {
		left := g.pitchingLine(id, year, merge.TopLevel, splitVsLeft)
		right := g.pitchingLine(id, year, merge.TopLevel, splitVsRight)
		rows = append(rows,
			merge.PitchingRow{
				PlayerID: id, Year: year, LevelID: merge.TopLevel, SplitID: merge.AllSplits,
				IP: left.IP + right.IP, WAR: left.WAR + right.WAR, RA9WAR: left.RA9WAR + right.RA9WAR,
			},
			left, right,
		)
		if g.chance(0.5) {
			rows = append(rows, g.pitchingLine(id, year, minorLevel, merge.AllSplits))
		}
	}
	return rows
}

// flagged picks a few active players, one shouting and one padded, plus a
// name nobody carries.
func (g *generator) flagged(players []merge.PlayerRow) []string {
	var active []merge.PlayerRow
	for _, p := range players {
		if !p.Retired {
			active = append(active, p)
		}
	}
	var names []string
	for i, j := range g.rng.Perm(len(active)) {
		if i == flaggedPlayers {
			break
		}
		name := active[j].Bio.FirstName + " " + active[j].Bio.LastName
		switch i {
		case 0:
			name = strings.ToUpper(name)
		case 1:
			name = "  " + name + " "
		}
		names = append(names, name)
	}
	return append(names, "Nobody Special")
}

func writePlayers(path string, in merge.Input) error {
	header := []string{"player_id", "first_name", "last_name", "age", "height", "bats", "throws",
		"organization_id", "team_id", "retired"}
	header = append(header, in.PlayerExtra...)
	rows := make([][]string, 0, len(in.Players))
	for _, p := range in.Players {
		retired := "0"
		if p.Retired {
			retired = "1"
		}
		row := []string{
			strconv.Itoa(p.ID), p.Bio.FirstName, p.Bio.LastName, tabular.FormatInt(p.Bio.Age),
			tabular.FormatFloat(p.Bio.Height), tabular.FormatInt(p.Bio.Bats), tabular.FormatInt(p.Bio.Throws),
			strconv.Itoa(p.Bio.OrganizationID), strconv.Itoa(p.Bio.TeamID), retired,
		}
		rows = append(rows, append(row, p.Extra...))
	}
	return tabular.WriteFile(path, header, rows)
}

func writeScouted(path string, in merge.Input) error {
	cols := model.RatingColumns()
	header := make([]string, 0, len(cols)+2+len(in.ScoutedExtra))
	header = append(header, "player_id", "scouting_coach_id")
	for _, c := range cols {
		header = append(header, c.Name)
	}
	header = append(header, in.ScoutedExtra...)

	rows := make([][]string, 0, len(in.Scouted))
	for i := range in.Scouted {
		s := &in.Scouted[i]
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(s.PlayerID), strconv.Itoa(s.ScoutID))
		for _, c := range cols {
			row = append(row, tabular.FormatFloat(*c.Field(&s.Ratings)))
		}
		rows = append(rows, append(row, s.Extra...))
	}
	return tabular.WriteFile(path, header, rows)
}

func writeBatting(path string, in merge.Input) error {
	header := []string{"player_id", "year", "level_id", "split_id",
		"pa", "bb", "k", "h", "d", "t", "hr", "hp", "pitches_seen", "war"}
	rows := make([][]string, 0, len(in.CareerBatting))
	for _, r := range in.CareerBatting {
		rows = append(rows, []string{
			strconv.Itoa(r.PlayerID), strconv.Itoa(r.Year), strconv.Itoa(r.LevelID), strconv.Itoa(r.SplitID),
			tabular.FormatFloat(r.PA), tabular.FormatFloat(r.BB), tabular.FormatFloat(r.K),
			tabular.FormatFloat(r.H), tabular.FormatFloat(r.D), tabular.FormatFloat(r.T),
			tabular.FormatFloat(r.HR), tabular.FormatFloat(r.HP), tabular.FormatFloat(r.PitchesSeen),
			tabular.FormatFloat(r.WAR),
		})
	}
	return tabular.WriteFile(path, header, rows)
}

func writePitching(path string, in merge.Input) error {
	header := []string{"player_id", "year", "level_id", "split_id", "ip", "war", "ra9war"}
	rows := make([][]string, 0, len(in.CareerPitching))
	for _, r := range in.CareerPitching {
		rows = append(rows, []string{
			strconv.Itoa(r.PlayerID), strconv.Itoa(r.Year), strconv.Itoa(r.LevelID), strconv.Itoa(r.SplitID),
			tabular.FormatFloat(r.IP), tabular.FormatFloat(r.WAR), tabular.FormatFloat(r.RA9WAR),
		})
	}
	return tabular.WriteFile(path, header, rows)
}

func writeClubs(path string, in merge.Input) error {
	rows := make([][]string, 0, len(in.Clubs))
	for id := 1; id <= len(in.Clubs); id++ {
		rows = append(rows, []string{strconv.Itoa(id), in.Clubs[id]})
	}
	return tabular.WriteFile(path, []string{"club_id", "club"}, rows)
}

func writeLines(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), directoryPermission); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), filePermission)
}

// writeSettings writes a settings file in the desktop app's layout.
func writeSettings(path, root, team string, cfg *Config) error {
	doc := map[string]any{
		"Settings": map[string]any{
			"csv_path":   filepath.Join(root, ExtractDir),
			"scout_id":   cfg.ScoutID,
			"team_id":    team,
			"gb_weight":  cfg.GBWeight,
			"config_dir": filepath.Join(root, LookupDir),
			"report_dir": filepath.Join(root, ReportDir),
		},
	}
	b, err := toml.Parser().Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, filePermission)
}
