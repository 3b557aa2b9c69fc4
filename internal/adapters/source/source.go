// Package source loads the game's CSV extracts and the two lookup files into
// the merge stage's input.
package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/okian/pistachio/internal/adapters/tabular"
	"github.com/okian/pistachio/internal/domain/merge"
	"github.com/okian/pistachio/internal/domain/model"
	"github.com/okian/pistachio/pkg/logger"
)

// Paths locates every input of a run.
type Paths struct {
	Players        string
	Scouted        string
	CareerBatting  string
	CareerPitching string
	ClubLookup     string
	Flagged        string
}

// Bundle is the loaded input of a run.
type Bundle struct {
	Merge   merge.Input
	Flagged []string
	// Rows counts the data rows read per source.
	Rows map[string]int
}

// Source names used in logs and metrics.
const (
	SourcePlayers        = "players"
	SourceScouted        = "scouted"
	SourceCareerBatting  = "career_batting"
	SourceCareerPitching = "career_pitching"
	SourceClubLookup     = "club_lookup"
	SourceFlagged        = "flagged"
)

var playerColumns = []string{ //nolint:gochecknoglobals // fixed schema
	"player_id", "first_name", "last_name", "age", "height", "bats", "throws",
	"organization_id", "team_id", "retired",
}

var battingColumns = []string{ //nolint:gochecknoglobals // fixed schema
	"player_id", "year", "level_id", "split_id",
	"pa", "bb", "k", "h", "d", "t", "hr", "hp", "pitches_seen", "war",
}

var pitchingColumns = []string{ //nolint:gochecknoglobals // fixed schema
	"player_id", "year", "level_id", "split_id", "ip", "war", "ra9war",
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	logger logger.Logger
}

// WithLogger sets the logger Load reports to. Without it Load logs nothing.
func WithLogger(l logger.Logger) Option {
	return func(o *loadOptions) {
		o.logger = l
	}
}

// Load reads every input. Any unreadable file or missing column aborts the load.
func Load(ctx context.Context, p Paths, opts ...Option) (*Bundle, error) {
	o := loadOptions{logger: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	b := &Bundle{Rows: make(map[string]int)}

	frames := make(map[string]*tabular.Frame, 5)
	for _, f := range []struct{ name, path string }{
		{SourcePlayers, p.Players},
		{SourceScouted, p.Scouted},
		{SourceCareerBatting, p.CareerBatting},
		{SourceCareerPitching, p.CareerPitching},
		{SourceClubLookup, p.ClubLookup},
	} {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		frame, err := readFrame(f.name, f.path)
		if err != nil {
			return nil, err
		}
		frames[f.name] = frame
		b.Rows[f.name] = frame.Len()
		log.Debug(ctx, "extract read", logger.String("source", f.name), logger.String("path", f.path), logger.Int("rows", frame.Len()))
	}

	var err error
	if b.Merge.Players, b.Merge.PlayerExtra, err = parsePlayers(frames[SourcePlayers]); err != nil {
		return nil, fmt.Errorf("%s: %w", SourcePlayers, err)
	}
	if b.Merge.Scouted, b.Merge.ScoutedExtra, err = parseScouted(frames[SourceScouted]); err != nil {
		return nil, fmt.Errorf("%s: %w", SourceScouted, err)
	}
	if b.Merge.CareerBatting, err = parseBatting(frames[SourceCareerBatting]); err != nil {
		return nil, fmt.Errorf("%s: %w", SourceCareerBatting, err)
	}
	if b.Merge.CareerPitching, err = parsePitching(frames[SourceCareerPitching]); err != nil {
		return nil, fmt.Errorf("%s: %w", SourceCareerPitching, err)
	}
	if b.Merge.Clubs, err = parseClubs(frames[SourceClubLookup]); err != nil {
		return nil, fmt.Errorf("%s: %w", SourceClubLookup, err)
	}

	if b.Flagged, err = ReadFlagged(p.Flagged); err != nil {
		return nil, err
	}
	b.Rows[SourceFlagged] = len(b.Flagged)
	return b, nil
}

func readFrame(name, path string) (*tabular.Frame, error) {
	f, err := tabular.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrMissingInput, name, path, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

// ReadFlagged reads one name per line. Blank lines are skipped.
func ReadFlagged(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrMissingInput, SourceFlagged, path, err)
	}
	defer func() { _ = fh.Close() }()

	var names []string
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		if name := strings.TrimSpace(sc.Text()); name != "" {
			names = append(names, name)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", SourceFlagged, err)
	}
	return names, nil
}

// unbound returns the columns of f not in bound, with their indexes.
func unbound(f *tabular.Frame, bound map[string]struct{}) ([]string, []int) {
	var names []string
	var idx []int
	for i, h := range f.Header {
		if _, ok := bound[h]; ok {
			continue
		}
		names = append(names, h)
		idx = append(idx, i)
	}
	return names, idx
}

func pick(row []string, idx []int) []string {
	out := make([]string, len(idx))
	for i, j := range idx {
		if j < len(row) {
			out[i] = row[j]
		}
	}
	return out
}

func set(names []string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

// rowReader collects the first parse error so row decoding stays linear.
type rowReader struct {
	f   *tabular.Frame
	row int
	err error
}

func (r *rowReader) float(name string) float64 {
	v, err := r.f.Float(r.row, name)
	if err != nil && r.err == nil {
		r.err = err
	}
	return v
}

// integer reads a key or code; a blank cell is 0.
func (r *rowReader) integer(name string) int {
	v, _, err := r.f.Int(r.row, name)
	if err != nil && r.err == nil {
		r.err = err
	}
	return v
}

// whole reads an integer-valued attribute; a blank cell is missing.
func (r *rowReader) whole(name string) float64 {
	v, ok, err := r.f.Int(r.row, name)
	if err != nil && r.err == nil {
		r.err = err
	}
	if !ok {
		return model.Missing()
	}
	return float64(v)
}

func parsePlayers(f *tabular.Frame) ([]merge.PlayerRow, []string, error) {
	if err := f.Require(playerColumns...); err != nil {
		return nil, nil, err
	}
	extra, idx := unbound(f, set(playerColumns))
	rows := make([]merge.PlayerRow, 0, f.Len())
	for i := range f.Rows {
		r := rowReader{f: f, row: i}
		row := merge.PlayerRow{
			ID: r.integer("player_id"),
			Bio: model.Bio{
				FirstName:      f.String(i, "first_name"),
				LastName:       f.String(i, "last_name"),
				Age:            r.whole("age"),
				Height:         r.float("height"),
				Bats:           r.whole("bats"),
				Throws:         r.whole("throws"),
				OrganizationID: r.integer("organization_id"),
				TeamID:         r.integer("team_id"),
			},
			Retired: r.integer("retired") == 1,
			Extra:   pick(f.Rows[i], idx),
		}
		if r.err != nil {
			return nil, nil, r.err
		}
		rows = append(rows, row)
	}
	return rows, extra, nil
}

func parseScouted(f *tabular.Frame) ([]merge.ScoutedRow, []string, error) {
	cols := model.RatingColumns()
	names := make([]string, 0, len(cols)+2)
	names = append(names, "player_id", "scouting_coach_id")
	for _, c := range cols {
		names = append(names, c.Name)
	}
	if err := f.Require(names...); err != nil {
		return nil, nil, err
	}
	extra, idx := unbound(f, set(names))
	rows := make([]merge.ScoutedRow, 0, f.Len())
	for i := range f.Rows {
		r := rowReader{f: f, row: i}
		row := merge.ScoutedRow{
			PlayerID: r.integer("player_id"),
			ScoutID:  r.integer("scouting_coach_id"),
			Extra:    pick(f.Rows[i], idx),
		}
		for _, c := range cols {
			*c.Field(&row.Ratings) = r.float(c.Name)
		}
		if r.err != nil {
			return nil, nil, r.err
		}
		rows = append(rows, row)
	}
	return rows, extra, nil
}

func parseBatting(f *tabular.Frame) ([]merge.BattingRow, error) {
	if err := f.Require(battingColumns...); err != nil {
		return nil, err
	}
	rows := make([]merge.BattingRow, 0, f.Len())
	for i := range f.Rows {
		r := rowReader{f: f, row: i}
		row := merge.BattingRow{
			PlayerID:    r.integer("player_id"),
			Year:        r.integer("year"),
			LevelID:     r.integer("level_id"),
			SplitID:     r.integer("split_id"),
			PA:          r.float("pa"),
			BB:          r.float("bb"),
			K:           r.float("k"),
			H:           r.float("h"),
			D:           r.float("d"),
			T:           r.float("t"),
			HR:          r.float("hr"),
			HP:          r.float("hp"),
			PitchesSeen: r.float("pitches_seen"),
			WAR:         r.float("war"),
		}
		if r.err != nil {
			return nil, r.err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parsePitching(f *tabular.Frame) ([]merge.PitchingRow, error) {
	if err := f.Require(pitchingColumns...); err != nil {
		return nil, err
	}
	rows := make([]merge.PitchingRow, 0, f.Len())
	for i := range f.Rows {
		r := rowReader{f: f, row: i}
		row := merge.PitchingRow{
			PlayerID: r.integer("player_id"),
			Year:     r.integer("year"),
			LevelID:  r.integer("level_id"),
			SplitID:  r.integer("split_id"),
			IP:       r.float("ip"),
			WAR:      r.float("war"),
			RA9WAR:   r.float("ra9war"),
		}
		if r.err != nil {
			return nil, r.err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseClubs(f *tabular.Frame) (map[int]string, error) {
	if err := f.Require("club_id", "club"); err != nil {
		return nil, err
	}
	clubs := make(map[int]string, f.Len())
	for i := range f.Rows {
		r := rowReader{f: f, row: i}
		id := r.integer("club_id")
		if r.err != nil {
			return nil, r.err
		}
		if _, dup := clubs[id]; !dup {
			clubs[id] = f.String(i, "club")
		}
	}
	return clubs, nil
}
