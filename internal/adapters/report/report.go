// Package report writes the rendered reports and the snapshot as CSV files.
package report

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/okian/pistachio/internal/adapters/tabular"
	"github.com/okian/pistachio/internal/domain/export"
	"github.com/okian/pistachio/pkg/logger"
)

// Output file names.
const (
	BatterFile   = "batter_sWAR.csv"
	PitcherFile  = "pitcher_sWAR.csv"
	SnapshotFile = "merged_players.csv"
)

// FileName maps a report name to its file name. Unknown names get a .csv suffix.
func FileName(name string) string {
	switch name {
	case export.BatterReport:
		return BatterFile
	case export.PitcherReport:
		return PitcherFile
	case export.SnapshotName:
		return SnapshotFile
	default:
		return name + ".csv"
	}
}

// Writer places reports in one directory.
type Writer struct {
	dir    string
	logger logger.Logger
}

// Option configures a Writer.
type Option func(*Writer)

// WithLogger sets the writer's logger.
func WithLogger(l logger.Logger) Option {
	return func(w *Writer) {
		w.logger = l
	}
}

// New creates a Writer for dir. The directory is created on first write.
func New(dir string, opts ...Option) *Writer {
	w := &Writer{dir: dir}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = logger.Nop()
	}
	return w
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// Write writes r to its file, replacing any previous run's file, and returns the path.
func (w *Writer) Write(ctx context.Context, r export.Report) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := filepath.Join(w.dir, FileName(r.Name))
	if err := tabular.WriteFile(path, r.Header, r.Rows); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	w.logger.Info(ctx, "report written",
		logger.String("report", r.Name),
		logger.String("path", path),
		logger.Int("rows", r.Len()),
		logger.Int("columns", len(r.Header)),
	)
	return path, nil
}

// WriteAll writes the reports in order and stops at the first failure.
// Files written before the failure are left in place.
func (w *Writer) WriteAll(ctx context.Context, reports ...export.Report) ([]string, error) {
	paths := make([]string, 0, len(reports))
	for _, r := range reports {
		path, err := w.Write(ctx, r)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
