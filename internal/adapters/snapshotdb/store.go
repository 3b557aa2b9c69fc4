// Package snapshotdb keeps a copy of each run's snapshot in a SQLite file.
//
// Each run is one row in runs holding the header; every player row is stored
// as a JSON array aligned with that header, so snapshots with different
// passthrough columns live side by side.
package snapshotdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/okian/pistachio/internal/domain/export"
	"github.com/okian/pistachio/pkg/logger"

	_ "modernc.org/sqlite"
)

// Run describes one stored snapshot.
type Run struct {
	ID      string
	Created time.Time
	Rows    int
	Columns int
}

// Store persists snapshots.
type Store struct {
	db     *sql.DB
	mu     sync.Mutex
	logger logger.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store's logger. Without it the store logs nothing.
func WithLogger(l logger.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// Open opens (or creates) the database at path and runs migrations.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOpen, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	// One writer at a time; the pool would otherwise hand out fresh connections
	// without the pragmas below.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%w: %s: %w", ErrOpen, pragma, err)
		}
	}

	s := &Store{db: db}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Nop()
	}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: migrate: %w", ErrOpen, err)
	}
	s.logger.Debug(ctx, "snapshot db opened", logger.String("path", path))
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id        TEXT PRIMARY KEY,
			created   INTEGER NOT NULL,
			header    TEXT NOT NULL,
			row_count INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created)`,

		`CREATE TABLE IF NOT EXISTS snapshot_rows (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			idx    INTEGER NOT NULL,
			cells  TEXT NOT NULL,
			PRIMARY KEY (run_id, idx)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:30], err)
		}
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores r under runID in a single transaction.
func (s *Store) Save(ctx context.Context, runID string, created time.Time, r export.Report) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	header, err := json.Marshal(r.Header)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, created, header, row_count) VALUES (?, ?, ?, ?)`,
		runID, created.Unix(), string(header), r.Len(),
	); err != nil {
		return fmt.Errorf("insert run %s: %w", runID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO snapshot_rows (run_id, idx, cells) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, row := range r.Rows {
		cells, mErr := json.Marshal(row)
		if mErr != nil {
			return mErr
		}
		if _, err = stmt.ExecContext(ctx, runID, i, string(cells)); err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	s.logger.Info(ctx, "snapshot stored",
		logger.String("runID", runID),
		logger.Int("rows", r.Len()),
	)
	return nil
}

// Runs lists stored snapshots, newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `SELECT id, created, header, row_count FROM runs ORDER BY created DESC, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Run
	for rows.Next() {
		var (
			run     Run
			created int64
			header  string
		)
		if err := rows.Scan(&run.ID, &created, &header, &run.Rows); err != nil {
			return nil, err
		}
		var cols []string
		if err := json.Unmarshal([]byte(header), &cols); err != nil {
			return nil, fmt.Errorf("run %s header: %w", run.ID, err)
		}
		run.Created = time.Unix(created, 0)
		run.Columns = len(cols)
		out = append(out, run)
	}
	return out, rows.Err()
}

// Load returns the snapshot stored under runID.
func (s *Store) Load(ctx context.Context, runID string) (export.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := export.Report{Name: export.SnapshotName}
	var header string
	err := s.db.QueryRowContext(ctx, `SELECT header FROM runs WHERE id = ?`, runID).Scan(&header)
	if errors.Is(err, sql.ErrNoRows) {
		return r, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return r, err
	}
	if err := json.Unmarshal([]byte(header), &r.Header); err != nil {
		return r, fmt.Errorf("run %s header: %w", runID, err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT cells FROM snapshot_rows WHERE run_id = ? ORDER BY idx`, runID)
	if err != nil {
		return r, err
	}
	defer func() { _ = rows.Close() }()

	r.Rows = make([][]string, 0)
	for rows.Next() {
		var cells string
		if err := rows.Scan(&cells); err != nil {
			return r, err
		}
		var row []string
		if err := json.Unmarshal([]byte(cells), &row); err != nil {
			return r, fmt.Errorf("run %s row: %w", runID, err)
		}
		r.Rows = append(r.Rows, row)
	}
	return r, rows.Err()
}

// Delete removes a stored snapshot and its rows.
func (s *Store) Delete(ctx context.Context, runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, runID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return nil
}
