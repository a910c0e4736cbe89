package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists run outcomes in SQLite. Recording is best-effort from the
// engine's perspective; the file system stays the sole source of truth for
// file locations.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordRun inserts the run summary and its per-file outcomes in one
// transaction.
func (s *Store) RecordRun(ctx context.Context, run Run, moves []Move) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin run tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO runs (id, target, started_at, finished_at, moved, failed, skipped)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Target,
		run.Started.UTC().Format(time.RFC3339Nano),
		run.Finished.UTC().Format(time.RFC3339Nano),
		run.Moved,
		run.Failed,
		run.Skipped,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, move := range moves {
		created := move.CreatedAt
		if created.IsZero() {
			created = run.Finished
		}
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO moves (run_id, source_name, category, final_path, status, reason, created_at)
             VALUES (?, ?, ?, ?, ?, ?, ?)`,
			run.ID,
			move.SourceName,
			move.Category,
			nullableString(move.FinalPath),
			move.Status,
			nullableString(move.Reason),
			created.UTC().Format(time.RFC3339Nano),
		); err != nil {
			return fmt.Errorf("insert move %s: %w", move.SourceName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, target, started_at, finished_at, moved, failed, skipped
         FROM runs ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run        Run
			startedRaw string
			finishRaw  string
		)
		if err := rows.Scan(&run.ID, &run.Target, &startedRaw, &finishRaw, &run.Moved, &run.Failed, &run.Skipped); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Started = parseTimestamp(startedRaw)
		run.Finished = parseTimestamp(finishRaw)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// MovesForRun returns the per-file outcomes of one run in insertion order.
func (s *Store) MovesForRun(ctx context.Context, runID string) ([]Move, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, run_id, source_name, category, final_path, status, reason, created_at
         FROM moves WHERE run_id = ? ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query moves: %w", err)
	}
	defer rows.Close()

	var moves []Move
	for rows.Next() {
		var (
			move       Move
			finalPath  sql.NullString
			reason     sql.NullString
			createdRaw string
		)
		if err := rows.Scan(&move.ID, &move.RunID, &move.SourceName, &move.Category, &finalPath, &move.Status, &reason, &createdRaw); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		move.FinalPath = finalPath.String
		move.Reason = reason.String
		move.CreatedAt = parseTimestamp(createdRaw)
		moves = append(moves, move)
	}
	return moves, rows.Err()
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func parseTimestamp(raw string) time.Time {
	if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return ts
	}
	return time.Time{}
}
