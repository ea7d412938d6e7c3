package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/domain"
)

// SQLiteStore implements Repository using SQLite. The tables are loaded
// once from a fixture set when the store is created and only read after that.
type SQLiteStore struct {
	db *sql.DB
}

// Ensure both stores implement Repository.
var (
	_ Repository = (*SQLiteStore)(nil)
	_ Repository = (*MemoryStore)(nil)
)

// NewSQLiteStore opens the database, migrates it and loads the fixtures.
// A nil fixture set selects DefaultFixtures.
func NewSQLiteStore(dsn string, f *Fixtures) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if f == nil {
		f = DefaultFixtures()
	}
	if err := store.load(context.Background(), f); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to load fixtures: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS stats (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			plugins INTEGER NOT NULL,
			agents INTEGER NOT NULL,
			skills INTEGER NOT NULL,
			orchestrators INTEGER NOT NULL,
			active_plan_name TEXT NOT NULL,
			active_run_id TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			status TEXT NOT NULL,
			started_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			progress REAL NOT NULL,
			sla_minutes INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS run_workers (
			run_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			worker_id TEXT NOT NULL,
			label TEXT NOT NULL,
			status TEXT NOT NULL,
			eta TEXT NOT NULL,
			progress REAL,
			PRIMARY KEY (run_id, position),
			FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}
	return nil
}

// load replaces the table contents with the fixture set in one transaction.
func (s *SQLiteStore) load(ctx context.Context, f *Fixtures) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range []string{`DELETE FROM run_workers`, `DELETE FROM runs`, `DELETE FROM stats`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	st := f.Stats
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO stats (id, plugins, agents, skills, orchestrators, active_plan_name, active_run_id) VALUES (1, ?, ?, ?, ?, ?, ?)`,
		st.Plugins, st.Agents, st.Skills, st.Orchestrators, st.ActivePlanName, st.ActiveRunID); err != nil {
		return err
	}

	for _, run := range f.Runs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO runs (run_id, status, started_at, updated_at, progress, sla_minutes) VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID, run.Status, run.StartedAt.UTC(), run.UpdatedAt.UTC(), run.Progress, run.SLAMinutes); err != nil {
			return err
		}
		for i, w := range run.Workers {
			var progress sql.NullFloat64
			if w.Progress != nil {
				progress = sql.NullFloat64{Float64: *w.Progress, Valid: true}
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO run_workers (run_id, position, worker_id, label, status, eta, progress) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				run.ID, i, w.ID, w.Label, w.Status, w.ETA, progress); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// GetStats retrieves the stats summary row.
func (s *SQLiteStore) GetStats(ctx context.Context) (*domain.StatSummary, error) {
	var st domain.StatSummary
	err := s.db.QueryRowContext(ctx,
		`SELECT plugins, agents, skills, orchestrators, active_plan_name, active_run_id FROM stats WHERE id = 1`).
		Scan(&st.Plugins, &st.Agents, &st.Skills, &st.Orchestrators, &st.ActivePlanName, &st.ActiveRunID)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// GetRun retrieves a run and its workers by ID.
func (s *SQLiteStore) GetRun(ctx context.Context, runID string) (*domain.OrchestrationRun, error) {
	var run domain.OrchestrationRun
	err := s.db.QueryRowContext(ctx,
		`SELECT run_id, status, started_at, updated_at, progress, sla_minutes FROM runs WHERE run_id = ?`,
		runID).Scan(&run.ID, &run.Status, &run.StartedAt, &run.UpdatedAt, &run.Progress, &run.SLAMinutes)
	if err == sql.ErrNoRows {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT worker_id, label, status, eta, progress FROM run_workers WHERE run_id = ? ORDER BY position ASC`,
		runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	run.Workers = []domain.RunWorker{}
	for rows.Next() {
		var w domain.RunWorker
		var progress sql.NullFloat64
		if err := rows.Scan(&w.ID, &w.Label, &w.Status, &w.ETA, &progress); err != nil {
			return nil, err
		}
		if progress.Valid {
			p := progress.Float64
			w.Progress = &p
		}
		run.Workers = append(run.Workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &run, nil
}
