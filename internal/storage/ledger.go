// Package storage keeps a ledger of completed runs for the lifetime of the
// process. It uses an in-memory SQLite database through the pure-Go
// modernc.org/sqlite driver; nothing is written to disk.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the in-memory run ledger.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished run.
type RunRecord struct {
	ID        string
	GameID    string
	Score     int
	Ticks     int
	Duration  time.Duration // Simulated play time
	PeakSpeed int           // Block speed when the run ended
	EndedAt   time.Time
}

// RunStats aggregates every recorded run of a game.
type RunStats struct {
	Runs     int
	Best     int
	AvgScore float64
	Ticks    int
}

// Open creates an empty in-memory ledger.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			duration_ns INTEGER NOT NULL,
			peak_speed INTEGER NOT NULL,
			ended_at_ns INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection and drops the ledger.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its generated ID.
// EndedAt defaults to now when zero.
func (s *Store) SaveRun(run RunRecord) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.EndedAt.IsZero() {
		run.EndedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, game_id, score, ticks, duration_ns, peak_speed, ended_at_ns)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.GameID, run.Score, run.Ticks, int64(run.Duration), run.PeakSpeed, run.EndedAt.UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

// TopRuns retrieves the best runs of a game, highest score first.
// Ties go to the earlier run.
func (s *Store) TopRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, ticks, duration_ns, peak_speed, ended_at_ns
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, ended_at_ns ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var durationNS, endedNS int64
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &r.Ticks, &durationNS, &r.PeakSpeed, &endedNS); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationNS)
		r.EndedAt = time.Unix(0, endedNS)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Stats aggregates all runs of a game. A game with no runs has zero stats.
func (s *Store) Stats(gameID string) (RunStats, error) {
	var st RunStats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(ticks), 0)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&st.Runs, &st.Best, &st.AvgScore, &st.Ticks)
	if err != nil {
		return st, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	return st, nil
}
