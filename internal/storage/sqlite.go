// Package storage provides SQLite-based persistence for mission results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-tactics/internal/session"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// ResultEntry represents a single recorded mission run.
type ResultEntry struct {
	ID        int64
	RunID     string
	GameID    string
	MissionID string
	Session   string
	Outcome   string
	Turns     int
	Score     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS mission_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			game_id TEXT NOT NULL,
			mission_id TEXT NOT NULL,
			session TEXT NOT NULL,
			outcome TEXT NOT NULL,
			turns INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_mission ON mission_results(mission_id);
		CREATE INDEX IF NOT EXISTS idx_results_top ON mission_results(mission_id, score DESC);
		CREATE INDEX IF NOT EXISTS idx_results_session ON mission_results(session);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult implements session.ResultSaver.
// This adapter lets the platform record runs without a storage dependency.
func (s *Store) SaveResult(data session.MissionResultData) error {
	_, err := s.db.Exec(
		`INSERT INTO mission_results
		 (run_id, game_id, mission_id, session, outcome, turns, score)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		data.RunID, data.GameID, data.MissionID, data.Session,
		data.Outcome, data.Turns, data.Score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save result: %w", err)
	}
	return nil
}

// Ensure Store implements ResultSaver
var _ session.ResultSaver = (*Store)(nil)

// scanResult reads one result row. The datetime column can come back as
// either time.Time or string depending on how the row was written.
func scanResult(rows *sql.Rows) (ResultEntry, error) {
	var e ResultEntry
	var createdAt any
	if err := rows.Scan(&e.ID, &e.RunID, &e.GameID, &e.MissionID, &e.Session,
		&e.Outcome, &e.Turns, &e.Score, &createdAt); err != nil {
		return ResultEntry{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}
	return e, nil
}

const resultColumns = "id, run_id, game_id, mission_id, session, outcome, turns, score, created_at"

// TopResults retrieves the best N runs for a mission, ordered by score
// descending. Pass an empty missionID for all missions.
func (s *Store) TopResults(missionID string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT ` + resultColumns + ` FROM mission_results `
	args := []any{}
	if missionID != "" {
		query += `WHERE mission_id = ? `
		args = append(args, missionID)
	}
	query += `ORDER BY score DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		e, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// RecentResults retrieves the most recent runs across all missions.
func (s *Store) RecentResults(limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM mission_results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		e, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// BestScore returns the highest score recorded for a mission.
// Returns 0 if no runs exist.
func (s *Store) BestScore(missionID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM mission_results WHERE mission_id = ?",
		missionID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// MissionStats contains aggregated statistics for a mission.
type MissionStats struct {
	MissionID string
	Runs      int
	Wins      int
	BestScore int
	AvgTurns  float64
}

// GetMissionStats retrieves aggregated statistics for a specific mission.
func (s *Store) GetMissionStats(missionID string) (*MissionStats, error) {
	stats := &MissionStats{MissionID: missionID}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(turns), 0)
		 FROM mission_results WHERE mission_id = ?`,
		missionID,
	).Scan(&stats.Runs, &stats.Wins, &stats.BestScore, &stats.AvgTurns)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mission stats: %w", err)
	}
	return stats, nil
}

// ClearResults deletes all runs for the given mission.
// Pass an empty missionID to wipe everything.
func (s *Store) ClearResults(missionID string) error {
	var err error
	if missionID == "" {
		_, err = s.db.Exec("DELETE FROM mission_results")
	} else {
		_, err = s.db.Exec("DELETE FROM mission_results WHERE mission_id = ?", missionID)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
