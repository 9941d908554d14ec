// Package storage provides SQLite-based persistence for season history
// and league save slots. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-gridiron/internal/core"
	"github.com/vovakirdan/tui-gridiron/internal/sim"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SeasonEntry represents one completed season record.
type SeasonEntry struct {
	ID        int64
	ModeID    string
	Year      int
	Champion  string
	MVP       string
	CreatedAt time.Time
}

// SaveEntry describes a named league save slot.
type SaveEntry struct {
	ID        int64
	Name      string
	Year      int
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
		CREATE TABLE IF NOT EXISTS seasons (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode_id TEXT NOT NULL,
			year INTEGER NOT NULL,
			champion TEXT NOT NULL,
			mvp TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_seasons_mode_id ON seasons(mode_id);
		CREATE INDEX IF NOT EXISTS idx_seasons_year ON seasons(mode_id, year DESC);

		CREATE TABLE IF NOT EXISTS saves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			year INTEGER NOT NULL,
			league BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// SaveSeason records a completed season for the given mode.
// Returns the ID of the inserted record.
func (s *Store) SaveSeason(modeID string, rec core.SeasonRecord) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO seasons (mode_id, year, champion, mvp) VALUES (?, ?, ?, ?)",
		modeID, rec.Year, rec.Champion, rec.MVP,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save season: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Seasons retrieves the most recent N seasons for the given mode.
// Results are ordered by year descending. An empty modeID matches all
// modes.
func (s *Store) Seasons(modeID string, limit int) ([]SeasonEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode_id, year, champion, mvp, created_at
		 FROM seasons
		 WHERE mode_id = ? OR ? = ''
		 ORDER BY year DESC, id DESC
		 LIMIT ?`,
		modeID, modeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query seasons: %w", err)
	}
	defer rows.Close()

	var entries []SeasonEntry
	for rows.Next() {
		var e SeasonEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.ModeID, &e.Year, &e.Champion, &e.MVP, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ChampionCounts returns championship tallies per champion name across
// all recorded seasons for the given mode, most titles first.
func (s *Store) ChampionCounts(modeID string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT champion, COUNT(*)
		 FROM seasons
		 WHERE mode_id = ? OR ? = ''
		 GROUP BY champion`,
		modeID, modeID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query champion counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts[name] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// ClearSeasons deletes all season records for the given mode.
func (s *Store) ClearSeasons(modeID string) error {
	_, err := s.db.Exec("DELETE FROM seasons WHERE mode_id = ?", modeID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear seasons: %w", err)
	}
	return nil
}

// SaveLeague stores a league snapshot under the given slot name,
// replacing any existing save with that name.
func (s *Store) SaveLeague(name string, snap sim.LeagueSnapshot) error {
	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("storage: cannot encode league: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO saves (name, year, league) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   year = excluded.year,
		   league = excluded.league,
		   created_at = CURRENT_TIMESTAMP`,
		name, snap.Year, blob,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save league: %w", err)
	}

	return nil
}

// LoadLeague retrieves the league snapshot stored under the given slot
// name. Returns nil if no save with that name exists.
func (s *Store) LoadLeague(name string) (*sim.LeagueSnapshot, error) {
	var blob []byte
	err := s.db.QueryRow(
		"SELECT league FROM saves WHERE name = ?",
		name,
	).Scan(&blob)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query save: %w", err)
	}

	var snap sim.LeagueSnapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return nil, fmt.Errorf("storage: cannot decode league: %w", err)
	}

	return &snap, nil
}

// ListSaves retrieves all save slots, most recent first.
func (s *Store) ListSaves() ([]SaveEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, name, year, created_at
		 FROM saves
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var entries []SaveEntry
	for rows.Next() {
		var e SaveEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Year, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteSave removes the save slot with the given name.
func (s *Store) DeleteSave(name string) error {
	_, err := s.db.Exec("DELETE FROM saves WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete save: %w", err)
	}
	return nil
}

// parseTimestamp handles both time.Time and string values coming back
// from the driver for DATETIME columns.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
