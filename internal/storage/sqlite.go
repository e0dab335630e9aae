// Package storage provides SQLite-based persistence for recorded casts.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when no cast has been recorded for a scenario.
var ErrNotFound = errors.New("storage: cast not found")

// Store manages the SQLite database connection for recorded casts.
type Store struct {
	db *sql.DB
}

// TileRecord is one emitted tile of a recorded cast.
type TileRecord struct {
	Seq  int
	Ray  int
	X    uint32
	Y    uint32
	RelX float64
	RelY float64
}

// Cast is a recorded cast. Tiles is only filled by LatestCast.
type Cast struct {
	ID         int64
	ScenarioID string
	Kind       string
	AngleDeg   float64
	TileCount  int
	CreatedAt  time.Time
	Tiles      []TileRecord
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
		CREATE TABLE IF NOT EXISTS casts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scenario_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			angle_deg REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_casts_scenario ON casts(scenario_id, id DESC);

		CREATE TABLE IF NOT EXISTS cast_tiles (
			cast_id INTEGER NOT NULL REFERENCES casts(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			ray INTEGER NOT NULL,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			rel_x REAL NOT NULL,
			rel_y REAL NOT NULL,
			PRIMARY KEY (cast_id, seq)
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

// SaveCast records a cast and its tiles in one transaction.
// Returns the ID of the inserted cast.
func (s *Store) SaveCast(scenarioID, kind string, angleDeg float64, tiles []TileRecord) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		"INSERT INTO casts (scenario_id, kind, angle_deg) VALUES (?, ?, ?)",
		scenarioID, kind, angleDeg,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save cast: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO cast_tiles (cast_id, seq, ray, x, y, rel_x, rel_y) VALUES (?, ?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare tile insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range tiles {
		if _, err := stmt.Exec(id, t.Seq, t.Ray, t.X, t.Y, t.RelX, t.RelY); err != nil {
			return 0, fmt.Errorf("storage: cannot save tile %d: %w", t.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit cast: %w", err)
	}
	return id, nil
}

// LatestCast retrieves the most recent cast for a scenario, tiles included.
// Returns ErrNotFound if the scenario was never recorded.
func (s *Store) LatestCast(scenarioID string) (Cast, error) {
	var c Cast
	var createdAt any

	err := s.db.QueryRow(
		`SELECT c.id, c.scenario_id, c.kind, c.angle_deg, c.created_at,
		        (SELECT COUNT(*) FROM cast_tiles t WHERE t.cast_id = c.id)
		 FROM casts c
		 WHERE c.scenario_id = ?
		 ORDER BY c.id DESC
		 LIMIT 1`,
		scenarioID,
	).Scan(&c.ID, &c.ScenarioID, &c.Kind, &c.AngleDeg, &createdAt, &c.TileCount)
	if errors.Is(err, sql.ErrNoRows) {
		return Cast{}, fmt.Errorf("%w: %s", ErrNotFound, scenarioID)
	}
	if err != nil {
		return Cast{}, fmt.Errorf("storage: cannot query cast: %w", err)
	}
	c.CreatedAt = parseTime(createdAt)

	tiles, err := s.castTiles(c.ID)
	if err != nil {
		return Cast{}, err
	}
	c.Tiles = tiles
	return c, nil
}

func (s *Store) castTiles(castID int64) ([]TileRecord, error) {
	rows, err := s.db.Query(
		`SELECT seq, ray, x, y, rel_x, rel_y
		 FROM cast_tiles
		 WHERE cast_id = ?
		 ORDER BY seq`,
		castID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query tiles: %w", err)
	}
	defer rows.Close()

	var tiles []TileRecord
	for rows.Next() {
		var t TileRecord
		if err := rows.Scan(&t.Seq, &t.Ray, &t.X, &t.Y, &t.RelX, &t.RelY); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		tiles = append(tiles, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return tiles, nil
}

// ListCasts retrieves the most recent casts without their tiles.
func (s *Store) ListCasts(limit int) ([]Cast, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT c.id, c.scenario_id, c.kind, c.angle_deg, c.created_at,
		        (SELECT COUNT(*) FROM cast_tiles t WHERE t.cast_id = c.id)
		 FROM casts c
		 ORDER BY c.id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query casts: %w", err)
	}
	defer rows.Close()

	var casts []Cast
	for rows.Next() {
		var c Cast
		var createdAt any
		if err := rows.Scan(&c.ID, &c.ScenarioID, &c.Kind, &c.AngleDeg, &createdAt, &c.TileCount); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.CreatedAt = parseTime(createdAt)
		casts = append(casts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return casts, nil
}

// DeleteCasts removes every recorded cast of a scenario.
func (s *Store) DeleteCasts(scenarioID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"DELETE FROM cast_tiles WHERE cast_id IN (SELECT id FROM casts WHERE scenario_id = ?)",
		scenarioID,
	); err != nil {
		return fmt.Errorf("storage: cannot clear tiles: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM casts WHERE scenario_id = ?", scenarioID); err != nil {
		return fmt.Errorf("storage: cannot clear casts: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
