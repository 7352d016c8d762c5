// Package storage provides SQLite-based persistence for the deal history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the deal history.
type Store struct {
	db *sql.DB
}

// DealRecord is one finished deal: which seed was played, how far it
// got and how long it took. It is a log entry, not a saved game.
type DealRecord struct {
	ID              int64
	DealID          string // UUID, also used as the session id over SSH
	GameID          string
	Seed            int64
	Moves           int
	FoundationCards int
	Duration        int    // Duration in seconds
	Frontend        string // "terminal", "ssh" or "gui"
	CreatedAt       time.Time
}

// NewDealID returns a fresh random deal identifier.
func NewDealID() string {
	return uuid.NewString()
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS deals (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			deal_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			foundation_cards INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			frontend TEXT NOT NULL DEFAULT 'terminal',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_deals_game_id ON deals(game_id);
		CREATE INDEX IF NOT EXISTS idx_deals_seed ON deals(game_id, seed);
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

// SaveDeal records a finished deal. An empty DealID is filled with a
// new UUID. Returns the ID of the inserted record.
func (s *Store) SaveDeal(rec DealRecord) (int64, error) {
	if rec.DealID == "" {
		rec.DealID = NewDealID()
	}
	if rec.Frontend == "" {
		rec.Frontend = "terminal"
	}

	result, err := s.db.Exec(
		`INSERT INTO deals
		 (deal_id, game_id, seed, moves, foundation_cards, duration_secs, frontend)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.DealID,
		rec.GameID,
		rec.Seed,
		rec.Moves,
		rec.FoundationCards,
		rec.Duration,
		rec.Frontend,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save deal: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const dealColumns = `id, deal_id, game_id, seed, moves, foundation_cards, duration_secs, frontend, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeal(row rowScanner) (DealRecord, error) {
	var rec DealRecord
	var createdAt any
	err := row.Scan(
		&rec.ID,
		&rec.DealID,
		&rec.GameID,
		&rec.Seed,
		&rec.Moves,
		&rec.FoundationCards,
		&rec.Duration,
		&rec.Frontend,
		&createdAt,
	)
	if err != nil {
		return rec, err
	}
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
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

// DealByID retrieves a deal by its deal ID. Returns nil if not found.
func (s *Store) DealByID(dealID string) (*DealRecord, error) {
	rec, err := scanDeal(s.db.QueryRow(
		`SELECT `+dealColumns+` FROM deals WHERE deal_id = ?`,
		dealID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query deal: %w", err)
	}
	return &rec, nil
}

// RecentDeals retrieves the most recent deals, newest first. An empty
// gameID returns deals of every game.
func (s *Store) RecentDeals(gameID string, limit int) ([]DealRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+dealColumns+`
		 FROM deals
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query deals: %w", err)
	}
	defer rows.Close()

	var deals []DealRecord
	for rows.Next() {
		rec, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		deals = append(deals, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return deals, nil
}

// ClearDeals deletes all deals for the given game.
func (s *Store) ClearDeals(gameID string) error {
	_, err := s.db.Exec("DELETE FROM deals WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear deals: %w", err)
	}
	return nil
}

// DealStats contains aggregated statistics for a game.
type DealStats struct {
	GameID         string
	Deals          int
	TotalMoves     int64
	AvgMoves       float64
	BestFoundation int // Most cards ever moved home in one deal
	TotalDuration  int64
	LastPlayed     time.Time
}

// GetDealStats retrieves aggregated statistics for a specific game.
func (s *Store) GetDealStats(gameID string) (*DealStats, error) {
	stats := &DealStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(moves), 0), COALESCE(AVG(moves), 0),
		        COALESCE(MAX(foundation_cards), 0), COALESCE(SUM(duration_secs), 0),
		        MAX(created_at)
		 FROM deals WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Deals, &stats.TotalMoves, &stats.AvgMoves,
		&stats.BestFoundation, &stats.TotalDuration, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get deal stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}
