// Package storage provides SQLite-based persistence for verification records.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tilescore/internal/verify"
)

// Store manages the SQLite database connection for verification records.
type Store struct {
	db *sql.DB
}

// Record is one verified (or rejected) score submission.
type Record struct {
	ID        string
	Variant   string
	Player    string
	Seed      uint64
	MovesHex  string
	MovesLen  uint64
	Claimed   uint32
	Score     uint32
	Verified  bool
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
	// One writer at a time; batch verification saves from several goroutines.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot enable WAL mode: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// Seeds and move counts are full 64-bit unsigned values, which SQLite
// integers cannot hold, so they are stored as decimal text.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS records (
			id TEXT PRIMARY KEY,
			variant TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			seed TEXT NOT NULL,
			moves_hex TEXT NOT NULL,
			moves_len TEXT NOT NULL,
			claimed INTEGER NOT NULL,
			score INTEGER NOT NULL,
			verified INTEGER NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_records_top ON records(variant, verified, score DESC);
		CREATE INDEX IF NOT EXISTS idx_records_player ON records(player);
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

// timeLayout is fixed width, so text order in SQL matches time order down
// to the nanosecond.
const timeLayout = "2006-01-02 15:04:05.000000000"

// SaveRecord inserts rec, assigning a new ID and creation time if it has none.
func (s *Store) SaveRecord(ctx context.Context, rec *Record) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	rec.CreatedAt = rec.CreatedAt.UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO records
		 (id, variant, player, seed, moves_hex, moves_len, claimed, score, verified, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Variant,
		rec.Player,
		strconv.FormatUint(rec.Seed, 10),
		rec.MovesHex,
		strconv.FormatUint(rec.MovesLen, 10),
		int64(rec.Claimed),
		int64(rec.Score),
		rec.Verified,
		rec.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save record: %w", err)
	}
	return nil
}

const recordColumns = `id, variant, player, seed, moves_hex, moves_len, claimed, score, verified, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var (
		r         Record
		seed      string
		movesLen  string
		createdAt any
	)
	if err := row.Scan(&r.ID, &r.Variant, &r.Player, &seed, &r.MovesHex, &movesLen,
		&r.Claimed, &r.Score, &r.Verified, &createdAt); err != nil {
		return r, err
	}

	var err error
	if r.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
		return r, fmt.Errorf("storage: bad seed %q: %w", seed, err)
	}
	if r.MovesLen, err = strconv.ParseUint(movesLen, 10, 64); err != nil {
		return r, fmt.Errorf("storage: bad move count %q: %w", movesLen, err)
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes. Rows written
// before sub-second timestamps carry whole seconds only.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v.UTC()
	case string:
		for _, layout := range []string{timeLayout, "2006-01-02 15:04:05"} {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

func (s *Store) queryRecords(query string, args ...any) ([]Record, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// RecordByID retrieves a record by its ID. Returns nil if it does not exist.
func (s *Store) RecordByID(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM records WHERE id = ?`, id)

	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query record: %w", err)
	}
	return &r, nil
}

// TopScores retrieves the top N verified scores for the given variant.
// Results are ordered by score descending, earliest first on ties.
func (s *Store) TopScores(variant string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryRecords(
		`SELECT `+recordColumns+`
		 FROM records
		 WHERE variant = ? AND verified = 1
		 ORDER BY score DESC, created_at ASC, rowid ASC
		 LIMIT ?`,
		variant, limit,
	)
}

// RecentRecords retrieves the most recent records of any outcome.
func (s *Store) RecentRecords(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryRecords(
		`SELECT `+recordColumns+`
		 FROM records
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
}

// PlayerRecords retrieves submission history for a specific player.
func (s *Store) PlayerRecords(player string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryRecords(
		`SELECT `+recordColumns+`
		 FROM records
		 WHERE player = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		player, limit,
	)
}

// HighScore returns the highest verified score for the given variant.
// Returns 0 if no scores exist.
func (s *Store) HighScore(variant string) (uint32, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM records WHERE variant = ? AND verified = 1",
		variant,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return uint32(score.Int64), nil
}

// ClearVariant deletes all records for the given variant.
func (s *Store) ClearVariant(variant string) error {
	_, err := s.db.Exec("DELETE FROM records WHERE variant = ?", variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear records: %w", err)
	}
	return nil
}

// SaveResult implements verify.ResultSaver.
// This adapter allows the service to save results without direct storage dependency.
func (s *Store) SaveResult(ctx context.Context, res verify.Result) (string, error) {
	rec := Record{
		ID:       res.ID,
		Variant:  res.Variant,
		Player:   res.Player,
		Seed:     res.Seed,
		MovesHex: res.MovesHex,
		MovesLen: res.MovesLen,
		Claimed:  res.Claimed,
		Score:    res.Score,
		Verified: res.Verified,
	}
	if err := s.SaveRecord(ctx, &rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

// Ensure Store implements ResultSaver
var _ verify.ResultSaver = (*Store)(nil)

// VariantStats contains aggregated statistics for a variant.
type VariantStats struct {
	Variant       string
	Submissions   int
	Verified      int
	HighScore     uint32
	AvgScore      float64 // over verified records
	LastSubmitted time.Time
}

// GetVariantStats retrieves aggregated statistics for a specific variant.
func (s *Store) GetVariantStats(variant string) (*VariantStats, error) {
	stats := &VariantStats{Variant: variant}

	var lastSubmitted any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(verified), 0),
		        COALESCE(MAX(CASE WHEN verified = 1 THEN score END), 0),
		        COALESCE(AVG(CASE WHEN verified = 1 THEN score END), 0),
		        MAX(created_at)
		 FROM records WHERE variant = ?`,
		variant,
	).Scan(&stats.Submissions, &stats.Verified, &stats.HighScore, &stats.AvgScore, &lastSubmitted)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get variant stats: %w", err)
	}
	stats.LastSubmitted = parseTime(lastSubmitted)

	return stats, nil
}

// GetAllVariantStats retrieves statistics for every variant with records.
func (s *Store) GetAllVariantStats() (map[string]*VariantStats, error) {
	rows, err := s.db.Query(
		`SELECT variant,
		        COUNT(*),
		        COALESCE(SUM(verified), 0),
		        COALESCE(MAX(CASE WHEN verified = 1 THEN score END), 0),
		        COALESCE(AVG(CASE WHEN verified = 1 THEN score END), 0),
		        MAX(created_at)
		 FROM records
		 GROUP BY variant`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all variant stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*VariantStats)
	for rows.Next() {
		var vs VariantStats
		var lastSubmitted any
		if err := rows.Scan(&vs.Variant, &vs.Submissions, &vs.Verified, &vs.HighScore, &vs.AvgScore, &lastSubmitted); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		vs.LastSubmitted = parseTime(lastSubmitted)
		stats[vs.Variant] = &vs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
