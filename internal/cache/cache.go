// Package cache keeps a local copy of the last fetched travel history so
// the history command still works when the backend is unreachable.
package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stamptrail/stampbook/internal/model"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite cache database
type DB struct {
	*sql.DB
}

// DefaultPath returns the default cache path (~/.stampbook/history.db)
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".stampbook", "history.db"), nil
}

// Open opens or creates the cache database
func Open(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to cache: %w", err)
	}

	db := &DB{DB: sqlDB}
	if err := db.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// OpenDefault opens the cache at the default path
func OpenDefault() (*DB, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Replace swaps the cached history for a freshly fetched one. The old
// snapshot goes away wholesale, the cache mirrors exactly one server
// response.
func (db *DB) Replace(entries []model.Entry) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM history`); err != nil {
		return err
	}

	for i, e := range entries {
		var confidence sql.NullFloat64
		if e.Confidence != nil {
			confidence = sql.NullFloat64{Float64: *e.Confidence, Valid: true}
		}
		_, err := tx.Exec(`
			INSERT INTO history (position, entry_id, sequence_number, country, airport_name, arrival_departure, date, description, is_manual, confidence)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, e.ID, e.SequenceNumber, e.Country, e.AirportName,
			e.ArrivalDeparture, e.Date, e.Description, e.IsManualEntry, confidence,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Load returns the cached history snapshot in stored order.
func (db *DB) Load() ([]model.Entry, error) {
	rows, err := db.Query(`
		SELECT entry_id, sequence_number, country, airport_name, arrival_departure, date, description, is_manual, confidence
		FROM history ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		var e model.Entry
		var confidence sql.NullFloat64
		err := rows.Scan(&e.ID, &e.SequenceNumber, &e.Country, &e.AirportName,
			&e.ArrivalDeparture, &e.Date, &e.Description, &e.IsManualEntry, &confidence)
		if err != nil {
			return nil, err
		}
		if confidence.Valid {
			v := confidence.Float64
			e.Confidence = &v
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
