package cache

import "fmt"

// migrate runs all cache migrations
func (db *DB) migrate() error {
	migrations := []string{
		migrationCreateHistory,
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}

const migrationCreateHistory = `
CREATE TABLE IF NOT EXISTS history (
    position INTEGER PRIMARY KEY,
    entry_id TEXT,
    sequence_number TEXT NOT NULL,
    country TEXT NOT NULL DEFAULT '',
    airport_name TEXT NOT NULL DEFAULT '',
    arrival_departure TEXT NOT NULL DEFAULT '',
    date TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    is_manual INTEGER NOT NULL DEFAULT 0,
    confidence REAL
);
`
