package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Slots (one row per persisted value: distance, intervals, color-theme)
		`CREATE TABLE IF NOT EXISTS slots (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
