package store

import (
	"database/sql"
)

// NewTestDB wraps an already open database for testing. Migrations are run
// so the slots table exists. This is only intended for use in tests.
func NewTestDB(sqlDB *sql.DB) (*DB, error) {
	sqlDB.SetMaxOpenConns(1)
	if err := migrate(sqlDB); err != nil {
		return nil, err
	}
	return newDB(sqlDB, nil), nil
}
