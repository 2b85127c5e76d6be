package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection holding the persisted slots
type DB struct {
	*sql.DB
	log *zap.Logger
}

// Open opens the SQLite database at path, creating it and its directory if
// necessary. An empty path opens the default ~/.pacer/data.db.
func Open(path string, logger *zap.Logger) (*DB, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("getting db path: %w", err)
		}
		path = p
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// One writer; keeps :memory: databases on a single connection too
	sqlDB.SetMaxOpenConns(1)

	if err := migrate(sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return newDB(sqlDB, logger), nil
}

func newDB(sqlDB *sql.DB, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{DB: sqlDB, log: logger.Named("store")}
}

// DefaultPath returns the path to the default SQLite database file
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".pacer", "data.db"), nil
}
