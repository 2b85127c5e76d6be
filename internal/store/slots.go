package store

import (
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Get retrieves a slot value by key. ok is false if the key doesn't exist.
func (db *DB) Get(key string) (value string, ok bool, err error) {
	err = db.QueryRow(`
		SELECT value FROM slots WHERE key = ?
	`, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading slot %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores a slot value, replacing any previous one
func (db *DB) Set(key, value string) error {
	_, err := db.Exec(`
		INSERT INTO slots (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("writing slot %q: %w", key, err)
	}

	db.log.Debug("slot written", zap.String("key", key), zap.Int("bytes", len(value)))
	return nil
}

// Delete removes a slot. Deleting a missing key is not an error.
func (db *DB) Delete(key string) error {
	if _, err := db.Exec(`DELETE FROM slots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting slot %q: %w", key, err)
	}
	return nil
}

// Keys lists every stored slot key in order
func (db *DB) Keys() ([]string, error) {
	rows, err := db.Query(`SELECT key FROM slots ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
