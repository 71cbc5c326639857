package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"kfc-ordering/internal/domain"
)

// PostgresStore keeps the snapshot as one row in a key/value blob table.
// The table is a plain KV store; no relational schema for the collections.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	s := &PostgresStore{DB: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema() error {
	_, err := s.DB.Exec(`
		CREATE TABLE IF NOT EXISTS app_state (
			key TEXT PRIMARY KEY,
			blob JSONB NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("ensure app_state table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load() (domain.Snapshot, bool, error) {
	var blob []byte
	err := s.DB.QueryRow("SELECT blob FROM app_state WHERE key = $1", AppKey).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Snapshot{}, false, nil
	}
	if err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("select app_state: %w", err)
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("%w: %v", domain.ErrCorruptSnapshot, err)
	}
	return snap, true, nil
}

func (s *PostgresStore) Save(snap domain.Snapshot) error {
	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = s.DB.Exec(`
		INSERT INTO app_state (key, blob) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET blob = EXCLUDED.blob`,
		AppKey, blob)
	if err != nil {
		return fmt.Errorf("upsert app_state: %w", err)
	}
	return nil
}
