// Package store persists the whole financial aggregate as one
// serialized blob under a single fixed key in a local SQLite database.
// There are no migrations and no partial writes: every save rewrites
// the entire state.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/theirongolddev/hisab/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// stateKey is the fixed key the aggregate lives under.
const stateKey = "hisab_state_v5"

// ErrCorruptState indicates the stored blob exists but cannot be
// parsed. Surfaced to the caller instead of faulting at startup.
var ErrCorruptState = errors.New("store: corrupt state payload")

var logger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "store").Logger()

// Store is the SQLite-backed persistence adapter.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the state blob under the fixed key. Returns (nil, nil)
// when nothing has been saved yet, and ErrCorruptState when the blob
// cannot be decoded.
func (s *Store) Load() (*model.FinancialState, error) {
	var payload []byte
	err := s.db.QueryRow("SELECT payload FROM state WHERE key = ?", stateKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading state: %w", err)
	}

	var state model.FinancialState
	if err := json.Unmarshal(payload, &state); err != nil {
		logger.Error().Err(err).Msg("stored state failed to decode")
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return &state, nil
}

// Save serializes the whole aggregate and writes it under the fixed
// key, replacing whatever was there. Synchronous; called on every
// mutation.
func (s *Store) Save(state model.FinancialState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(`INSERT OR REPLACE INTO state (key, payload, saved_at) VALUES (?, ?, ?)`,
		stateKey, payload, now)
	if err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	return nil
}
