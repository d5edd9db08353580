package snapshot

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	applog "shophood/internal/log"
	"shophood/internal/store"
)

// SchemaVersion guards the persisted form. The snapshot is fully
// reconstructible from seed data, so a version bump needs no migration: an
// unknown version is treated the same as a corrupt payload.
const SchemaVersion = 1

var (
	ErrNoSnapshot = errors.New("snapshot: none stored")
	ErrCorrupt    = errors.New("snapshot: unreadable")
)

// Store keeps the serialized application state in a single-row sqlite table.
type Store struct {
	db *sqlx.DB
}

func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	schema := `
CREATE TABLE IF NOT EXISTS snapshots(
  id       INTEGER PRIMARY KEY CHECK (id = 1),
  version  INTEGER NOT NULL,
  payload  TEXT NOT NULL,
  saved_at TEXT NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

type row struct {
	Version int    `db:"version"`
	Payload string `db:"payload"`
}

// Load decodes the stored state. ErrNoSnapshot when nothing was ever saved;
// an error wrapping ErrCorrupt when the payload or version is unusable, so
// callers can fall back to seed data.
func (s *Store) Load() (store.State, error) {
	var r row
	err := s.db.Get(&r, `SELECT version, payload FROM snapshots WHERE id = 1`)
	if err == sql.ErrNoRows {
		return store.State{}, ErrNoSnapshot
	}
	if err != nil {
		return store.State{}, err
	}
	if r.Version != SchemaVersion {
		return store.State{}, fmt.Errorf("%w: schema version %d", ErrCorrupt, r.Version)
	}
	var st store.State
	if err := json.Unmarshal([]byte(r.Payload), &st); err != nil {
		return store.State{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return st, nil
}

// Bootstrap returns the starting state: the stored snapshot when readable,
// otherwise the seed. A missing snapshot is the normal first run; any other
// read failure is logged and recovered locally, never fatal.
func (s *Store) Bootstrap() store.State {
	st, err := s.Load()
	switch {
	case err == nil:
		log.Printf("[snapshot] restored prior state (%d users, %d products)", len(st.Users), len(st.Products))
		return st
	case errors.Is(err, ErrNoSnapshot):
	default:
		applog.Error(nil, "snapshot.load", err, map[string]any{"fallback": "seed"})
	}
	return store.Seed()
}

// Save overwrites the snapshot with the full state. time.Time fields encode
// as RFC3339 with nanoseconds, so message timestamps round-trip above
// millisecond precision.
func (s *Store) Save(st store.State) error {
	payload, err := json.Marshal(st)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO snapshots(id, version, payload, saved_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		  version  = excluded.version,
		  payload  = excluded.payload,
		  saved_at = excluded.saved_at
	`, SchemaVersion, string(payload), time.Now().UTC().Format(time.RFC3339Nano))
	return err
}
