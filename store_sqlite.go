package bullboard

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Store is the durable, SQLite-backed EventStore.
//
// Events are stored one row each: an auto-increment id, the event's creation
// timestamp, the ledger id and the serialized payload. Reads query by ledger
// id ordered by the stored creation timestamp; timestamp ties are broken by
// the insertion id, which is stable but otherwise carries no meaning.
//
// The store is safe for a single process; concurrent writers from multiple
// processes are out of scope.
type Store struct {
	db *sql.DB
}

// createdAtFormat orders lexicographically the same as chronologically, which
// is what the read index relies on.
const createdAtFormat = "2006-01-02 15:04:05.000000000"

// Open opens (creating if necessary) the SQLite database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &StorageError{Op: "open", Err: fmt.Errorf("database path is required")}
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, &StorageError{Op: "open", Err: err}
	}
	return &Store{db: db}, nil
}

// Init creates the event table and its read index. It is idempotent and safe
// to run on every start.
func (s *Store) Init() error {
	const schema = `
CREATE TABLE IF NOT EXISTS events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at TEXT NOT NULL,
	ledger_id TEXT NOT NULL,
	event TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS events_by_ledger ON events (ledger_id, created_at);
`
	if _, err := s.db.Exec(schema); err != nil {
		return &SchemaError{Err: err}
	}
	return nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Append implements EventStore. The whole batch is written in one
// transaction, so a multi-event append is all-or-nothing.
func (s *Store) Append(ledgerID string, events []Event) error {
	tx, err := s.db.Begin()
	if err != nil {
		return &StorageError{Op: "append", Err: err}
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO events (created_at, ledger_id, event) VALUES (?, ?, ?)")
	if err != nil {
		return &StorageError{Op: "append", Err: err}
	}
	defer stmt.Close()

	for _, e := range events {
		payload, err := EncodeEvent(e)
		if err != nil {
			return &StorageError{Op: "append", Err: err}
		}
		createdAt := e.When().UTC().Format(createdAtFormat)
		if _, err := stmt.Exec(createdAt, ledgerID, string(payload)); err != nil {
			return &StorageError{Op: "append", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "append", Err: err}
	}
	return nil
}

// Read implements EventStore.
func (s *Store) Read(ledgerID string) ([]Event, error) {
	rows, err := s.db.Query(
		"SELECT event FROM events WHERE ledger_id = ? ORDER BY created_at ASC, id ASC", ledgerID)
	if err != nil {
		return nil, &StorageError{Op: "read", Err: err}
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, &StorageError{Op: "read", Err: err}
		}
		event, err := DecodeEvent([]byte(payload))
		if err != nil {
			// CorruptEventError bubbles up as is: the caller decides whether
			// a damaged history is fatal.
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "read", Err: err}
	}

	if len(events) == 0 {
		return nil, &LedgerNotFoundError{LedgerID: ledgerID}
	}
	return events, nil
}

var _ EventStore = (*Store)(nil)
var _ EventStore = (*MemoryStore)(nil)
