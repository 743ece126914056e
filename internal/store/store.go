// Package store persists dictionary entries in a SQLite database. Each
// entry binds a headword to a validated phonological position, stored both
// as the canonical descriptor and as the compact code so either form can
// be indexed.
package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/tshetuinh/pkg/position"
)

//go:embed schema.sql
var schemaSQL string

// Store errors.
var (
	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("store is closed")
	// ErrNotFound is returned when no entry matches a lookup.
	ErrNotFound = errors.New("entry not found")
	// ErrEmptyHeadword is returned when an entry carries no headword.
	ErrEmptyHeadword = errors.New("entry headword is empty")
)

// Entry is one dictionary reading: a headword at a phonological position.
type Entry struct {
	EntryID    string
	Headword   string
	Descriptor string
	Code       string
	Fanqie     string
	Gloss      string
	Source     string
}

// Store is a SQLite-backed entry collection. It is safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	db   *sql.DB
	open bool
}

// Open creates or opens the entry database under dataDir. The directory is
// created if missing; a fresh database gets the schema applied.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	dbPath := filepath.Join(dataDir, "entries.db")
	_, statErr := os.Stat(dbPath)
	fresh := os.IsNotExist(statErr)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if fresh {
		if _, err := db.Exec(schemaSQL); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying schema: %w", err)
		}
	}
	return &Store{db: db, open: true}, nil
}

// Close releases the database. Further operations return ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return nil
	}
	s.open = false
	return s.db.Close()
}

// Add validates the entry's descriptor, assigns a UUID v7 entry ID,
// computes the compact code, and inserts the entry. The stored descriptor
// is the canonical form of the parsed position.
func (s *Store) Add(entry Entry) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return Entry{}, ErrClosed
	}
	if entry.Headword == "" {
		return Entry{}, ErrEmptyHeadword
	}

	draft, err := position.Parse(entry.Descriptor)
	if err != nil {
		return Entry{}, err
	}
	frozen, err := position.Validate(draft)
	if err != nil {
		return Entry{}, err
	}
	code, err := position.Encode(frozen)
	if err != nil {
		return Entry{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return Entry{}, fmt.Errorf("generating entry ID: %w", err)
	}
	entry.EntryID = id.String()
	entry.Descriptor = frozen.Descriptor()
	entry.Code = code

	_, err = s.db.Exec(
		`INSERT INTO entries (entry_id, headword, descriptor, code, fanqie, gloss, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.EntryID, entry.Headword, entry.Descriptor, entry.Code,
		entry.Fanqie, entry.Gloss, entry.Source,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("inserting entry %s: %w", entry.Headword, err)
	}
	return entry, nil
}

// LookupHeadword returns every entry for the headword, in insertion order.
func (s *Store) LookupHeadword(headword string) ([]Entry, error) {
	return s.query("SELECT entry_id, headword, descriptor, code, fanqie, gloss, source FROM entries WHERE headword = ? ORDER BY entry_id", headword)
}

// LookupCode returns every entry at the coded position.
func (s *Store) LookupCode(code string) ([]Entry, error) {
	return s.query("SELECT entry_id, headword, descriptor, code, fanqie, gloss, source FROM entries WHERE code = ? ORDER BY entry_id", code)
}

// LookupDescriptor returns every entry at the given canonical descriptor.
func (s *Store) LookupDescriptor(descriptor string) ([]Entry, error) {
	return s.query("SELECT entry_id, headword, descriptor, code, fanqie, gloss, source FROM entries WHERE descriptor = ? ORDER BY entry_id", descriptor)
}

// All returns every entry in insertion order.
func (s *Store) All() ([]Entry, error) {
	return s.query("SELECT entry_id, headword, descriptor, code, fanqie, gloss, source FROM entries ORDER BY entry_id")
}

// Count returns the number of stored entries.
func (s *Store) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.open {
		return 0, ErrClosed
	}
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return n, nil
}

func (s *Store) query(q string, args ...any) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.open {
		return nil, ErrClosed
	}
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.EntryID, &e.Headword, &e.Descriptor, &e.Code,
			&e.Fanqie, &e.Gloss, &e.Source); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	return entries, nil
}
