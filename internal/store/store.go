package store

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"padel-club-api/internal/pkg/clock"
	"padel-club-api/internal/pkg/config"
	"padel-club-api/internal/pkg/errs"
)

var (
	ErrPersistence = errs.New("document store persistence failure")
	ErrCorrupted   = errs.New("persisted document is not valid JSON")
)

// Store mirrors the whole club state to one JSON file. Commits are
// exclusive: the read-mutate-write sequence runs under a single lock, and
// the new snapshot only becomes authoritative once it is durably on disk.
// Reads return deep copies, so callers can never alias store internals.
type Store struct {
	path    string
	clock   clock.Clock
	mu      sync.Mutex // one in-flight commit at a time
	current *Document
}

// New opens the document at cfg.Path, seeding a default snapshot when no
// persisted state exists yet.
func New(cfg config.StoreConfig, club config.ClubConfig, clk clock.Clock) (*Store, error) {
	s := &Store{
		path:  cfg.Path,
		clock: clk,
	}

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc, err = DefaultDocument(club, clk.Now())
		if err != nil {
			return nil, errs.Wrap(err, "failed to seed default document")
		}
		if err := s.persist(doc); err != nil {
			return nil, err
		}
		slog.Info("seeded new club document", "path", cfg.Path)
	}

	s.current = doc
	return s, nil
}

// Read returns a deep copy of the last committed snapshot. Read-committed
// only: a read followed by a later commit observes no isolation unless both
// happen inside the same Update body.
func (s *Store) Read() *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneDocument(s.current)
}

// Update applies fn to a fresh copy of the current snapshot and persists
// the result before returning fn's value. This is the only sanctioned way
// to mutate state. fn returning an error aborts the commit with no partial
// writes; a persistence error leaves the prior snapshot authoritative.
func Update[T any](s *Store, fn func(doc *Document) (T, error)) (T, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneDocument(s.current)
	result, err := fn(next)
	if err != nil {
		return zero, err
	}

	if err := s.persist(next); err != nil {
		return zero, err
	}

	s.current = next
	return result, nil
}

// Mutate is Update for commits with no result value.
func (s *Store) Mutate(fn func(doc *Document) error) error {
	_, err := Update(s, func(doc *Document) (struct{}, error) {
		return struct{}{}, fn(doc)
	})
	return err
}

// load reads the persisted document, returning (nil, nil) when the file
// does not exist yet.
func (s *Store) load() (*Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrPersistence)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errs.Mark(err, ErrCorrupted)
	}
	return &doc, nil
}

// persist writes the full document to a temp file and renames it into
// place, so a crash mid-write never leaves a half-applied snapshot.
func (s *Store) persist(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errs.Mark(err, ErrPersistence)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errs.Mark(err, ErrPersistence)
	}

	tmp, err := os.CreateTemp(dir, ".db-*.json")
	if err != nil {
		return errs.Mark(err, ErrPersistence)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errs.Mark(err, ErrPersistence)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errs.Mark(err, ErrPersistence)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errs.Mark(err, ErrPersistence)
	}
	return nil
}

// cloneDocument deep-copies through the same JSON codec the document is
// persisted with, so the copy is exactly what a reload would produce.
func cloneDocument(doc *Document) *Document {
	data, err := json.Marshal(doc)
	if err != nil {
		// Document is composed solely of JSON-serializable records.
		panic("store: document not serializable: " + err.Error())
	}
	var out Document
	if err := json.Unmarshal(data, &out); err != nil {
		panic("store: document clone failed: " + err.Error())
	}
	return &out
}
