package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Store owns the authoritative in-memory collection and mirrors it into a
// single Slot key after every mutation.
type Store struct {
	mu       sync.RWMutex
	slot     Slot
	key      string
	logger   *slog.Logger
	newID    func() string
	state    State
	hydrated bool
	degraded bool
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStoreLogger sets the logger used for persistence diagnostics.
func WithStoreLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithKey overrides DefaultKey.
func WithKey(key string) StoreOption {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithIDGenerator replaces the UUID generator used for new entries.
func WithIDGenerator(fn func() string) StoreOption {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewStore creates a Store backed by slot. The store starts empty;
// call Hydrate once before serving user operations.
func NewStore(slot Slot, opts ...StoreOption) *Store {
	s := &Store{
		slot:   slot,
		key:    DefaultKey,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		newID:  uuid.NewString,
		state:  State{Entries: []Entry{}},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hydrate loads the collection from the slot. An empty or unparseable
// slot yields an empty collection. A slot read failure switches the
// store to memory-only mode and returns an error wrapping
// ErrStorageUnavailable. Hydrate runs once; later calls return
// ErrAlreadyHydrated.
func (s *Store) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return ErrAlreadyHydrated
	}
	s.hydrated = true

	data, err := s.slot.Load(ctx, s.key)
	switch {
	case errors.Is(err, ErrSlotEmpty):
		s.logger.Debug("slot empty, starting with empty collection", "key", s.key)
		return nil
	case err != nil:
		s.degraded = true
		s.logger.Warn("slot unreadable, continuing in memory", "key", s.key, "error", err)
		return fmt.Errorf("%w: load %s: %w", ErrStorageUnavailable, s.key, err)
	}

	entries, err := DecodeCollection(data)
	if err != nil {
		s.logger.Warn("slot holds invalid data, starting with empty collection", "key", s.key, "error", err)
		return nil
	}
	assigned := s.assignIDs(entries)
	s.state = State{Entries: entries}
	s.logger.Debug("hydrated", "key", s.key, "entries", len(entries))

	// Ids handed out to stored entries must survive the next load.
	if assigned > 0 {
		if err := s.writeBack(ctx); err != nil {
			s.logger.Warn("could not save assigned ids", "key", s.key, "assigned", assigned, "error", err)
		}
	}
	return nil
}

// assignIDs gives a fresh id to every entry that has none or repeats an
// earlier entry's id, and reports how many it changed.
func (s *Store) assignIDs(entries []Entry) int {
	seen := make(map[string]struct{}, len(entries))
	n := 0
	for i := range entries {
		if _, dup := seen[entries[i].ID]; entries[i].ID == "" || dup {
			entries[i].ID = s.newID()
			n++
		}
		seen[entries[i].ID] = struct{}{}
	}
	return n
}

// Add appends a new entry built from the given fields. It reports false
// without touching state when front or back is blank. Unknown categories
// become CategoryGeneral and tags are deduplicated.
func (s *Store) Add(ctx context.Context, front, back string, category Category, tags []string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := NewEntry("", front, back, category, tags)
	if !ok {
		return false, nil
	}
	e.ID = s.newID()
	return true, s.dispatch(ctx, AddEntry{Entry: e})
}

// Delete removes the entry at index in the current order. Out of range
// indices are ignored.
func (s *Store) Delete(ctx context.Context, index int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dispatchChanged(ctx, DeleteAt{Index: index})
}

// DeleteByID removes the entry with the given id. Unknown ids are ignored.
func (s *Store) DeleteByID(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dispatchChanged(ctx, DeleteByID{ID: id})
}

// Replace swaps the whole collection and persists it immediately.
// Entries without an id, or repeating an earlier id, get a fresh one.
func (s *Store) Replace(ctx context.Context, entries []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.Clone(entries)
	s.assignIDs(next)
	return s.dispatch(ctx, Replace{Entries: next})
}

// Filter returns the entries filed under c, or all of them for CategoryAll.
func (s *Store) Filter(c Category) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Filter(s.state.Entries, c)
}

// Entries returns a copy of the full collection.
func (s *Store) Entries() []Entry {
	return s.Filter(CategoryAll)
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.state.Entries)
}

// Degraded reports whether the store gave up on its slot for this session.
func (s *Store) Degraded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.degraded
}

// Slot returns the slot backing the store.
func (s *Store) Slot() Slot {
	return s.slot
}

// Watch observes external rewrites of the store's slot key if the slot
// supports it.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.slot.(Watchable)
	if !ok {
		return nil, ErrWatchUnsupported
	}
	return w.Watch(ctx, s.key)
}

// Close releases the slot if it holds resources (e.g. a database).
func (s *Store) Close() error {
	if c, ok := s.slot.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Persist writes the current collection to the slot.
func (s *Store) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.persist(ctx)
}

func (s *Store) dispatchChanged(ctx context.Context, a Action) (bool, error) {
	next, changed := Reduce(s.state, a)
	if !changed {
		return false, nil
	}
	s.state = next
	return true, s.persist(ctx)
}

func (s *Store) dispatch(ctx context.Context, a Action) error {
	_, err := s.dispatchChanged(ctx, a)
	return err
}

// persist must be called with s.mu held.
func (s *Store) persist(ctx context.Context) error {
	if s.degraded {
		s.logger.Debug("memory-only mode, skipping slot write", "key", s.key)
		return nil
	}

	if err := s.writeBack(ctx); err != nil {
		s.degraded = true
		s.logger.Warn("slot write failed, continuing in memory", "key", s.key, "error", err)
		return fmt.Errorf("%w: store %s: %w", ErrStorageUnavailable, s.key, err)
	}
	return nil
}

// writeBack encodes the collection into the slot. It must be called with
// s.mu held.
func (s *Store) writeBack(ctx context.Context) error {
	data, err := EncodeCollection(s.state.Entries)
	if err != nil {
		return err
	}
	if err := s.slot.Store(ctx, s.key, data); err != nil {
		return err
	}
	s.logger.Debug("persisted", "key", s.key, "entries", len(s.state.Entries), "bytes", len(data))
	return nil
}
