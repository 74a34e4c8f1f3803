package core

import "context"

// DefaultKey is the slot key the collection is stored under.
const DefaultKey = "flashcards"

// Slot is the persistence boundary of the Store: a named key/value cell
// holding the whole serialized collection. Adapters exist for the
// filesystem, SQLite and plain memory.
type Slot interface {
	// Load returns the value stored under key, or ErrSlotEmpty when the
	// slot has never been written.
	Load(ctx context.Context, key string) ([]byte, error)

	// Store overwrites the value under key. There is no transactional
	// guarantee beyond what the adapter provides.
	Store(ctx context.Context, key string, data []byte) error
}

// Watchable is implemented by slots that can report external rewrites.
type Watchable interface {
	Watch(ctx context.Context, key string) (<-chan Event, error)
}
