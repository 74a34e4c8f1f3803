// Package memory provides a map-backed core.Slot. It keeps nothing
// between processes and is meant for tests and throwaway sessions.
package memory

import (
	"bytes"
	"context"
	"sync"

	"github.com/aretw0/flashdeck/pkg/core"
)

// Slot stores values in a map guarded by a mutex.
type Slot struct {
	mu     sync.RWMutex
	values map[string][]byte
	writes int
}

// NewSlot returns an empty Slot.
func NewSlot() *Slot {
	return &Slot{values: make(map[string][]byte)}
}

// Load implements core.Slot.
func (s *Slot) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, core.ErrSlotEmpty
	}
	return bytes.Clone(v), nil
}

// Store implements core.Slot.
func (s *Slot) Store(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = bytes.Clone(data)
	s.writes++
	return nil
}

// Writes returns how many times Store succeeded.
func (s *Slot) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// ComponentType implements introspection.Component.
func (s *Slot) ComponentType() string {
	return "memory-slot"
}

var _ core.Slot = (*Slot)(nil)
