package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Key      string `json:"key"`
	Entries  int    `json:"entries"`
	Hydrated bool   `json:"hydrated"`
	Degraded bool   `json:"degraded"`
	SlotType string `json:"slot_type"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slotType := "unknown"
	if comp, ok := s.slot.(introspection.Component); ok {
		slotType = comp.ComponentType()
	}

	return StoreState{
		Key:      s.key,
		Entries:  len(s.state.Entries),
		Hydrated: s.hydrated,
		Degraded: s.degraded,
		SlotType: slotType,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
