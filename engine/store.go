package engine

import (
	"github.com/kamstrup/intmap"

	"github.com/solvane/stardrift/core"
)

// Store is a generic container for a specific component type T
// Uses sparse set pattern for cache-friendly iteration: an entity-keyed
// table plus a dense entity slice. All mutation happens on the tick
// goroutine, so the store carries no lock
type Store[T any] struct {
	components *intmap.Map[core.Entity, T]
	entities   []core.Entity
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: intmap.New[core.Entity, T](64),
		entities:   make([]core.Entity, 0, 64),
	}
}

// Add inserts or replaces the component for an entity
// Adding a second component of the same kind replaces the first
func (s *Store[T]) Add(e core.Entity, val T) {
	if _, exists := s.components.Get(e); !exists {
		s.entities = append(s.entities, e)
	}
	s.components.Put(e, val)
}

// Get retrieves the component for an entity
// Absence is an expected result, reported via the bool
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	return s.components.Get(e)
}

// Has checks if the entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.components.Get(e)
	return ok
}

// Remove deletes the component from an entity; no-op if absent
func (s *Store[T]) Remove(e core.Entity) {
	if _, exists := s.components.Get(e); !exists {
		return
	}
	s.components.Del(e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities[i] = s.entities[len(s.entities)-1]
			s.entities = s.entities[:len(s.entities)-1]
			break
		}
	}
}

// All returns a snapshot of entities holding this component
func (s *Store[T]) All() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns the number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.components.Clear()
	s.entities = s.entities[:0]
}
