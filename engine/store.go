package engine

import (
	"github.com/lixenwraith/fetch/core"
)

// AnyStore is the type-erased store interface used for uniform lifecycle
// operations across all component stores
type AnyStore interface {
	RemoveEntity(e core.Entity)
	HasEntity(e core.Entity) bool
	ClearAllComponents()
}

// Store is a generic container for a specific component type T.
// Layout is a dense per-attribute array indexed by entity id with a
// parallel presence bitset, plus an append-ordered entity list for
// deterministic creation-order iteration.
//
// Stores are not locked: the tick loop is the sole mutator and rendering
// is a read-only consumer that runs last in the tick.
type Store[T any] struct {
	data     []T
	present  []uint64
	entities []core.Entity
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		entities: make([]core.Entity, 0, 16),
	}
}

func (s *Store[T]) bit(e core.Entity) (word int, mask uint64) {
	return int(e >> 6), 1 << (e & 63)
}

func (s *Store[T]) has(e core.Entity) bool {
	word, mask := s.bit(e)
	return word < len(s.present) && s.present[word]&mask != 0
}

// grow extends the dense arrays to cover entity id e
func (s *Store[T]) grow(e core.Entity) {
	if int(e) < len(s.data) {
		return
	}
	next := make([]T, e+1)
	copy(next, s.data)
	s.data = next

	words := int(e>>6) + 1
	if words > len(s.present) {
		nextBits := make([]uint64, words)
		copy(nextBits, s.present)
		s.present = nextBits
	}
}

// SetComponent inserts or updates a component for an entity
func (s *Store[T]) SetComponent(e core.Entity, val T) {
	if e == core.NoEntity || e >= core.MaxEntities {
		return
	}
	s.grow(e)
	if !s.has(e) {
		s.entities = append(s.entities, e)
		word, mask := s.bit(e)
		s.present[word] |= mask
	}
	s.data[e] = val
}

// GetComponent retrieves a component for an entity
func (s *Store[T]) GetComponent(e core.Entity) (T, bool) {
	if !s.has(e) {
		var zero T
		return zero, false
	}
	return s.data[e], true
}

// HasEntity checks if entity has this component
func (s *Store[T]) HasEntity(e core.Entity) bool {
	return s.has(e)
}

// RemoveEntity deletes a component from an entity
func (s *Store[T]) RemoveEntity(e core.Entity) {
	if !s.has(e) {
		return
	}
	word, mask := s.bit(e)
	s.present[word] &^= mask
	var zero T
	s.data[e] = zero
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// GetAllEntities returns all entities with this component in creation order
// The returned slice is shared; callers must not mutate it
func (s *Store[T]) GetAllEntities() []core.Entity {
	return s.entities
}

// CountEntities returns the number of entities with this component
func (s *Store[T]) CountEntities() int {
	return len(s.entities)
}

// ClearAllComponents removes all components from this store
func (s *Store[T]) ClearAllComponents() {
	s.data = nil
	s.present = nil
	s.entities = s.entities[:0]
}
