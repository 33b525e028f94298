package engine

import (
	"github.com/lixenwraith/fetch/core"
)

// First returns the first entity holding a component of type T in
// creation order, or (core.NoEntity, false) when the store is empty.
// Absence is a valid transient condition; callers skip their work for
// the tick rather than fail.
func First[T any](s *Store[T]) (core.Entity, bool) {
	entities := s.GetAllEntities()
	if len(entities) == 0 {
		return core.NoEntity, false
	}
	return entities[0], true
}

// FirstPlayer returns the first player entity in creation order
func FirstPlayer(w *World) (core.Entity, bool) {
	return First(w.Components.Player)
}

// FirstBall returns the first ball entity in creation order
func FirstBall(w *World) (core.Entity, bool) {
	return First(w.Components.Ball)
}
