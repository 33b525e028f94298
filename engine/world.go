package engine

import (
	"github.com/lixenwraith/fetch/core"
)

// World contains all entities and their components using typed stores.
// It is single-threaded by contract: the tick loop is the sole mutator,
// rendering is a read-only consumer that runs last in the tick.
type World struct {
	nextEntityID core.Entity

	Components ComponentStore
	Resources  *Resources

	systems   []System
	allStores []AnyStore
}

// NewWorld creates a new ECS world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		systems:      make([]System, 0),
	}
	w.Resources = newResources()
	initComponentStores(w)
	return w
}

// CreateEntity reserves a new entity ID
// Returns core.NoEntity when the id pool is exhausted
func (w *World) CreateEntity() core.Entity {
	if w.nextEntityID >= core.MaxEntities {
		return core.NoEntity
	}
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.allStores {
		store.RemoveEntity(e)
	}
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.nextEntityID = 1
	for _, store := range w.allStores {
		store.ClearAllComponents()
	}
}

// EntityCount returns the number of reserved entity ids
func (w *World) EntityCount() int {
	return int(w.nextEntityID - 1)
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns the registered systems in execution order
func (w *World) Systems() []System {
	return w.systems
}

// Update runs all systems sequentially in priority order
// The caller refreshes Resources.Time and Resources.Input first
func (w *World) Update() {
	for _, system := range w.systems {
		system.Update()
	}
}

// PushEvent emits a simulation event stamped with the current frame
func (w *World) PushEvent(eventType EventType, e core.Entity) {
	w.Resources.Events.Push(Event{
		Type:   eventType,
		Entity: e,
		Frame:  w.Resources.Time.Frame,
	})
}
