package engine

// System is a per-tick transform over entities matching a component query
type System interface {
	Update()
	Name() string
	Priority() int // Lower values run first
}

// SystemBase provides common dependencies for all systems
// Embed in a system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  *Resources
	Component ComponentStore
}

// NewSystemBase initializes base dependencies from the world
// Call once in the system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  w.Resources,
		Component: w.Components,
	}
}
