package input

// Snapshot is the per-tick input state consumed by simulation systems.
// It is refreshed once per tick before any system runs and is read-only
// for the rest of the tick.
type Snapshot struct {
	// Held movement intent
	Up, Down, Left, Right bool

	// Pointer position in world coordinates
	PointerX, PointerY float64

	// Pointer button level and edge state
	PointerDown     bool
	PointerPressed  bool // transitioned up -> down this tick
	PointerReleased bool // transitioned down -> up this tick
}
