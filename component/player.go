package component

// PlayerComponent marks the human-controlled entity
// At most one is expected per world; systems take the first match in
// creation order and skip silently when none exists
type PlayerComponent struct {
	Speed float64
}
