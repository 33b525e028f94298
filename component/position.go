package component

// PositionComponent places an entity in world space
// Exists on every entity that occupies the play field
type PositionComponent struct {
	X, Y float64
}
