package component

// VelocityComponent marks an entity for kinematic integration
// Units are world units per second
type VelocityComponent struct {
	X, Y float64
}
