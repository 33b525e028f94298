package component

// SpriteComponent declares how the renderer should draw an entity
// Carries no behavior; the render pipeline is a read-only consumer
type SpriteComponent struct {
	Color  uint32 // packed 0xRRGGBB
	Radius float64
}
