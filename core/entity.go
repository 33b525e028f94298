package core

// Entity is a unique identifier for an entity
// Zero is reserved as the "no entity" sentinel (e.g. Ball.HeldBy when free)
type Entity uint32

// NoEntity is the null entity reference
const NoEntity Entity = 0

// MaxEntities bounds the id pool; component stores size their dense arrays
// against this cap
const MaxEntities = 100_000
