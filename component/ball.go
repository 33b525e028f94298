package component

import (
	"github.com/lixenwraith/fetch/core"
)

// BallState tracks which regime the ball is in
// Exactly one ball entity is assumed by all systems (first match in query)
type BallState uint8

const (
	BallHeldByPlayer BallState = iota
	BallInFlight
	BallOnGround
	BallHeldByDog
)

func (s BallState) String() string {
	switch s {
	case BallHeldByPlayer:
		return "held_by_player"
	case BallInFlight:
		return "in_flight"
	case BallOnGround:
		return "on_ground"
	case BallHeldByDog:
		return "held_by_dog"
	}
	return "unknown"
}

// BallComponent holds the fetch ball's physics and possession state
// Friction is the nominal per-60Hz-frame velocity retention in (0, 1],
// constant after creation. HeldBy is core.NoEntity while the ball is
// InFlight or OnGround.
type BallComponent struct {
	State    BallState
	Friction float64
	HeldBy   core.Entity
}

// Held reports whether the ball is currently carried
func (b BallComponent) Held() bool {
	return b.State == BallHeldByPlayer || b.State == BallHeldByDog
}

// Loose reports whether the ball is free for the dog to chase
func (b BallComponent) Loose() bool {
	return b.State == BallInFlight || b.State == BallOnGround
}
