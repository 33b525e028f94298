package system

import (
	"github.com/lixenwraith/fetch/component"
	"github.com/lixenwraith/fetch/constant"
	"github.com/lixenwraith/fetch/engine"
	"github.com/lixenwraith/fetch/vmath"
)

// MovementSystem converts input intent into player motion, integrates
// generic kinematic entities, and clamps everything into the play field.
// Runs first in the tick so later systems see current positions.
type MovementSystem struct {
	engine.SystemBase
}

func NewMovementSystem(world *engine.World) engine.System {
	return &MovementSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *MovementSystem) Name() string { return "movement" }

func (s *MovementSystem) Priority() int { return constant.PriorityMovement }

func (s *MovementSystem) Update() {
	dt := s.Resource.Time.Delta
	in := s.Resource.Input

	// Player intent movement
	for _, e := range s.Component.Player.GetAllEntities() {
		player, _ := s.Component.Player.GetComponent(e)
		pos, ok := s.Component.Position.GetComponent(e)
		if !ok {
			continue
		}

		var ix, iy float64
		if in.Left {
			ix -= 1
		}
		if in.Right {
			ix += 1
		}
		if in.Up {
			iy -= 1
		}
		if in.Down {
			iy += 1
		}

		// Diagonal intent normalized to unit length
		nx, ny := vmath.Normalize2D(ix, iy)
		pos.X += nx * player.Speed * dt
		pos.Y += ny * player.Speed * dt
		s.Component.Position.SetComponent(e, pos)
	}

	// Generic kinematic integration for velocity carriers
	// The ball integrates in its own physics step
	for _, e := range s.Component.Velocity.GetAllEntities() {
		if s.Component.Ball.HasEntity(e) {
			continue
		}
		vel, _ := s.Component.Velocity.GetComponent(e)
		pos, ok := s.Component.Position.GetComponent(e)
		if !ok {
			continue
		}
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
		s.Component.Position.SetComponent(e, pos)
	}

	s.clampBounds()
}

// clampBounds restricts every positioned entity to the play field.
// Must run after position integration within the same tick. The ball
// reflects off walls in its own physics step, so no velocity negation
// happens here.
func (s *MovementSystem) clampBounds() {
	cfg := s.Resource.Config
	minX, minY := cfg.Margin, cfg.Margin
	maxX := cfg.Width - cfg.Margin
	maxY := cfg.Height - cfg.Margin

	for _, e := range s.Component.Position.GetAllEntities() {
		pos, _ := s.Component.Position.GetComponent(e)
		clamped := component.PositionComponent{
			X: vmath.Clamp(pos.X, minX, maxX),
			Y: vmath.Clamp(pos.Y, minY, maxY),
		}
		if clamped != pos {
			s.Component.Position.SetComponent(e, clamped)
		}
	}
}
