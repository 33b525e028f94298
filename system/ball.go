package system

import (
	"math"

	"go.uber.org/zap"

	"github.com/lixenwraith/fetch/component"
	"github.com/lixenwraith/fetch/constant"
	"github.com/lixenwraith/fetch/engine"
	"github.com/lixenwraith/fetch/vmath"
)

// BallPhysicsSystem integrates in-flight balls: frame-rate-independent
// friction decay, wall reflection with restitution, and the stop
// transition to on-ground. Held and grounded balls are untouched.
type BallPhysicsSystem struct {
	engine.SystemBase
}

func NewBallPhysicsSystem(world *engine.World) engine.System {
	return &BallPhysicsSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *BallPhysicsSystem) Name() string { return "ball_physics" }

func (s *BallPhysicsSystem) Priority() int { return constant.PriorityBallPhysics }

func (s *BallPhysicsSystem) Update() {
	dt := s.Resource.Time.Delta
	cfg := s.Resource.Config

	minX, minY := cfg.Margin, cfg.Margin
	maxX := cfg.Width - cfg.Margin
	maxY := cfg.Height - cfg.Margin

	for _, e := range s.Component.Ball.GetAllEntities() {
		ball, _ := s.Component.Ball.GetComponent(e)
		if ball.State != component.BallInFlight {
			continue
		}
		vel, ok := s.Component.Velocity.GetComponent(e)
		if !ok {
			continue
		}
		pos, ok := s.Component.Position.GetComponent(e)
		if !ok {
			continue
		}

		// Friction is the nominal per-60Hz-frame retention; exponential
		// decay keeps the feel identical at any frame rate
		decay := math.Pow(ball.Friction, dt*60)
		vel.X *= decay
		vel.Y *= decay

		pos.X += vel.X * dt
		pos.Y += vel.Y * dt

		// Wall reflection, per axis so corner hits flip both in one tick
		if pos.X < minX {
			pos.X = minX
			vel.X = -vel.X * constant.WallRestitution
		} else if pos.X > maxX {
			pos.X = maxX
			vel.X = -vel.X * constant.WallRestitution
		}
		if pos.Y < minY {
			pos.Y = minY
			vel.Y = -vel.Y * constant.WallRestitution
		} else if pos.Y > maxY {
			pos.Y = maxY
			vel.Y = -vel.Y * constant.WallRestitution
		}

		if vmath.Magnitude(vel.X, vel.Y) < constant.BallStopSpeed {
			vel.X, vel.Y = 0, 0
			ball.State = component.BallOnGround
			s.Component.Ball.SetComponent(e, ball)
			s.World.PushEvent(engine.EventBallLanded, e)
			s.Resource.Log.Debug("ball landed",
				zap.Float64("x", pos.X),
				zap.Float64("y", pos.Y),
			)
		}

		s.Component.Velocity.SetComponent(e, vel)
		s.Component.Position.SetComponent(e, pos)
	}
}
