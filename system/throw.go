package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/fetch/component"
	"github.com/lixenwraith/fetch/constant"
	"github.com/lixenwraith/fetch/core"
	"github.com/lixenwraith/fetch/engine"
	"github.com/lixenwraith/fetch/vmath"
)

// ThrowSystem runs the charge-and-release state machine layered on
// ThrowCharge.Active and owns the ball hand-off to in-flight.
// While the ball is held by the player it is pinned to a fixed offset
// every tick regardless of charge state.
type ThrowSystem struct {
	engine.SystemBase
}

func NewThrowSystem(world *engine.World) engine.System {
	return &ThrowSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *ThrowSystem) Name() string { return "throw" }

func (s *ThrowSystem) Priority() int { return constant.PriorityThrow }

func (s *ThrowSystem) Update() {
	dt := s.Resource.Time.Delta
	in := s.Resource.Input

	playerEnt, ok := engine.FirstPlayer(s.World)
	if !ok {
		return
	}
	charge, hasCharge := s.Component.Throw.GetComponent(playerEnt)
	if !hasCharge {
		return
	}

	// Aim target tracks the pointer every tick
	charge.TargetX = in.PointerX
	charge.TargetY = in.PointerY

	ballEnt, hasBall := engine.FirstBall(s.World)
	var ball component.BallComponent
	if hasBall {
		ball, _ = s.Component.Ball.GetComponent(ballEnt)
	}

	if !charge.Active && in.PointerPressed && hasBall && ball.State == component.BallHeldByPlayer {
		charge.Active = true
		charge.Power = 0
		s.setDogsExcited(true)
		s.World.PushEvent(engine.EventThrowCharge, playerEnt)
	}

	if charge.Active && in.PointerDown {
		charge.Power = vmath.Clamp(charge.Power+s.Resource.Tuning.ChargeRate*dt, 0, 1)
	}

	if charge.Active && in.PointerReleased {
		if hasBall {
			s.release(playerEnt, ballEnt, &ball, charge)
		}
		charge.Power = 0
		charge.Active = false
		s.setDogsExcited(false)
	}

	s.Component.Throw.SetComponent(playerEnt, charge)

	// Pin the held ball to the player
	if hasBall {
		ball, _ = s.Component.Ball.GetComponent(ballEnt)
		if ball.State == component.BallHeldByPlayer {
			if pos, ok := s.Component.Position.GetComponent(playerEnt); ok {
				s.Component.Position.SetComponent(ballEnt, component.PositionComponent{
					X: pos.X + constant.PlayerHoldOffsetX,
					Y: pos.Y + constant.PlayerHoldOffsetY,
				})
			}
		}
	}
}

// release launches the ball toward the aim target.
// A zero-length aim vector still clears the charge but leaves the ball
// untouched (degenerate throw guard).
func (s *ThrowSystem) release(playerEnt, ballEnt core.Entity, ball *component.BallComponent, charge component.ThrowChargeComponent) {
	if ball.State != component.BallHeldByPlayer {
		return
	}
	pos, ok := s.Component.Position.GetComponent(playerEnt)
	if !ok {
		return
	}

	dirX, dirY := vmath.Normalize2D(charge.TargetX-pos.X, charge.TargetY-pos.Y)
	if dirX == 0 && dirY == 0 {
		return
	}

	speed := vmath.Lerp(s.Resource.Tuning.MinThrowSpeed, s.Resource.Tuning.MaxThrowSpeed, charge.Power)
	s.Component.Velocity.SetComponent(ballEnt, component.VelocityComponent{
		X: dirX * speed,
		Y: dirY * speed,
	})

	ball.State = component.BallInFlight
	ball.HeldBy = core.NoEntity
	s.Component.Ball.SetComponent(ballEnt, *ball)

	s.World.PushEvent(engine.EventThrowRelease, ballEnt)
	s.Resource.Log.Debug("ball thrown",
		zap.Float64("power", charge.Power),
		zap.Float64("speed", speed),
	)
}

// setDogsExcited broadcasts the wind-up flag to every dog
func (s *ThrowSystem) setDogsExcited(excited bool) {
	for _, e := range s.Component.Dog.GetAllEntities() {
		dog, _ := s.Component.Dog.GetComponent(e)
		dog.Excited = excited
		s.Component.Dog.SetComponent(e, dog)
	}
}

// ChargeInfo is the read-only charge state exposed to the aim-indicator
// renderer
type ChargeInfo struct {
	Active           bool
	Power            float64
	TargetX, TargetY float64
	PlayerX, PlayerY float64
}

// ChargeState reports the current charging player's state, or ok=false
// when no player is charging
func ChargeState(w *engine.World) (ChargeInfo, bool) {
	playerEnt, ok := engine.FirstPlayer(w)
	if !ok {
		return ChargeInfo{}, false
	}
	charge, ok := w.Components.Throw.GetComponent(playerEnt)
	if !ok || !charge.Active {
		return ChargeInfo{}, false
	}
	pos, ok := w.Components.Position.GetComponent(playerEnt)
	if !ok {
		return ChargeInfo{}, false
	}
	return ChargeInfo{
		Active:  true,
		Power:   charge.Power,
		TargetX: charge.TargetX,
		TargetY: charge.TargetY,
		PlayerX: pos.X,
		PlayerY: pos.Y,
	}, true
}
