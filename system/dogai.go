package system

import (
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/fetch/component"
	"github.com/lixenwraith/fetch/constant"
	"github.com/lixenwraith/fetch/core"
	"github.com/lixenwraith/fetch/engine"
	"github.com/lixenwraith/fetch/vmath"
)

// DogAISystem drives each dog's four-state behavior machine:
// Idle -> ChasingBall -> ReturningToPlayer -> BackingOff -> Idle, with a
// loose ball interrupting the backoff. Runs against the first player and
// first ball in creation order and skips silently if either is missing.
type DogAISystem struct {
	engine.SystemBase
	rng *rand.Rand
}

func NewDogAISystem(world *engine.World) engine.System {
	return &DogAISystem{
		SystemBase: engine.NewSystemBase(world),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *DogAISystem) Name() string { return "dog_ai" }

func (s *DogAISystem) Priority() int { return constant.PriorityDogAI }

func (s *DogAISystem) Update() {
	dt := s.Resource.Time.Delta

	playerEnt, ok := engine.FirstPlayer(s.World)
	if !ok {
		return
	}
	ballEnt, ok := engine.FirstBall(s.World)
	if !ok {
		return
	}
	playerPos, ok := s.Component.Position.GetComponent(playerEnt)
	if !ok {
		return
	}

	for _, e := range s.Component.Dog.GetAllEntities() {
		dog, _ := s.Component.Dog.GetComponent(e)
		pos, ok := s.Component.Position.GetComponent(e)
		if !ok {
			continue
		}
		// Reloaded per dog; an earlier dog may have changed possession
		ball, _ := s.Component.Ball.GetComponent(ballEnt)

		prev := dog.State

		switch dog.State {
		case component.DogIdle:
			if ball.Loose() {
				dog.State = component.DogChasingBall
			}

		case component.DogChasingBall:
			if ball.State == component.BallHeldByPlayer {
				dog.WaitX, dog.WaitY = s.waitPosition(playerPos, pos)
				dog.State = component.DogBackingOff
				break
			}
			ballPos, ok := s.Component.Position.GetComponent(ballEnt)
			if !ok {
				break
			}
			var dist float64
			pos.X, pos.Y, dist = vmath.MoveToward(pos.X, pos.Y, ballPos.X, ballPos.Y, dog.Speed, dt)
			if dist < constant.DogPickupRadius && ball.Loose() {
				ball.State = component.BallHeldByDog
				ball.HeldBy = e
				s.Component.Ball.SetComponent(ballEnt, ball)
				s.pinBall(ballEnt, pos)
				dog.State = component.DogReturningToPlayer
				s.World.PushEvent(engine.EventDogPickup, e)
			}

		case component.DogReturningToPlayer:
			var dist float64
			pos.X, pos.Y, dist = vmath.MoveToward(pos.X, pos.Y, playerPos.X, playerPos.Y, dog.Speed, dt)
			if ball.State == component.BallHeldByDog && ball.HeldBy == e {
				s.pinBall(ballEnt, pos)
			}
			if dist < constant.DogDeliverRadius {
				ball.State = component.BallHeldByPlayer
				ball.HeldBy = playerEnt
				s.Component.Ball.SetComponent(ballEnt, ball)
				s.Component.Position.SetComponent(ballEnt, component.PositionComponent{
					X: playerPos.X + constant.PlayerHoldOffsetX,
					Y: playerPos.Y + constant.PlayerHoldOffsetY,
				})
				dog.WaitX, dog.WaitY = s.waitPosition(playerPos, pos)
				dog.State = component.DogBackingOff
				s.World.PushEvent(engine.EventDogDeliver, e)
			}

		case component.DogBackingOff:
			if ball.Loose() {
				dog.State = component.DogChasingBall
				break
			}
			var dist float64
			pos.X, pos.Y, dist = vmath.MoveToward(pos.X, pos.Y, dog.WaitX, dog.WaitY,
				dog.Speed*constant.DogBackoffSpeedFactor, dt)
			if dist < constant.DogWaitArriveRadius {
				dog.State = component.DogIdle
			}
		}

		s.Component.Position.SetComponent(e, pos)
		s.Component.Dog.SetComponent(e, dog)

		if dog.State != prev {
			s.Resource.Log.Debug("dog state",
				zap.String("from", prev.String()),
				zap.String("to", dog.State.String()),
			)
		}
	}
}

// pinBall keeps the carried ball at a fixed offset from the dog
func (s *DogAISystem) pinBall(ballEnt core.Entity, dogPos component.PositionComponent) {
	s.Component.Position.SetComponent(ballEnt, component.PositionComponent{
		X: dogPos.X + constant.DogHoldOffsetX,
		Y: dogPos.Y + constant.DogHoldOffsetY,
	})
}

// waitPosition picks the spot the dog retreats to after a delivery:
// along the player->dog direction at a fixed distance, clamped into the
// play field. A random direction is used when the dog sits exactly on
// the player.
func (s *DogAISystem) waitPosition(playerPos, dogPos component.PositionComponent) (float64, float64) {
	dx, dy := vmath.Normalize2D(dogPos.X-playerPos.X, dogPos.Y-playerPos.Y)
	if dx == 0 && dy == 0 {
		angle := s.rng.Float64() * 2 * math.Pi
		dx, dy = math.Cos(angle), math.Sin(angle)
	}

	cfg := s.Resource.Config
	wx := vmath.Clamp(playerPos.X+dx*constant.DogBackoffDistance, cfg.Margin, cfg.Width-cfg.Margin)
	wy := vmath.Clamp(playerPos.Y+dy*constant.DogBackoffDistance, cfg.Margin, cfg.Height-cfg.Margin)
	return wx, wy
}
