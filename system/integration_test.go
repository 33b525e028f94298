package system

import (
	"testing"

	"github.com/lixenwraith/fetch/component"
	"github.com/lixenwraith/fetch/constant"
	"github.com/lixenwraith/fetch/input"
)

// TestFullFetchCycle plays a complete round through the real system
// pipeline: wind up a throw, release, and let the dog bring the ball
// back. Checks that both state machines pass through their stations in
// order and that held-ball pinning holds on every tick.
func TestFullFetchCycle(t *testing.T) {
	tw := newTestWorld(
		NewMovementSystem,
		NewThrowSystem,
		NewBallPhysicsSystem,
		NewDogAISystem,
	)

	ballStates := []component.BallState{tw.ballComp().State}
	dogStates := []component.DogState{tw.dogComp().State}
	observe := func() {
		if s := tw.ballComp().State; s != ballStates[len(ballStates)-1] {
			ballStates = append(ballStates, s)
		}
		if s := tw.dogComp().State; s != dogStates[len(dogStates)-1] {
			dogStates = append(dogStates, s)
		}

		ball := tw.ballComp()
		pos := tw.ballPos()
		switch ball.State {
		case component.BallHeldByPlayer:
			p := tw.playerPos()
			if pos.X != p.X+constant.PlayerHoldOffsetX || pos.Y != p.Y+constant.PlayerHoldOffsetY {
				t.Fatalf("Held ball off the player offset: ball (%v, %v), player (%v, %v)",
					pos.X, pos.Y, p.X, p.Y)
			}
		case component.BallHeldByDog:
			d := tw.dogPos()
			if pos.X != d.X+constant.DogHoldOffsetX || pos.Y != d.Y+constant.DogHoldOffsetY {
				t.Fatalf("Carried ball off the dog offset: ball (%v, %v), dog (%v, %v)",
					pos.X, pos.Y, d.X, d.Y)
			}
		}
	}

	// Wind up for 45 ticks aiming east of the player
	tw.tick(pointerPress(560, 300))
	observe()
	prevPower := tw.chargeComp().Power
	for i := 0; i < 45; i++ {
		tw.tick(pointerHold(560, 300))
		observe()
		power := tw.chargeComp().Power
		if power < prevPower {
			t.Fatalf("Charge power regressed from %v to %v", prevPower, power)
		}
		prevPower = power
	}
	if !tw.dogComp().Excited {
		t.Error("Expected dog excited during wind-up")
	}

	tw.tick(pointerRelease(560, 300))
	observe()
	if got := ballStates[len(ballStates)-1]; got != component.BallInFlight {
		t.Fatalf("Expected ball in flight after release, got %v", got)
	}

	// Let the round play out
	for i := 0; i < 3000; i++ {
		tw.tick(input.Snapshot{})
		observe()
		if tw.ballComp().State == component.BallHeldByPlayer && tw.dogComp().State == component.DogIdle {
			break
		}
	}

	if got := tw.ballComp().State; got != component.BallHeldByPlayer {
		t.Fatalf("Expected ball back with the player, got %v (ball states %v)", got, ballStates)
	}
	if got := tw.dogComp().State; got != component.DogIdle {
		t.Fatalf("Expected dog settled back to idle, got %v (dog states %v)", got, dogStates)
	}

	wantDog := []component.DogState{
		component.DogIdle,
		component.DogChasingBall,
		component.DogReturningToPlayer,
		component.DogBackingOff,
		component.DogIdle,
	}
	if len(dogStates) != len(wantDog) {
		t.Fatalf("Expected dog states %v, got %v", wantDog, dogStates)
	}
	for i := range wantDog {
		if dogStates[i] != wantDog[i] {
			t.Fatalf("Expected dog states %v, got %v", wantDog, dogStates)
		}
	}

	// The ball either landed first or was snatched mid-air; both are
	// legal paths back to the player
	if ballStates[0] != component.BallHeldByPlayer || ballStates[1] != component.BallInFlight {
		t.Fatalf("Expected held->flight opening, got %v", ballStates)
	}
	last := ballStates[len(ballStates)-1]
	if last != component.BallHeldByPlayer {
		t.Fatalf("Expected ball cycle to close held-by-player, got %v", ballStates)
	}
	sawDogHold := false
	for _, s := range ballStates {
		if s == component.BallHeldByDog {
			sawDogHold = true
		}
	}
	if !sawDogHold {
		t.Fatalf("Expected the dog to carry the ball at some point, got %v", ballStates)
	}
}

// TestRegisterAllOrdering checks the fixed pipeline order: movement,
// throw, ball physics, dog AI.
func TestRegisterAllOrdering(t *testing.T) {
	tw := newTestWorld()
	RegisterAll(tw.w)

	want := []string{"movement", "throw", "ball_physics", "dog_ai"}
	systems := tw.w.Systems()
	if len(systems) != len(want) {
		t.Fatalf("Expected %d systems, got %d", len(want), len(systems))
	}
	for i, name := range want {
		if got := systems[i].Name(); got != name {
			t.Errorf("Expected system %d to be %q, got %q", i, name, got)
		}
	}
}
