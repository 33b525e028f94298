package system

import (
	"github.com/lixenwraith/fetch/component"
	"github.com/lixenwraith/fetch/constant"
	"github.com/lixenwraith/fetch/core"
	"github.com/lixenwraith/fetch/engine"
	"github.com/lixenwraith/fetch/input"
)

const testDt = 1.0 / 60

// testWorld is a bare world with the standard fetch entities but no
// systems; tests register exactly the systems under test
type testWorld struct {
	w      *engine.World
	player core.Entity
	dog    core.Entity
	ball   core.Entity
}

func newTestWorld(systems ...func(*engine.World) engine.System) *testWorld {
	w := engine.NewWorld()

	player := w.CreateEntity()
	w.Components.Position.SetComponent(player, component.PositionComponent{X: 400, Y: 300})
	w.Components.Player.SetComponent(player, component.PlayerComponent{Speed: constant.PlayerSpeed})
	w.Components.Sprite.SetComponent(player, component.SpriteComponent{Color: constant.PlayerColor, Radius: constant.PlayerRadius})
	w.Components.Throw.SetComponent(player, component.ThrowChargeComponent{})

	dog := w.CreateEntity()
	w.Components.Position.SetComponent(dog, component.PositionComponent{X: 300, Y: 350})
	w.Components.Dog.SetComponent(dog, component.DogAIComponent{State: component.DogIdle, Speed: constant.DogSpeed})
	w.Components.Sprite.SetComponent(dog, component.SpriteComponent{Color: constant.DogColor, Radius: constant.DogRadius})

	ball := w.CreateEntity()
	w.Components.Position.SetComponent(ball, component.PositionComponent{
		X: 400 + constant.PlayerHoldOffsetX,
		Y: 300 + constant.PlayerHoldOffsetY,
	})
	w.Components.Velocity.SetComponent(ball, component.VelocityComponent{})
	w.Components.Ball.SetComponent(ball, component.BallComponent{
		State:    component.BallHeldByPlayer,
		Friction: constant.BallFriction,
		HeldBy:   player,
	})
	w.Components.Sprite.SetComponent(ball, component.SpriteComponent{Color: constant.BallColor, Radius: constant.BallRadius})

	for _, newSystem := range systems {
		w.AddSystem(newSystem(w))
	}

	return &testWorld{w: w, player: player, dog: dog, ball: ball}
}

// tick advances the simulation one fixed-dt step with the given input
func (tw *testWorld) tick(snap input.Snapshot) {
	tw.w.Resources.Time.Delta = testDt
	tw.w.Resources.Time.Frame++
	tw.w.Resources.Input = snap
	tw.w.Update()
}

func (tw *testWorld) playerPos() component.PositionComponent {
	pos, _ := tw.w.Components.Position.GetComponent(tw.player)
	return pos
}

func (tw *testWorld) dogPos() component.PositionComponent {
	pos, _ := tw.w.Components.Position.GetComponent(tw.dog)
	return pos
}

func (tw *testWorld) ballPos() component.PositionComponent {
	pos, _ := tw.w.Components.Position.GetComponent(tw.ball)
	return pos
}

func (tw *testWorld) ballComp() component.BallComponent {
	ball, _ := tw.w.Components.Ball.GetComponent(tw.ball)
	return ball
}

func (tw *testWorld) dogComp() component.DogAIComponent {
	dog, _ := tw.w.Components.Dog.GetComponent(tw.dog)
	return dog
}

func (tw *testWorld) chargeComp() component.ThrowChargeComponent {
	charge, _ := tw.w.Components.Throw.GetComponent(tw.player)
	return charge
}

func (tw *testWorld) setBall(ball component.BallComponent) {
	tw.w.Components.Ball.SetComponent(tw.ball, ball)
}

func (tw *testWorld) setDog(dog component.DogAIComponent) {
	tw.w.Components.Dog.SetComponent(tw.dog, dog)
}

func pointerAt(x, y float64) input.Snapshot {
	return input.Snapshot{PointerX: x, PointerY: y}
}

func pointerPress(x, y float64) input.Snapshot {
	return input.Snapshot{PointerX: x, PointerY: y, PointerDown: true, PointerPressed: true}
}

func pointerHold(x, y float64) input.Snapshot {
	return input.Snapshot{PointerX: x, PointerY: y, PointerDown: true}
}

func pointerRelease(x, y float64) input.Snapshot {
	return input.Snapshot{PointerX: x, PointerY: y, PointerReleased: true}
}
