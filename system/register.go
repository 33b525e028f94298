package system

import (
	"github.com/lixenwraith/fetch/engine"
)

// RegisterAll wires the simulation systems into the world in tick order:
// movement -> throw -> ball physics -> dog AI. Input refresh and render
// bracket the tick in the outer loop.
func RegisterAll(world *engine.World) {
	world.AddSystem(NewMovementSystem(world))
	world.AddSystem(NewThrowSystem(world))
	world.AddSystem(NewBallPhysicsSystem(world))
	world.AddSystem(NewDogAISystem(world))
}
