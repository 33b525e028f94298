package engine

import (
	"github.com/lixenwraith/fetch/component"
)

// ComponentStore holds the typed component stores
// Populated once at world creation; pointers remain valid for the world's
// lifetime so systems can cache them
type ComponentStore struct {
	Position *Store[component.PositionComponent]
	Velocity *Store[component.VelocityComponent]
	Sprite   *Store[component.SpriteComponent]

	Player *Store[component.PlayerComponent]
	Dog    *Store[component.DogAIComponent]
	Ball   *Store[component.BallComponent]
	Throw  *Store[component.ThrowChargeComponent]
}

func initComponentStores(w *World) {
	w.Components = ComponentStore{
		Position: NewStore[component.PositionComponent](),
		Velocity: NewStore[component.VelocityComponent](),
		Sprite:   NewStore[component.SpriteComponent](),

		Player: NewStore[component.PlayerComponent](),
		Dog:    NewStore[component.DogAIComponent](),
		Ball:   NewStore[component.BallComponent](),
		Throw:  NewStore[component.ThrowChargeComponent](),
	}

	w.allStores = []AnyStore{
		w.Components.Position,
		w.Components.Velocity,
		w.Components.Sprite,
		w.Components.Player,
		w.Components.Dog,
		w.Components.Ball,
		w.Components.Throw,
	}
}
