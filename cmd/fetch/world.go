package main

import (
	"github.com/lixenwraith/fetch/component"
	"github.com/lixenwraith/fetch/config"
	"github.com/lixenwraith/fetch/constant"
	"github.com/lixenwraith/fetch/core"
	"github.com/lixenwraith/fetch/engine"
)

// setupWorld creates the three entities of a fetch session: the player
// holding the ball, and the dog waiting nearby
func setupWorld(w *engine.World, cfg config.Config) (player, dog, ball core.Entity) {
	player = w.CreateEntity()
	w.Components.Position.SetComponent(player, component.PositionComponent{
		X: constant.PlayerStartX,
		Y: constant.PlayerStartY,
	})
	w.Components.Player.SetComponent(player, component.PlayerComponent{
		Speed: cfg.Player.Speed,
	})
	w.Components.Sprite.SetComponent(player, component.SpriteComponent{
		Color:  constant.PlayerColor,
		Radius: constant.PlayerRadius,
	})
	w.Components.Throw.SetComponent(player, component.ThrowChargeComponent{})

	dog = w.CreateEntity()
	w.Components.Position.SetComponent(dog, component.PositionComponent{
		X: constant.DogStartX,
		Y: constant.DogStartY,
	})
	w.Components.Dog.SetComponent(dog, component.DogAIComponent{
		State: component.DogIdle,
		Speed: cfg.Dog.Speed,
	})
	w.Components.Sprite.SetComponent(dog, component.SpriteComponent{
		Color:  constant.DogColor,
		Radius: constant.DogRadius,
	})

	ball = w.CreateEntity()
	w.Components.Position.SetComponent(ball, component.PositionComponent{
		X: constant.PlayerStartX + constant.PlayerHoldOffsetX,
		Y: constant.PlayerStartY + constant.PlayerHoldOffsetY,
	})
	w.Components.Velocity.SetComponent(ball, component.VelocityComponent{})
	w.Components.Ball.SetComponent(ball, component.BallComponent{
		State:    component.BallHeldByPlayer,
		Friction: cfg.Ball.Friction,
		HeldBy:   player,
	})
	w.Components.Sprite.SetComponent(ball, component.SpriteComponent{
		Color:  constant.BallColor,
		Radius: constant.BallRadius,
	})

	return player, dog, ball
}
