package render

import (
	"github.com/lixenwraith/fetch/component"
	"github.com/lixenwraith/fetch/core"
	"github.com/lixenwraith/fetch/engine"
	"github.com/lixenwraith/fetch/system"
)

// CommandKind discriminates draw commands
type CommandKind uint8

const (
	KindCircle CommandKind = iota
	KindAimLine
	KindGauge
)

// Command is one renderer-agnostic draw instruction.
// BuildFrame produces these as a pure function of component state; the
// presenter rasterizes them without touching the world.
type Command struct {
	Kind CommandKind

	// Circle
	X, Y   float64
	Radius float64
	Color  uint32
	Entity core.Entity

	// Dog annotation
	DogState component.DogState
	Excited  bool
	IsDog    bool

	// Ball annotation
	BallState component.BallState
	HeldBy    core.Entity
	IsBall    bool

	// Aim line / gauge
	X2, Y2 float64
	Power  float64
}

// BuildFrame converts the world's drawable state into draw commands.
// Read-only; must run after all systems so it sees the fully updated tick.
func BuildFrame(w *engine.World) []Command {
	cmds := make([]Command, 0, 8)

	for _, e := range w.Components.Sprite.GetAllEntities() {
		sprite, _ := w.Components.Sprite.GetComponent(e)
		pos, ok := w.Components.Position.GetComponent(e)
		if !ok {
			continue
		}

		cmd := Command{
			Kind:   KindCircle,
			X:      pos.X,
			Y:      pos.Y,
			Radius: sprite.Radius,
			Color:  sprite.Color,
			Entity: e,
		}
		if dog, ok := w.Components.Dog.GetComponent(e); ok {
			cmd.IsDog = true
			cmd.DogState = dog.State
			cmd.Excited = dog.Excited
		}
		if ball, ok := w.Components.Ball.GetComponent(e); ok {
			cmd.IsBall = true
			cmd.BallState = ball.State
			cmd.HeldBy = ball.HeldBy
		}
		cmds = append(cmds, cmd)
	}

	if charge, ok := system.ChargeState(w); ok {
		cmds = append(cmds,
			Command{
				Kind: KindAimLine,
				X:    charge.PlayerX,
				Y:    charge.PlayerY,
				X2:   charge.TargetX,
				Y2:   charge.TargetY,
			},
			Command{
				Kind:  KindGauge,
				Power: charge.Power,
			},
		)
	}

	return cmds
}
