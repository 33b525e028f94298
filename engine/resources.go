package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/fetch/constant"
	"github.com/lixenwraith/fetch/input"
)

// TimeResource carries per-tick timing for systems
// Updated by the outer loop at the start of every tick
type TimeResource struct {
	// Delta is the elapsed frame time in seconds
	Delta float64

	// Frame is the tick counter since world creation
	Frame int64
}

// ConfigResource holds the play-field geometry
type ConfigResource struct {
	Width, Height float64
	Margin        float64
}

// TuningResource carries throw tuning so the bootstrap can override the
// built-in defaults from fetch.toml
type TuningResource struct {
	ChargeRate    float64
	MinThrowSpeed float64
	MaxThrowSpeed float64
}

// Resources bundles the shared per-tick state owned by the outer loop.
// Systems read these instead of reaching for globals; the loop is the only
// writer and refreshes Time and Input before systems run.
type Resources struct {
	Time   TimeResource
	Config ConfigResource
	Tuning TuningResource
	Input  input.Snapshot
	Events *EventQueue
	Log    *zap.Logger
}

func newResources() *Resources {
	return &Resources{
		Config: ConfigResource{
			Width:  constant.DefaultWorldWidth,
			Height: constant.DefaultWorldHeight,
			Margin: constant.WorldMargin,
		},
		Tuning: TuningResource{
			ChargeRate:    constant.ChargeRate,
			MinThrowSpeed: constant.MinThrowSpeed,
			MaxThrowSpeed: constant.MaxThrowSpeed,
		},
		Events: NewEventQueue(),
		Log:    zap.NewNop(),
	}
}
