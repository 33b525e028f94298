package constant

// World defaults; the play field is sized by the bootstrap and may be
// overridden from fetch.toml
const (
	DefaultWorldWidth  = 800.0
	DefaultWorldHeight = 600.0

	// WorldMargin keeps entities off the exact edge on both axes
	WorldMargin = 10.0

	// TickRate is the nominal simulation frequency; dt is still measured
	// per frame, physics is frame-rate independent
	TickRate = 60
)
