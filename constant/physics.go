package constant

// Ball physics
const (
	// BallFriction is the nominal per-60Hz-frame velocity retention;
	// applied as friction^(dt*60) for frame-rate independence
	BallFriction = 0.98

	// WallRestitution damps the reflected velocity component on wall hits
	WallRestitution = 0.7

	// BallStopSpeed is the speed below which an in-flight ball settles
	BallStopSpeed = 5.0
)
