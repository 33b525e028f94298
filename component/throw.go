package component

// ThrowChargeComponent represents an in-progress charge-and-aim gesture
// Attached to the player entity. While Active, Power grows monotonically
// toward 1; Target tracks the pointer every tick.
type ThrowChargeComponent struct {
	Power            float64 // [0, 1]
	TargetX, TargetY float64
	Active           bool
}
