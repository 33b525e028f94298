package vmath

import (
	"github.com/go-gl/mathgl/mgl64"
)

// MinMagnitude guards normalization against division by near-zero
const MinMagnitude = 1e-6

// Normalize2D returns the unit vector of (x, y), zero-safe
// Vectors shorter than MinMagnitude normalize to (0, 0)
func Normalize2D(x, y float64) (nx, ny float64) {
	v := mgl64.Vec2{x, y}
	if v.Len() < MinMagnitude {
		return 0, 0
	}
	n := v.Normalize()
	return n.X(), n.Y()
}

// Magnitude returns the length of (x, y)
func Magnitude(x, y float64) float64 {
	return mgl64.Vec2{x, y}.Len()
}

// Distance returns the Euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return mgl64.Vec2{x2 - x1, y2 - y1}.Len()
}

// Lerp linearly interpolates between a and b by t in [0, 1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp restricts v to [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// MoveToward advances (x, y) toward (tx, ty) by speed*dt along the unit
// direction, snapping any axis that would overshoot the target this step.
// Returns the new position and the pre-move distance to the target for
// threshold checks.
func MoveToward(x, y, tx, ty, speed, dt float64) (nx, ny, dist float64) {
	to := mgl64.Vec2{tx - x, ty - y}
	dist = to.Len()
	if dist < MinMagnitude {
		return tx, ty, dist
	}

	dir := to.Mul(1 / dist)
	dx := dir.X() * speed * dt
	dy := dir.Y() * speed * dt

	nx = x + dx
	ny = y + dy

	// Per-axis overshoot snap
	if abs(dx) >= abs(to.X()) {
		nx = tx
	}
	if abs(dy) >= abs(to.Y()) {
		ny = ty
	}
	return nx, ny, dist
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
