package vmath

import (
	"math"
	"testing"
)

func TestNormalize2DUnitLength(t *testing.T) {
	nx, ny := Normalize2D(3, 4)
	if math.Abs(nx-0.6) > 1e-12 || math.Abs(ny-0.8) > 1e-12 {
		t.Errorf("Expected (0.6, 0.8), got (%v, %v)", nx, ny)
	}
}

func TestNormalize2DZeroSafe(t *testing.T) {
	nx, ny := Normalize2D(0, 0)
	if nx != 0 || ny != 0 {
		t.Errorf("Expected zero vector, got (%v, %v)", nx, ny)
	}

	// Sub-epsilon vectors must not divide by near-zero
	nx, ny = Normalize2D(1e-9, -1e-9)
	if nx != 0 || ny != 0 {
		t.Errorf("Expected zero vector for degenerate input, got (%v, %v)", nx, ny)
	}
}

func TestMoveTowardAdvances(t *testing.T) {
	nx, ny, dist := MoveToward(0, 0, 100, 0, 60, 1.0/60)
	if math.Abs(nx-1) > 1e-12 || ny != 0 {
		t.Errorf("Expected (1, 0), got (%v, %v)", nx, ny)
	}
	if dist != 100 {
		t.Errorf("Expected pre-move distance 100, got %v", dist)
	}
}

func TestMoveTowardSnapsOnOvershoot(t *testing.T) {
	// One step would carry past the target on both axes
	nx, ny, dist := MoveToward(0, 0, 1, 1, 1000, 1.0/60)
	if nx != 1 || ny != 1 {
		t.Errorf("Expected snap to (1, 1), got (%v, %v)", nx, ny)
	}
	if math.Abs(dist-math.Sqrt2) > 1e-12 {
		t.Errorf("Expected distance sqrt(2), got %v", dist)
	}
}

func TestMoveTowardSnapsSingleAxis(t *testing.T) {
	// Nearly vertical target: the x axis overshoots first
	nx, ny, _ := MoveToward(0, 0, 0.1, 100, 60, 1.0/60)
	if nx != 0.1 {
		t.Errorf("Expected x snapped to 0.1, got %v", nx)
	}
	if ny >= 100 || ny <= 0 {
		t.Errorf("Expected y strictly between 0 and 100, got %v", ny)
	}
}

func TestMoveTowardDegenerate(t *testing.T) {
	nx, ny, dist := MoveToward(5, 5, 5, 5, 100, 1.0/60)
	if nx != 5 || ny != 5 {
		t.Errorf("Expected position unchanged at target, got (%v, %v)", nx, ny)
	}
	if dist >= MinMagnitude {
		t.Errorf("Expected near-zero distance, got %v", dist)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Expected 5, got %v", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Expected 10, got %v", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(150, 600, 0); got != 150 {
		t.Errorf("Expected 150, got %v", got)
	}
	if got := Lerp(150, 600, 1); got != 600 {
		t.Errorf("Expected 600, got %v", got)
	}
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Expected 5, got %v", got)
	}
}
