package locomotion

import (
	"math"
	"testing"
)

func TestDeltaAngle(t *testing.T) {
	tests := []struct {
		current, target, want float32
	}{
		{0, 90, 90},
		{0, 270, -90},
		{350, 10, 20},
		{10, 350, -20},
		{0, 180, 180},
		{720, 30, 30},
	}
	for _, tt := range tests {
		if got := DeltaAngle(tt.current, tt.target); !approx(got, tt.want, 1e-4) {
			t.Errorf("DeltaAngle(%v, %v): Expected %v, got %v", tt.current, tt.target, tt.want, got)
		}
	}
}

func TestNormalizeYaw(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{360, 0},
		{-90, 270},
		{725, 5},
		{359.5, 359.5},
	}
	for _, tt := range tests {
		if got := NormalizeYaw(tt.in); !approx(got, tt.want, 1e-4) {
			t.Errorf("NormalizeYaw(%v): Expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestSmoothDampConvergesWithoutOvershoot(t *testing.T) {
	current := float32(0)
	var velocity float32
	for i := 0; i < 300; i++ {
		current = SmoothDamp(current, 10, &velocity, 0.1, 1000, 0.016)
		if current > 10 {
			t.Fatalf("step %d: overshot target, got %v", i, current)
		}
	}
	if !approx(current, 10, 1e-3) {
		t.Errorf("Expected to settle at 10, got %v", current)
	}
}

func TestSmoothDampRespectsMaxSpeed(t *testing.T) {
	current := float32(0)
	var velocity float32
	const maxSpeed = 30
	dt := float32(0.02)
	for i := 0; i < 50; i++ {
		next := SmoothDamp(current, 1000, &velocity, 0.1, maxSpeed, dt)
		if step := next - current; step > maxSpeed*dt*1.01 {
			t.Fatalf("step %d: Expected at most %v, got %v", i, maxSpeed*dt, step)
		}
		current = next
	}
}

func TestSmoothDampAngleWraps(t *testing.T) {
	var velocity float32
	got := SmoothDampAngle(350, 10, &velocity, 0.1, 1000, 0.02)
	if got <= 350 {
		t.Errorf("Expected to move up through 360, got %v", got)
	}
}

func TestForward(t *testing.T) {
	tests := []struct {
		yaw  float32
		x, z float32
	}{
		{0, 0, 1},
		{90, -1, 0},
		{180, 0, -1},
		{270, 1, 0},
	}
	for _, tt := range tests {
		f := Forward(tt.yaw)
		if !approx(f.X, tt.x, 1e-5) || !approx(f.Z, tt.z, 1e-5) || f.Y != 0 {
			t.Errorf("Forward(%v): Expected (%v, 0, %v), got %v", tt.yaw, tt.x, tt.z, f)
		}
		if l := math.Hypot(float64(f.X), float64(f.Z)); math.Abs(l-1) > 1e-5 {
			t.Errorf("Forward(%v): Expected unit length, got %v", tt.yaw, l)
		}
	}
}
