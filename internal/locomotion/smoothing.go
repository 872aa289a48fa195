package locomotion

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// minSmoothTime keeps the spring from dividing by zero.
const minSmoothTime = 0.0001

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// Repeat wraps t into [0, length).
func Repeat(t, length float32) float32 {
	r := t - float32(math.Floor(float64(t/length)))*length
	return rl.Clamp(r, 0, length)
}

// NormalizeYaw wraps an angle in degrees into [0, 360).
func NormalizeYaw(deg float32) float32 {
	r := Repeat(deg, 360)
	if r >= 360 {
		return 0
	}
	return r
}

// DeltaAngle returns the shortest signed difference target-current in degrees,
// in (-180, 180].
func DeltaAngle(current, target float32) float32 {
	d := Repeat(target-current, 360)
	if d > 180 {
		d -= 360
	}
	return d
}

// SmoothDamp moves current toward target with a critically damped spring.
// velocity carries the spring's derivative between calls and is updated in
// place. maxSpeed caps the rate of change; dt must be positive.
func SmoothDamp(current, target float32, velocity *float32, smoothTime, maxSpeed, dt float32) float32 {
	if smoothTime < minSmoothTime {
		smoothTime = minSmoothTime
	}
	omega := 2 / smoothTime

	x := omega * dt
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	originalTarget := target

	maxChange := maxSpeed * smoothTime
	change = rl.Clamp(change, -maxChange, maxChange)
	target = current - change

	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * decay
	output := target + (change+temp)*decay

	// No overshoot.
	if (originalTarget-current > 0) == (output > originalTarget) {
		output = originalTarget
		*velocity = (output - originalTarget) / dt
	}
	return output
}

// SmoothDampAngle is SmoothDamp over degrees, taking the shortest arc.
func SmoothDampAngle(current, target float32, velocity *float32, smoothTime, maxSpeed, dt float32) float32 {
	target = current + DeltaAngle(current, target)
	return SmoothDamp(current, target, velocity, smoothTime, maxSpeed, dt)
}

// Forward returns the unit heading for a yaw in degrees. Yaw 0 faces +Z and
// positive yaw turns right (clockwise seen from above) in a Y-up world.
func Forward(yawDeg float32) rl.Vector3 {
	rad := float64(yawDeg) * math.Pi / 180
	return rl.Vector3{
		X: float32(-math.Sin(rad)),
		Y: 0,
		Z: float32(math.Cos(rad)),
	}
}
