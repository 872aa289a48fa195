package components

import (
	"math"

	"thirdperson/internal/engine"
	"thirdperson/internal/locomotion"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera circles a target object at a fixed distance. Yaw follows the
// body convention: 0 looks down +Z and positive values turn right. Pitch is
// the elevation of the camera above the focus point.
type OrbitCamera struct {
	engine.BaseComponent

	Target      *engine.GameObject
	Yaw         float32
	Pitch       float32
	Distance    float32
	Height      float32 // focus height above the target's feet
	Sensitivity float32 // degrees per pixel of mouse travel
	MinPitch    float32
	MaxPitch    float32
	FOV         float32

	verticalAxis bool
}

func NewOrbitCamera(target *engine.GameObject) *OrbitCamera {
	return &OrbitCamera{
		Target:       target,
		Pitch:        15,
		Distance:     5,
		Height:       1.6,
		Sensitivity:  0.15,
		MinPitch:     -30,
		MaxPitch:     60,
		FOV:          60,
		verticalAxis: true,
	}
}

// Look applies a mouse delta. The vertical component is ignored while the
// vertical axis is disabled.
func (c *OrbitCamera) Look(delta rl.Vector2) {
	c.Yaw = locomotion.NormalizeYaw(c.Yaw + delta.X*c.Sensitivity)
	if !c.verticalAxis {
		return
	}
	c.Pitch = rl.Clamp(c.Pitch+delta.Y*c.Sensitivity, c.MinPitch, c.MaxPitch)
}

func (c *OrbitCamera) CurrentYaw() float32 {
	return c.Yaw
}

func (c *OrbitCamera) SetVerticalAxisEnabled(enabled bool) {
	c.verticalAxis = enabled
}

func (c *OrbitCamera) VerticalAxisEnabled() bool {
	return c.verticalAxis
}

// Focus is the point the camera looks at.
func (c *OrbitCamera) Focus() rl.Vector3 {
	var base rl.Vector3
	if c.Target != nil {
		base = c.Target.Transform.Position
	}
	return rl.Vector3Add(base, rl.Vector3{Y: c.Height})
}

// Position places the camera behind the focus along the current yaw.
func (c *OrbitCamera) Position() rl.Vector3 {
	pitch := float64(c.Pitch) * math.Pi / 180
	back := rl.Vector3Negate(locomotion.Forward(c.Yaw))
	offset := rl.Vector3Scale(back, c.Distance*float32(math.Cos(pitch)))
	offset.Y = c.Distance * float32(math.Sin(pitch))
	return rl.Vector3Add(c.Focus(), offset)
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Focus(),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}
