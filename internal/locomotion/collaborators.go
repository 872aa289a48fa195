package locomotion

import rl "github.com/gen2brain/raylib-go/raylib"

// OrientationReference is the camera rig as seen by the controller.
type OrientationReference interface {
	// CurrentYaw returns the rig's heading in degrees.
	CurrentYaw() float32
	// SetVerticalAxisEnabled toggles pitch look on the rig.
	SetVerticalAxisEnabled(enabled bool)
}

// Mover resolves a desired displacement against world geometry.
type Mover interface {
	IsGrounded() bool
	Move(displacement rl.Vector3)
}

// AnimationSink receives animation parameters. Calls are fire-and-forget.
type AnimationSink interface {
	SetFloat(name string, value float32)
	SetBool(name string, value bool)
}

// ColliderShape is resized while crouching.
type ColliderShape interface {
	ColliderHeight() float32
	ColliderCenter() rl.Vector3
	SetCollider(height float32, center rl.Vector3)
}

// Animation parameter names.
const (
	ParamMovementDirection = "movementDirection"
	ParamJumpValue         = "jumpValue"
	ParamIsJumping         = "isJumping"
	ParamCurrentRotation   = "currentRotation"
)
