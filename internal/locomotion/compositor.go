package locomotion

import rl "github.com/gen2brain/raylib-go/raylib"

// Mode selects which speed modifier applies on top of the base speed.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSprinting
	ModeCrouching
)

func (m Mode) String() string {
	switch m {
	case ModeSprinting:
		return "sprinting"
	case ModeCrouching:
		return "crouching"
	}
	return "normal"
}

// modeOf resolves the held buttons. Crouch suppresses sprint.
func modeOf(in InputSnapshot) Mode {
	switch {
	case in.Crouch:
		return ModeCrouching
	case in.Sprint:
		return ModeSprinting
	}
	return ModeNormal
}

func (m Mode) modifier(cfg Config) float32 {
	switch m {
	case ModeSprinting:
		return cfg.SprintModifier
	case ModeCrouching:
		return cfg.CrouchModifier
	}
	return 0
}

// horizontalVelocity returns the planar velocity for the stick and heading.
// Pure sideways input walks forward; the heading change does the strafing.
func horizontalVelocity(move rl.Vector2, yaw float32, mode Mode, cfg Config) rl.Vector3 {
	forward := Forward(yaw)
	dir := rl.Vector3Scale(forward, move.Y)
	if rl.Vector3Length(dir) == 0 {
		dir = rl.Vector3Scale(forward, abs32(move.X))
	}
	if rl.Vector3Length(dir) == 0 {
		return rl.Vector3Zero()
	}
	base := rl.Vector3Scale(rl.Vector3Normalize(dir), cfg.MovementSpeed)
	return rl.Vector3Scale(base, 1+mode.modifier(cfg))
}

// displacement combines planar and vertical velocity over one tick.
func displacement(horizontal rl.Vector3, verticalSpeed, dt float32) rl.Vector3 {
	velocity := rl.Vector3Add(horizontal, rl.Vector3{X: 0, Y: verticalSpeed, Z: 0})
	return rl.Vector3Scale(velocity, dt)
}
