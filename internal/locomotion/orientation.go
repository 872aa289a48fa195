package locomotion

import rl "github.com/gen2brain/raylib-go/raylib"

// orientation owns the body yaw and the turn spring.
type orientation struct {
	yaw          float32 // degrees, [0, 360)
	turnVelocity float32
}

// active reports whether orientation (and with it translation) runs this tick.
func active(in InputSnapshot) bool {
	return rl.Vector2Length(in.Move) > 0 || !in.CameraRotate
}

// turnOffset maps the stick to an eight-way heading offset. Diagonals turn
// half as far, and the offset flips when backing up so back-left still turns
// toward the left.
func turnOffset(move rl.Vector2) float32 {
	offset := (move.X * 90) / (1 + abs32(move.Y))
	if move.Y < 0 {
		offset = -offset
	}
	return offset
}

// step advances the yaw toward the target and returns the signed change.
func (o *orientation) step(in InputSnapshot, cameraYaw, dt float32, cfg Config) float32 {
	reference := o.yaw
	if !in.CameraRotate {
		reference = NormalizeYaw(cameraYaw)
	}
	target := reference + turnOffset(in.Move)

	previous := o.yaw
	next := SmoothDampAngle(previous, target, &o.turnVelocity, cfg.TurnTime, cfg.TurnDegreesPerSecond, dt)
	o.yaw = NormalizeYaw(next)
	return next - previous
}
