package locomotion

// GroundDrag is the vertical speed held while standing so the mover keeps
// reporting contact on slopes and steps.
const GroundDrag float32 = -0.5

// verticalIntegrator owns the vertical speed.
type verticalIntegrator struct {
	velocity float32
}

func (v *verticalIntegrator) integrate(grounded bool, dt float32, cfg Config) {
	switch {
	case grounded && v.velocity <= 0:
		v.velocity = GroundDrag
	case v.velocity >= 0:
		v.velocity += cfg.Gravity * dt
	default:
		v.velocity += cfg.Gravity * dt * cfg.FallingModifier
	}
}

// jump applies one jump impulse.
//
// Rising (or standing) jumps are capped at a single impulse so a press near
// the apex cannot stack. Falling jumps cancel the fall and add a full
// impulse, so every mid-air jump reaches the same height.
func (v *verticalIntegrator) jump(grounded bool, cfg Config) {
	impulse := cfg.jumpImpulse()
	if grounded || v.velocity >= 0 {
		base := v.velocity
		if grounded && base < 0 {
			// ground drag is not momentum
			base = 0
		}
		v.velocity = min(base+impulse, impulse)
		return
	}
	v.velocity += impulse + abs32(v.velocity)
}
