package locomotion

// GroundState is the coarse contact state reported by the mover.
type GroundState int

const (
	Airborne GroundState = iota
	Grounded
)

func (g GroundState) String() string {
	if g == Grounded {
		return "grounded"
	}
	return "airborne"
}

// jumpTracker does the grounded/airborne bookkeeping and owns the jump charges.
type jumpTracker struct {
	state             GroundState
	timeSinceGrounded float32
	remainingJumps    int
}

// update records this tick's contact report. Every grounded tick refills the
// charges; every airborne tick extends the time since the last contact.
func (j *jumpTracker) update(grounded bool, dt float32, maxJumps int) {
	if grounded {
		j.state = Grounded
		j.timeSinceGrounded = 0
		j.remainingJumps = maxJumps
		return
	}
	j.state = Airborne
	j.timeSinceGrounded += dt
}

// canJump reports whether a jump request may spend a charge this tick.
// Coyote time only gates the first airborne jump; once a charge is spent the
// remaining ones are usable for the rest of the flight.
func (j *jumpTracker) canJump(cfg Config) bool {
	if j.remainingJumps <= 0 {
		return false
	}
	if j.state == Grounded {
		return true
	}
	if j.timeSinceGrounded < cfg.CoyoteTime {
		return true
	}
	return j.remainingJumps < cfg.Jumps
}

func (j *jumpTracker) consume() {
	if j.remainingJumps > 0 {
		j.remainingJumps--
	}
}

// clampCharges keeps the charge count inside [0, maxJumps] after a retune.
func (j *jumpTracker) clampCharges(maxJumps int) {
	if j.remainingJumps > maxJumps {
		j.remainingJumps = maxJumps
	}
	if j.remainingJumps < 0 {
		j.remainingJumps = 0
	}
}
