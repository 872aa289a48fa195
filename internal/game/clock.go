package game

// fixedStep turns variable frame times into whole simulation ticks.
type fixedStep struct {
	step     float32
	maxTicks int // per frame, drops backlog after a stall
	acc      float32
}

func newFixedStep(step float32) *fixedStep {
	return &fixedStep{step: step, maxTicks: 8}
}

// Advance adds frame seconds and returns how many ticks to run.
func (f *fixedStep) Advance(frame float32) int {
	if frame > 0 {
		f.acc += frame
	}
	n := int(f.acc / f.step)
	if n > f.maxTicks {
		f.acc = 0
		return f.maxTicks
	}
	f.acc -= float32(n) * f.step
	return n
}

// SetStep changes the tick length and drops the partial tick.
func (f *fixedStep) SetStep(step float32) {
	f.step = step
	f.acc = 0
}

// Alpha is how far the next tick has progressed, in [0, 1).
func (f *fixedStep) Alpha() float32 {
	return f.acc / f.step
}
