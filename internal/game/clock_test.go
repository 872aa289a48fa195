package game

import "testing"

func TestFixedStepAccumulates(t *testing.T) {
	clock := newFixedStep(0.25)

	if n := clock.Advance(0.1); n != 0 {
		t.Errorf("Expected 0 ticks, got %d", n)
	}
	if n := clock.Advance(0.2); n != 1 {
		t.Errorf("Expected 1 tick, got %d", n)
	}
	if a := clock.Alpha(); a < 0.19 || a > 0.21 {
		t.Errorf("Expected alpha near 0.2, got %v", a)
	}
	if n := clock.Advance(0.5); n != 2 {
		t.Errorf("Expected 2 ticks, got %d", n)
	}
}

func TestFixedStepDropsBacklog(t *testing.T) {
	clock := newFixedStep(0.25)

	if n := clock.Advance(10); n != clock.maxTicks {
		t.Errorf("Expected %d ticks, got %d", clock.maxTicks, n)
	}
	if n := clock.Advance(0); n != 0 {
		t.Errorf("Expected backlog dropped, got %d", n)
	}
}

func TestFixedStepIgnoresNegativeFrames(t *testing.T) {
	clock := newFixedStep(0.25)
	clock.Advance(0.2)

	if n := clock.Advance(-1); n != 0 {
		t.Errorf("Expected 0 ticks, got %d", n)
	}
	clock.SetStep(0.5)
	if clock.Alpha() != 0 {
		t.Errorf("Expected SetStep to drop the partial tick, got alpha %v", clock.Alpha())
	}
}
