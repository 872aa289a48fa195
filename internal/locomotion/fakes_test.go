package locomotion

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type fakeMover struct {
	grounded bool
	moves    []rl.Vector3
}

func (m *fakeMover) IsGrounded() bool { return m.grounded }

func (m *fakeMover) Move(d rl.Vector3) { m.moves = append(m.moves, d) }

type fakeCamera struct {
	yaw      float32
	vertical bool
}

func (c *fakeCamera) CurrentYaw() float32 { return c.yaw }

func (c *fakeCamera) SetVerticalAxisEnabled(enabled bool) { c.vertical = enabled }

type recordingSink struct {
	floats map[string]float32
	bools  map[string]bool
	calls  int
}

func newRecordingSink() *recordingSink {
	return &recordingSink{floats: map[string]float32{}, bools: map[string]bool{}}
}

func (s *recordingSink) SetFloat(name string, v float32) {
	s.floats[name] = v
	s.calls++
}

func (s *recordingSink) SetBool(name string, v bool) {
	s.bools[name] = v
	s.calls++
}

type fakeCollider struct {
	height float32
	center rl.Vector3
	sets   int
}

func (c *fakeCollider) ColliderHeight() float32 { return c.height }

func (c *fakeCollider) ColliderCenter() rl.Vector3 { return c.center }

func (c *fakeCollider) SetCollider(height float32, center rl.Vector3) {
	c.height = height
	c.center = center
	c.sets++
}

// rig bundles a controller with its fakes.
type rig struct {
	ctrl   *Controller
	mover  *fakeMover
	camera *fakeCamera
	sink   *recordingSink
}

func newRig(t *testing.T, cfg Config) *rig {
	t.Helper()
	r := &rig{
		mover:  &fakeMover{grounded: true},
		camera: &fakeCamera{},
		sink:   newRecordingSink(),
	}
	ctrl, err := New(cfg, Deps{Mover: r.mover, Camera: r.camera, Sink: r.sink}, 0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	r.ctrl = ctrl
	return r
}

func approx(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}
