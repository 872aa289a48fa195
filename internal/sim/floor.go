package sim

import rl "github.com/gen2brain/raylib-go/raylib"

// floorMover is an infinite plane at FloorY. It lands the body whenever a
// move would take its feet below the plane.
type floorMover struct {
	Position rl.Vector3
	FloorY   float32
	grounded bool

	height float32
	center rl.Vector3
}

func newFloorMover(startY float32) *floorMover {
	return &floorMover{
		Position: rl.Vector3{Y: startY},
		grounded: startY <= 0,
		height:   2,
		center:   rl.Vector3{Y: 1},
	}
}

func (m *floorMover) IsGrounded() bool { return m.grounded }

func (m *floorMover) Move(d rl.Vector3) {
	m.Position = rl.Vector3Add(m.Position, d)
	m.grounded = false
	if m.Position.Y <= m.FloorY {
		m.Position.Y = m.FloorY
		m.grounded = true
	}
}

func (m *floorMover) ColliderHeight() float32 { return m.height }

func (m *floorMover) ColliderCenter() rl.Vector3 { return m.center }

func (m *floorMover) SetCollider(height float32, center rl.Vector3) {
	m.height = height
	m.center = center
}

// fixedCamera holds a scripted yaw.
type fixedCamera struct {
	yaw      float32
	vertical bool
}

func (c *fixedCamera) CurrentYaw() float32 { return c.yaw }

func (c *fixedCamera) SetVerticalAxisEnabled(enabled bool) { c.vertical = enabled }
