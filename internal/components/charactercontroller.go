package components

import (
	"thirdperson/internal/engine"
	"thirdperson/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CharacterController moves a box-shaped body through the level's box
// colliders, climbing low steps. Transform.Position is the body's feet.
type CharacterController struct {
	engine.BaseComponent

	Height     float32    // Total height of the collider
	Radius     float32    // Half-width of the collider
	Center     rl.Vector3 // Collider center relative to the feet
	StepHeight float32    // Max height of steps to climb

	isGrounded bool
}

// skinWidth keeps floor contact from reading as a horizontal hit.
const skinWidth = 1e-3

func NewCharacterController() *CharacterController {
	return &CharacterController{
		Height:     2,
		Radius:     0.4,
		Center:     rl.Vector3{Y: 1},
		StepHeight: 0.35,
	}
}

// Bounds returns the collider box at the current position.
func (c *CharacterController) Bounds() physics.AABB {
	return c.boundsAt(c.GetGameObject().Transform.Position)
}

func (c *CharacterController) boundsAt(feet rl.Vector3) physics.AABB {
	size := rl.Vector3{X: c.Radius * 2, Y: c.Height, Z: c.Radius * 2}
	return physics.NewAABBFromCenter(rl.Vector3Add(feet, c.Center), size)
}

// Move moves the body by motion, one axis at a time, resolving overlaps
// against the level. Contact below the body marks it grounded.
func (c *CharacterController) Move(motion rl.Vector3) {
	g := c.GetGameObject()
	if g == nil {
		return
	}

	obstacles := c.obstacles()
	if len(obstacles) == 0 {
		g.Transform.Position = rl.Vector3Add(g.Transform.Position, motion)
		if motion.Y != 0 {
			c.isGrounded = false
		}
		return
	}

	if motion.X != 0 {
		c.moveHorizontal(g, 0, motion.X, obstacles)
	}
	if motion.Z != 0 {
		c.moveHorizontal(g, 2, motion.Z, obstacles)
	}
	if motion.Y != 0 {
		c.moveVertical(g, motion.Y, obstacles)
	}
}

func (c *CharacterController) obstacles() []physics.AABB {
	g := c.GetGameObject()
	if g.Scene == nil || g.Scene.World == nil {
		return nil
	}
	var boxes []physics.AABB
	for _, other := range g.Scene.World.GetCollidableObjects() {
		if other == g || !other.Active {
			continue
		}
		if box := engine.GetComponent[*BoxCollider](other); box != nil {
			boxes = append(boxes, box.GetAABB())
		}
	}
	return boxes
}

func (c *CharacterController) moveHorizontal(g *engine.GameObject, axis int, delta float32, obstacles []physics.AABB) {
	pos := &g.Transform.Position
	before := c.boundsAt(*pos)
	before.Min.Y += skinWidth
	if axis == 0 {
		pos.X += delta
	} else {
		pos.Z += delta
	}

	for _, other := range obstacles {
		body := c.boundsAt(*pos)
		body.Min.Y += skinWidth
		if !body.Intersects(other) || before.Intersects(other) {
			continue
		}
		if c.tryStepUp(pos, other, obstacles) {
			continue
		}
		push := body.ResolveAxis(other, axis, delta)
		if axis == 0 {
			pos.X += push
		} else {
			pos.Z += push
		}
	}
}

// tryStepUp lifts the body onto other when it is a low ledge with room above.
func (c *CharacterController) tryStepUp(pos *rl.Vector3, other physics.AABB, obstacles []physics.AABB) bool {
	if !c.isGrounded {
		return false
	}
	rise := other.Max.Y - c.boundsAt(*pos).Min.Y
	if rise <= 0 || rise > c.StepHeight {
		return false
	}
	lifted := *pos
	lifted.Y += rise
	body := c.boundsAt(lifted)
	for _, o := range obstacles {
		if body.Intersects(o) {
			return false
		}
	}
	*pos = lifted
	return true
}

// moveVertical snaps the collider flush against whatever it crossed, so a
// body resting on a floor touches it without overlapping. Boxes it already
// overlapped before the move are ignored.
func (c *CharacterController) moveVertical(g *engine.GameObject, delta float32, obstacles []physics.AABB) {
	pos := &g.Transform.Position
	before := c.boundsAt(*pos)
	pos.Y += delta
	c.isGrounded = false

	bottom := c.Center.Y - c.Height/2
	top := c.Center.Y + c.Height/2
	for _, other := range obstacles {
		if !c.boundsAt(*pos).Intersects(other) {
			continue
		}
		switch {
		case delta < 0 && other.Max.Y <= before.Min.Y+skinWidth:
			pos.Y = other.Max.Y - bottom
			c.isGrounded = true
		case delta > 0 && other.Min.Y >= before.Max.Y-skinWidth:
			pos.Y = other.Min.Y - top
		}
	}
}

// IsGrounded reports whether the last vertical move ended on a surface.
func (c *CharacterController) IsGrounded() bool {
	return c.isGrounded
}

func (c *CharacterController) ColliderHeight() float32 {
	return c.Height
}

func (c *CharacterController) ColliderCenter() rl.Vector3 {
	return c.Center
}

func (c *CharacterController) SetCollider(height float32, center rl.Vector3) {
	c.Height = height
	c.Center = center
}
