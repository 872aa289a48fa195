package components

import (
	"thirdperson/internal/engine"
	"thirdperson/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider is a static box centered on the object's position plus Offset.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

func (b *BoxCollider) GetCenter() rl.Vector3 {
	return rl.Vector3Add(b.GetGameObject().Transform.Position, b.Offset)
}

func (b *BoxCollider) GetAABB() physics.AABB {
	return physics.NewAABBFromCenter(b.GetCenter(), b.Size)
}
