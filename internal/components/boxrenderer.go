package components

import (
	"thirdperson/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxRenderer draws the sibling BoxCollider as a solid cube with an outline.
type BoxRenderer struct {
	engine.BaseComponent
	Color   rl.Color
	Outline rl.Color

	collider *BoxCollider
}

func NewBoxRenderer(color rl.Color) *BoxRenderer {
	return &BoxRenderer{
		Color:   color,
		Outline: rl.NewColor(30, 30, 40, 255),
	}
}

func (r *BoxRenderer) Start() {
	r.collider = engine.GetComponent[*BoxCollider](r.GetGameObject())
}

func (r *BoxRenderer) Draw() {
	if r.collider == nil {
		return
	}
	center := r.collider.GetCenter()
	rl.DrawCubeV(center, r.collider.Size, r.Color)
	rl.DrawCubeWiresV(center, r.collider.Size, r.Outline)
}
