package components

import (
	"thirdperson/internal/engine"
	"thirdperson/internal/locomotion"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animator receives locomotion parameters and draws the character body.
// Collider height changes are eased instead of snapped.
type Animator struct {
	engine.BaseComponent

	Color         rl.Color
	AirColor      rl.Color
	TweenDuration float32

	floats map[string]float32
	bools  map[string]bool

	body         *CharacterController
	bodyHeight   float32
	targetHeight float32
	tween        *gween.Tween
}

func NewAnimator(color rl.Color) *Animator {
	return &Animator{
		Color:         color,
		AirColor:      rl.Orange,
		TweenDuration: 0.15,
		floats:        make(map[string]float32),
		bools:         make(map[string]bool),
	}
}

func (a *Animator) Start() {
	a.body = engine.GetComponent[*CharacterController](a.GetGameObject())
	if a.body != nil {
		a.bodyHeight = a.body.Height
		a.targetHeight = a.body.Height
	}
}

func (a *Animator) SetFloat(name string, value float32) {
	a.floats[name] = value
}

func (a *Animator) SetBool(name string, value bool) {
	a.bools[name] = value
}

func (a *Animator) Float(name string) float32 {
	return a.floats[name]
}

func (a *Animator) Bool(name string) bool {
	return a.bools[name]
}

// BodyHeight is the eased height used for drawing.
func (a *Animator) BodyHeight() float32 {
	return a.bodyHeight
}

func (a *Animator) Update(deltaTime float32) {
	if a.body == nil {
		return
	}
	if a.body.Height != a.targetHeight {
		a.tween = gween.New(a.bodyHeight, a.body.Height, a.TweenDuration, ease.OutCubic)
		a.targetHeight = a.body.Height
	}
	if a.tween == nil {
		return
	}
	height, done := a.tween.Update(deltaTime)
	a.bodyHeight = height
	if done {
		a.bodyHeight = a.targetHeight
		a.tween = nil
	}
}

func (a *Animator) Draw() {
	g := a.GetGameObject()
	if a.body == nil {
		return
	}

	color := a.Color
	if a.bools[locomotion.ParamIsJumping] {
		color = a.AirColor
	}

	feet := g.Transform.Position
	radius := a.body.Radius
	bottom := rl.Vector3Add(feet, rl.Vector3{Y: radius})
	top := rl.Vector3Add(feet, rl.Vector3{Y: max(a.bodyHeight-radius, radius)})
	rl.DrawCapsule(bottom, top, radius, 12, 6, color)

	chest := rl.Vector3Add(feet, rl.Vector3{Y: a.bodyHeight * 0.75})
	nose := rl.Vector3Add(chest, rl.Vector3Scale(locomotion.Forward(g.Transform.Rotation.Y), radius+0.4))
	rl.DrawLine3D(chest, nose, rl.Black)
}
