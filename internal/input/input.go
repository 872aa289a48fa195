// Package input polls the keyboard, mouse and first gamepad and turns button
// levels into locomotion action phases.
package input

import (
	"thirdperson/internal/locomotion"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Device is the polled hardware. Raylib implements it for the window; tests
// use a scripted fake.
type Device interface {
	KeyDown(key int32) bool
	MouseDown(button rl.MouseButton) bool
	MouseDelta() rl.Vector2
	// Stick returns the left stick of the first gamepad, zero without one.
	Stick() rl.Vector2
	PadDown(button int32) bool
}

// Actions is the sink fed by Poll. *locomotion.InputState implements it.
type Actions interface {
	OnMove(v rl.Vector2)
	OnJump(phase locomotion.Phase)
	OnSprint(phase locomotion.Phase)
	OnCrouch(phase locomotion.Phase)
	OnTurnCamera(phase locomotion.Phase)
}

// Bindings maps actions to keys. Zero entries are unbound.
type Bindings struct {
	Forward, Back, Left, Right int32
	Jump, Sprint, Crouch       int32
	TurnCamera                 rl.MouseButton
	PadJump, PadSprint         int32
	PadCrouch                  int32
}

func DefaultBindings() Bindings {
	return Bindings{
		Forward:    rl.KeyW,
		Back:       rl.KeyS,
		Left:       rl.KeyA,
		Right:      rl.KeyD,
		Jump:       rl.KeySpace,
		Sprint:     rl.KeyLeftShift,
		Crouch:     rl.KeyLeftControl,
		TurnCamera: rl.MouseButtonRight,
		PadJump:    rl.GamepadButtonRightFaceDown,
		PadSprint:  rl.GamepadButtonLeftThumb,
		PadCrouch:  rl.GamepadButtonRightFaceRight,
	}
}

// button turns a level into phase transitions.
type button struct {
	down bool
}

// edge returns the phases to fire for the new level, oldest first.
func (b *button) edge(down bool) []locomotion.Phase {
	if down == b.down {
		return nil
	}
	b.down = down
	if down {
		return []locomotion.Phase{locomotion.PhaseStarted, locomotion.PhasePerformed}
	}
	return []locomotion.Phase{locomotion.PhaseCanceled}
}

// Poller remembers button levels between frames.
type Poller struct {
	Bindings Bindings
	Deadzone float32

	jump, sprint, crouch, turn button
	lastMove                   rl.Vector2
}

func NewPoller(b Bindings) *Poller {
	return &Poller{Bindings: b, Deadzone: 0.15}
}

// Poll reads dev once and forwards changes to dst. It returns the mouse
// delta for the camera.
func (p *Poller) Poll(dev Device, dst Actions) rl.Vector2 {
	move := p.move(dev)
	if move != p.lastMove {
		dst.OnMove(move)
		p.lastMove = move
	}

	b := p.Bindings
	fire(p.jump.edge(dev.KeyDown(b.Jump) || dev.PadDown(b.PadJump)), dst.OnJump)
	fire(p.sprint.edge(dev.KeyDown(b.Sprint) || dev.PadDown(b.PadSprint)), dst.OnSprint)
	fire(p.crouch.edge(dev.KeyDown(b.Crouch) || dev.PadDown(b.PadCrouch)), dst.OnCrouch)
	fire(p.turn.edge(dev.MouseDown(b.TurnCamera)), dst.OnTurnCamera)

	return dev.MouseDelta()
}

// Reset releases every held action, e.g. when the window loses the cursor.
func (p *Poller) Reset(dst Actions) {
	if p.lastMove != (rl.Vector2{}) {
		dst.OnMove(rl.Vector2{})
		p.lastMove = rl.Vector2{}
	}
	fire(p.jump.edge(false), dst.OnJump)
	fire(p.sprint.edge(false), dst.OnSprint)
	fire(p.crouch.edge(false), dst.OnCrouch)
	fire(p.turn.edge(false), dst.OnTurnCamera)
}

// move combines the keys with the stick. Keys win when any is held.
func (p *Poller) move(dev Device) rl.Vector2 {
	b := p.Bindings
	var v rl.Vector2
	if dev.KeyDown(b.Forward) {
		v.Y++
	}
	if dev.KeyDown(b.Back) {
		v.Y--
	}
	if dev.KeyDown(b.Right) {
		v.X++
	}
	if dev.KeyDown(b.Left) {
		v.X--
	}
	if v != (rl.Vector2{}) {
		return v
	}

	stick := dev.Stick()
	if rl.Vector2Length(stick) < p.Deadzone {
		return rl.Vector2{}
	}
	// raylib reports stick up as negative Y
	return rl.Vector2{X: stick.X, Y: -stick.Y}
}

func fire(phases []locomotion.Phase, to func(locomotion.Phase)) {
	for _, ph := range phases {
		to(ph)
	}
}
