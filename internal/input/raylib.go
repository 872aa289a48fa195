package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Raylib reads the live window state. Only use it after rl.InitWindow.
type Raylib struct {
	Gamepad int32
}

func (Raylib) KeyDown(key int32) bool {
	return key != 0 && rl.IsKeyDown(key)
}

func (Raylib) MouseDown(button rl.MouseButton) bool {
	return rl.IsMouseButtonDown(button)
}

func (Raylib) MouseDelta() rl.Vector2 {
	return rl.GetMouseDelta()
}

func (r Raylib) Stick() rl.Vector2 {
	if !rl.IsGamepadAvailable(r.Gamepad) {
		return rl.Vector2{}
	}
	return rl.Vector2{
		X: rl.GetGamepadAxisMovement(r.Gamepad, rl.GamepadAxisLeftX),
		Y: rl.GetGamepadAxisMovement(r.Gamepad, rl.GamepadAxisLeftY),
	}
}

func (r Raylib) PadDown(button int32) bool {
	return button != 0 && rl.IsGamepadAvailable(r.Gamepad) && rl.IsGamepadButtonDown(r.Gamepad, button)
}
