package game

import (
	"fmt"
	"log/slog"

	"thirdperson/internal/locomotion"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorPanel  = rl.NewColor(30, 30, 40, 220)
	colorText   = rl.NewColor(220, 220, 230, 255)
	colorAccent = rl.NewColor(70, 130, 220, 255)
)

// hud is the debug overlay. Its widgets only react while the cursor is free
// (Tab).
type hud struct {
	tuning locomotion.Config
	notice string
}

func newHUD(cfg locomotion.Config) hud {
	return hud{tuning: cfg}
}

func (h *hud) style() {
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 14)
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
}

func (h *hud) draw(g *Game) {
	if rl.IsCursorHidden() {
		gui.Lock()
		defer gui.Unlock()
	}
	frame := g.controller.LastFrame()
	ctrl := g.controller.Controller()

	rl.DrawRectangle(10, 10, 300, 330, colorPanel)
	lines := []string{
		fmt.Sprintf("Mode:      %s", frame.Mode),
		fmt.Sprintf("Ground:    %s", ctrl.GroundState()),
		fmt.Sprintf("Jumps:     %d / %d", ctrl.RemainingJumps(), h.tuning.Jumps),
		fmt.Sprintf("Yaw:       %.1f", ctrl.Yaw()),
		fmt.Sprintf("Vertical:  %.2f m/s", frame.VerticalSpeed),
		fmt.Sprintf("Body:      %.2f m", g.animator.BodyHeight()),
		fmt.Sprintf("Ticks:     %d", g.ticks),
	}
	for i, line := range lines {
		rl.DrawText(line, 20, int32(20+i*18), 16, colorText)
	}

	y := float32(20 + len(lines)*18 + 10)
	g.Paused = gui.CheckBox(rl.Rectangle{X: 20, Y: y, Width: 16, Height: 16}, "Paused", g.Paused)
	vertical := gui.CheckBox(rl.Rectangle{X: 130, Y: y, Width: 16, Height: 16}, "Camera pitch", g.camera.VerticalAxisEnabled())
	if vertical != g.camera.VerticalAxisEnabled() {
		ctrl.SetCameraVerticalAxis(vertical)
	}

	y += 26
	next := h.tuning
	next.MovementSpeed = h.slider(y, "Speed", next.MovementSpeed, 0.5, 10)
	next.JumpHeight = h.slider(y+22, "Jump", next.JumpHeight, 0, 4)
	next.TurnDegreesPerSecond = h.slider(y+44, "Turn", next.TurnDegreesPerSecond, 30, 1080)
	next.CoyoteTime = h.slider(y+66, "Coyote", next.CoyoteTime, 0, 1)
	if next != h.tuning {
		if err := g.controller.Reconfigure(next); err != nil {
			slog.Warn("HUD tuning rejected", "error", err)
		} else {
			h.tuning = next
		}
	}

	if h.notice != "" {
		rl.DrawText(h.notice, 10, int32(rl.GetScreenHeight()-48), 16, rl.Orange)
	}
	rl.DrawText("WASD move, Shift sprint, Ctrl crouch, Space jump, RMB orbit, Tab cursor", 10, int32(rl.GetScreenHeight()-24), 16, colorText)
	rl.DrawFPS(int32(rl.GetScreenWidth()-90), 10)
}

func (h *hud) slider(y float32, label string, value, lo, hi float32) float32 {
	bounds := rl.Rectangle{X: 80, Y: y, Width: 160, Height: 16}
	return gui.Slider(bounds, label, fmt.Sprintf("%.2f", value), value, lo, hi)
}
