package game

import (
	"testing"

	"thirdperson/internal/config"
	"thirdperson/internal/locomotion"
	"thirdperson/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(config.Default(), "", world.DefaultLevel())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

func TestNewBuildsPlayerInWorld(t *testing.T) {
	g := newTestGame(t)

	if g.World.Scene.FindByName("Player") != g.Player {
		t.Error("Expected the player in the scene")
	}
	if g.controller.Controller() == nil {
		t.Fatal("Expected an initialized controller")
	}
	for _, obj := range g.World.GetCollidableObjects() {
		if obj == g.Player {
			t.Error("Expected the player not to be a static collider")
		}
	}
}

func TestNewRejectsInvalidTuning(t *testing.T) {
	cfg := config.Default()
	cfg.Locomotion.TurnTime = 0
	if _, err := New(cfg, "", world.DefaultLevel()); err == nil {
		t.Error("Expected invalid tuning to fail")
	}
}

func TestStepRunsFixedTicks(t *testing.T) {
	g := newTestGame(t)
	g.controller.Input().OnMove(rl.Vector2{Y: 1})

	g.Step(1)

	if g.ticks != g.clock.maxTicks {
		t.Errorf("Expected a one second stall to be capped at %d ticks, got %d", g.clock.maxTicks, g.ticks)
	}
	if g.Player.Transform.Position.Z <= 0 {
		t.Errorf("Expected the player to walk toward +Z, got %v", g.Player.Transform.Position)
	}
}

func TestPausedStepHoldsPlayer(t *testing.T) {
	g := newTestGame(t)
	g.controller.Input().OnMove(rl.Vector2{Y: 1})
	g.Paused = true

	before := g.Player.Transform.Position
	for i := 0; i < 10; i++ {
		g.Step(0.1)
	}

	if g.Player.Transform.Position != before {
		t.Errorf("Expected no movement while paused, got %v -> %v", before, g.Player.Transform.Position)
	}
	if g.ticks != 0 {
		t.Errorf("Expected no simulation ticks while paused, got %d", g.ticks)
	}
}

func TestApplyConfig(t *testing.T) {
	g := newTestGame(t)

	next := config.Default()
	next.Locomotion.Jumps = 3
	next.Camera.Distance = 9
	next.Camera.VerticalAxis = false
	next.Window.TickRate = 30
	if err := g.ApplyConfig(next); err != nil {
		t.Fatalf("ApplyConfig failed: %v", err)
	}

	if g.controller.Controller().Config().Jumps != 3 {
		t.Errorf("Expected 3 jumps, got %d", g.controller.Controller().Config().Jumps)
	}
	if g.camera.Distance != 9 || g.camera.VerticalAxisEnabled() {
		t.Errorf("Expected camera distance 9 and pitch locked, got %v %v", g.camera.Distance, g.camera.VerticalAxisEnabled())
	}
	if g.clock.step != next.Window.FixedStep() {
		t.Errorf("Expected clock step %v, got %v", next.Window.FixedStep(), g.clock.step)
	}
	if g.hud.tuning.Jumps != 3 {
		t.Errorf("Expected HUD tuning to follow, got %d jumps", g.hud.tuning.Jumps)
	}
}

func TestApplyConfigRejectsInvalidTuning(t *testing.T) {
	g := newTestGame(t)
	before := g.Config()

	bad := config.Default()
	bad.Locomotion.Gravity = 5
	bad.Camera.Distance = 42
	if err := g.ApplyConfig(bad); err == nil {
		t.Fatal("Expected error for positive gravity")
	}

	if g.Config() != before || g.camera.Distance == 42 {
		t.Error("Expected a rejected config to change nothing")
	}
}

func TestFallSpeedTrackedForLanding(t *testing.T) {
	g := newTestGame(t)
	g.Step(0.1)
	g.controller.Input().OnJump(locomotion.PhasePerformed)
	for i := 0; i < 40; i++ {
		g.Step(0.1)
	}

	if !g.controller.LastFrame().Grounded {
		t.Fatal("Expected to have landed")
	}
	if g.fallSpeed >= 0 {
		t.Errorf("Expected a downward speed recorded before landing, got %v", g.fallSpeed)
	}
}
