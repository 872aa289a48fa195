package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewAABBFromCenter(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{X: 1, Y: 2, Z: 3}, rl.Vector3{X: 2, Y: 4, Z: 6})

	if box.Min != (rl.Vector3{X: 0, Y: 0, Z: 0}) || box.Max != (rl.Vector3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Expected (0,0,0)-(2,4,6), got %v-%v", box.Min, box.Max)
	}
	if box.Center() != (rl.Vector3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Expected center (1,2,3), got %v", box.Center())
	}
	if box.Size() != (rl.Vector3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Expected size (2,4,6), got %v", box.Size())
	}
}

func TestTouchingBoxesDoNotIntersect(t *testing.T) {
	floor := AABB{Min: rl.Vector3{X: -5, Y: -1, Z: -5}, Max: rl.Vector3{X: 5, Y: 0, Z: 5}}
	body := AABB{Min: rl.Vector3{X: -0.5, Y: 0, Z: -0.5}, Max: rl.Vector3{X: 0.5, Y: 2, Z: 0.5}}

	if body.Intersects(floor) {
		t.Error("Expected a body resting on the floor not to intersect it")
	}
	if got := body.Resolve(floor); got != rl.Vector3Zero() {
		t.Errorf("Expected zero push, got %v", got)
	}
}

func TestResolvePicksShallowestAxis(t *testing.T) {
	floor := AABB{Min: rl.Vector3{X: -5, Y: -1, Z: -5}, Max: rl.Vector3{X: 5, Y: 0, Z: 5}}
	body := AABB{Min: rl.Vector3{X: -0.5, Y: -0.1, Z: -0.5}, Max: rl.Vector3{X: 0.5, Y: 1.9, Z: 0.5}}

	got := body.Resolve(floor)
	if got.X != 0 || got.Z != 0 || got.Y < 0.099 || got.Y > 0.101 {
		t.Errorf("Expected push of 0.1 up, got %v", got)
	}
}

func TestResolveAxis(t *testing.T) {
	wall := AABB{Min: rl.Vector3{X: 1, Y: 0, Z: -5}, Max: rl.Vector3{X: 2, Y: 3, Z: 5}}
	body := AABB{Min: rl.Vector3{X: 0.25, Y: 0, Z: -0.5}, Max: rl.Vector3{X: 1.25, Y: 2, Z: 0.5}}

	if got := body.ResolveAxis(wall, 0, 1); got != -0.25 {
		t.Errorf("Expected -0.25 moving +X into the wall, got %v", got)
	}
	if got := body.ResolveAxis(wall, 0, 0); got != 0 {
		t.Errorf("Expected 0 without travel, got %v", got)
	}
}

func TestTranslate(t *testing.T) {
	box := AABB{Max: rl.Vector3{X: 1, Y: 1, Z: 1}}.Translate(rl.Vector3{Y: 2})
	if box.Min.Y != 2 || box.Max.Y != 3 {
		t.Errorf("Expected Y range 2-3, got %v-%v", box.Min.Y, box.Max.Y)
	}
}
