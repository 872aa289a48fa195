// Package world holds the static level the character walks around in.
package world

import (
	"fmt"

	"thirdperson/internal/components"
	"thirdperson/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const SolidTag = "solid"

type World struct {
	Scene      *engine.Scene
	collidable []*engine.GameObject
}

func New() *World {
	w := &World{
		Scene: engine.NewScene("Main"),
	}
	w.Scene.World = w
	return w
}

// Build adds one solid box per block.
func (w *World) Build(level Level) {
	for i, b := range level.Blocks {
		name := b.Name
		if name == "" {
			name = fmt.Sprintf("Block_%d", i)
		}
		obj := engine.NewGameObject(name)
		obj.Tags = []string{SolidTag}
		obj.Transform.Position = b.Center.Vector3()
		obj.AddComponent(components.NewBoxCollider(b.Size.Vector3()))
		obj.AddComponent(components.NewBoxRenderer(b.Color.RGBA()))
		w.Add(obj)
	}
}

// Add puts obj in the scene. Objects with a BoxCollider become collidable.
func (w *World) Add(obj *engine.GameObject) {
	w.Scene.AddGameObject(obj)
	if engine.GetComponent[*components.BoxCollider](obj) != nil {
		w.collidable = append(w.collidable, obj)
	}
}

func (w *World) GetCollidableObjects() []*engine.GameObject {
	return w.collidable
}

func (w *World) Start() {
	w.Scene.Start()
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Draw renders the level. Call inside BeginMode3D.
func (w *World) Draw() {
	rl.DrawGrid(40, 1)
	w.Scene.Draw()
}
