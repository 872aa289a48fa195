package world

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// Vec is a YAML-friendly [x, y, z].
type Vec [3]float32

func (v Vec) Vector3() rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// RGBA is a YAML-friendly [r, g, b, a]. A zero alpha means opaque.
type RGBA [4]uint8

func (c RGBA) RGBA() rl.Color {
	a := c[3]
	if a == 0 {
		a = 255
	}
	return rl.NewColor(c[0], c[1], c[2], a)
}

type Block struct {
	Name   string `yaml:"name"`
	Center Vec    `yaml:"center"`
	Size   Vec    `yaml:"size"`
	Color  RGBA   `yaml:"color"`
}

type Level struct {
	Spawn  Vec     `yaml:"spawn"`
	Blocks []Block `yaml:"blocks"`
}

func (l Level) Validate() error {
	for i, b := range l.Blocks {
		if b.Size[0] <= 0 || b.Size[1] <= 0 || b.Size[2] <= 0 {
			return fmt.Errorf("world: block %d (%s): size must be positive, got %v", i, b.Name, b.Size)
		}
	}
	return nil
}

func LoadLevel(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("world: load %s: %w", path, err)
	}
	var l Level
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Level{}, fmt.Errorf("world: %s: %w", path, err)
	}
	if err := l.Validate(); err != nil {
		return Level{}, err
	}
	return l, nil
}

// DefaultLevel is a small course: a staircase of low steps, a wall, two
// platforms that need a double jump, and a tunnel that needs a crouch.
func DefaultLevel() Level {
	l := Level{
		Spawn: Vec{0, 0, 0},
		Blocks: []Block{
			{Name: "Floor", Center: Vec{0, -0.5, 0}, Size: Vec{40, 1, 40}, Color: RGBA{200, 200, 200, 255}},
			{Name: "Wall", Center: Vec{-6, 1.5, 4}, Size: Vec{1, 3, 8}, Color: RGBA{120, 120, 140, 255}},
			{Name: "PlatformLow", Center: Vec{6, 0.6, 6}, Size: Vec{3, 1.2, 3}, Color: RGBA{80, 160, 220, 255}},
			{Name: "PlatformHigh", Center: Vec{6, 1.5, 10}, Size: Vec{3, 3, 3}, Color: RGBA{60, 120, 200, 255}},
			{Name: "TunnelLeft", Center: Vec{-1.5, 0.7, -8}, Size: Vec{0.5, 1.4, 6}, Color: RGBA{170, 110, 80, 255}},
			{Name: "TunnelRight", Center: Vec{1.5, 0.7, -8}, Size: Vec{0.5, 1.4, 6}, Color: RGBA{170, 110, 80, 255}},
			{Name: "TunnelRoof", Center: Vec{0, 1.6, -8}, Size: Vec{3.5, 0.4, 6}, Color: RGBA{150, 90, 60, 255}},
		},
	}
	for i := 0; i < 5; i++ {
		rise := float32(i+1) * 0.25
		l.Blocks = append(l.Blocks, Block{
			Name:   fmt.Sprintf("Step_%d", i),
			Center: Vec{3, rise / 2, -2 - float32(i)},
			Size:   Vec{2, rise, 1},
			Color:  RGBA{220, 180, 90, 255},
		})
	}
	return l
}
