package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3Scale(size, 0.5)
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

func (a AABB) Translate(d rl.Vector3) AABB {
	return AABB{Min: rl.Vector3Add(a.Min, d), Max: rl.Vector3Add(a.Max, d)}
}

// Intersects reports strict overlap. Boxes that only touch do not intersect,
// so a body resting on a floor is not pushed every tick.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y &&
		a.Min.Z < b.Max.Z && a.Max.Z > b.Min.Z
}

// Resolve returns the minimum translation vector to push 'a' out of 'b'.
// Returns zero vector if no overlap.
func (a AABB) Resolve(b AABB) rl.Vector3 {
	if !a.Intersects(b) {
		return rl.Vector3Zero()
	}

	candidates := [6]rl.Vector3{
		{X: b.Max.X - a.Min.X},
		{X: -(a.Max.X - b.Min.X)},
		{Y: b.Max.Y - a.Min.Y},
		{Y: -(a.Max.Y - b.Min.Y)},
		{Z: b.Max.Z - a.Min.Z},
		{Z: -(a.Max.Z - b.Min.Z)},
	}
	best := candidates[0]
	bestDepth := rl.Vector3Length(best)
	for _, c := range candidates[1:] {
		if d := rl.Vector3Length(c); d < bestDepth {
			best, bestDepth = c, d
		}
	}
	return best
}

// ResolveAxis pushes 'a' out of 'b' along one axis only, against the
// direction of travel. axis is 0 for X, 1 for Y, 2 for Z.
func (a AABB) ResolveAxis(b AABB, axis int, travel float32) float32 {
	if !a.Intersects(b) || travel == 0 {
		return 0
	}
	lo, hi := component(a.Min, axis), component(a.Max, axis)
	blo, bhi := component(b.Min, axis), component(b.Max, axis)
	if travel > 0 {
		return blo - hi
	}
	return bhi - lo
}

func component(v rl.Vector3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}
