package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// NewAABBFromPoints creates the smallest AABB holding every point.
func NewAABBFromPoints(first rl.Vector3, rest ...rl.Vector3) AABB {
	box := AABB{Min: first, Max: first}
	for _, p := range rest {
		box.Min = rl.Vector3Min(box.Min, p)
		box.Max = rl.Vector3Max(box.Max, p)
	}
	return box
}

// Expand grows the box by d on every side.
func (a AABB) Expand(d float32) AABB {
	off := rl.Vector3{X: d, Y: d, Z: d}
	return AABB{Min: rl.Vector3Subtract(a.Min, off), Max: rl.Vector3Add(a.Max, off)}
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}
