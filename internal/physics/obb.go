package physics

import (
	"math"

	"consoleroom/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB is an oriented box: a center, half extents along its own axes, and
// the three unit axes in world space.
type OBB struct {
	Center   rl.Vector3
	HalfSize rl.Vector3
	Axes     [3]rl.Vector3
}

var worldAxes = [3]rl.Vector3{{X: 1}, {Y: 1}, {Z: 1}}

// NewOBB builds a box from its center, full size and orientation.
func NewOBB(center, size rl.Vector3, rotation rl.Quaternion) OBB {
	m := rl.QuaternionToMatrix(rotation)

	// Columns of the rotation matrix are the rotated local axes
	return OBB{
		Center:   center,
		HalfSize: rl.Vector3Scale(size, 0.5),
		Axes: [3]rl.Vector3{
			rl.Vector3Normalize(rl.Vector3{X: m.M0, Y: m.M1, Z: m.M2}),
			rl.Vector3Normalize(rl.Vector3{X: m.M4, Y: m.M5, Z: m.M6}),
			rl.Vector3Normalize(rl.Vector3{X: m.M8, Y: m.M9, Z: m.M10}),
		},
	}
}

// NewAABBasOBB creates an axis-aligned OBB (no rotation)
func NewAABBasOBB(center, size rl.Vector3) OBB {
	return OBB{Center: center, HalfSize: rl.Vector3Scale(size, 0.5), Axes: worldAxes}
}

// BoxOBB builds the world space OBB of a box collider.
func BoxOBB(b *components.BoxCollider) OBB {
	return NewOBB(b.GetCenter(), b.GetWorldSize(), b.GetRotation())
}

func (o OBB) half() [3]float32 {
	return [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z}
}

// radius is the half length of o projected onto a unit axis.
func (o OBB) radius(axis rl.Vector3) float32 {
	h := o.half()
	var r float32
	for i := range o.Axes {
		r += h[i] * absf(rl.Vector3DotProduct(o.Axes[i], axis))
	}
	return r
}

// toLocal expresses a world point in o's frame, relative to its center.
func (o OBB) toLocal(p rl.Vector3) [3]float32 {
	rel := rl.Vector3Subtract(p, o.Center)
	return [3]float32{
		rl.Vector3DotProduct(rel, o.Axes[0]),
		rl.Vector3DotProduct(rel, o.Axes[1]),
		rl.Vector3DotProduct(rel, o.Axes[2]),
	}
}

func (o OBB) fromLocal(l [3]float32) rl.Vector3 {
	p := o.Center
	for i := range o.Axes {
		p = rl.Vector3Add(p, rl.Vector3Scale(o.Axes[i], l[i]))
	}
	return p
}

// separatingAxes lists the 15 candidate axes of the separating axis test:
// both sets of face normals and the edge cross products. Degenerate crosses
// from parallel edges are left out.
func separatingAxes(a, b OBB) []rl.Vector3 {
	axes := make([]rl.Vector3, 0, 15)
	axes = append(axes, a.Axes[:]...)
	axes = append(axes, b.Axes[:]...)
	for i := range a.Axes {
		for j := range b.Axes {
			c := rl.Vector3CrossProduct(a.Axes[i], b.Axes[j])
			if l := rl.Vector3Length(c); l > 0.0001 {
				axes = append(axes, rl.Vector3Scale(c, 1/l))
			}
		}
	}
	return axes
}

// overlap runs the separating axis test. When the boxes overlap it returns
// the shallowest penetration and the unit axis pointing from b towards a.
func (a OBB) overlap(b OBB) (depth float32, axis rl.Vector3, ok bool) {
	t := rl.Vector3Subtract(b.Center, a.Center)
	depth = math.MaxFloat32

	for _, ax := range separatingAxes(a, b) {
		dist := rl.Vector3DotProduct(t, ax)
		pen := a.radius(ax) + b.radius(ax) - absf(dist)
		if pen < 0 {
			return 0, rl.Vector3{}, false
		}
		if pen < depth {
			depth = pen
			if dist < 0 {
				axis = ax
			} else {
				axis = rl.Vector3Negate(ax)
			}
		}
	}
	return depth, axis, true
}

// IntersectsOBB tests if two OBBs intersect using the Separating Axis Theorem
func (a OBB) IntersectsOBB(b OBB) bool {
	_, _, ok := a.overlap(b)
	return ok
}

// ResolveOBB returns the minimum translation that moves a out of b, or zero
// when they are apart.
func (a OBB) ResolveOBB(b OBB) rl.Vector3 {
	depth, axis, ok := a.overlap(b)
	if !ok {
		return rl.Vector3Zero()
	}
	return rl.Vector3Scale(axis, depth)
}

// ClosestPointOnOBB clamps point into the box. Points inside are returned
// unchanged.
func ClosestPointOnOBB(o OBB, point rl.Vector3) rl.Vector3 {
	l := o.toLocal(point)
	h := o.half()
	for i := range l {
		l[i] = clampf(l[i], -h[i], h[i])
	}
	return o.fromLocal(l)
}

// Bounds returns the axis aligned box enclosing o.
func (o OBB) Bounds() AABB {
	ext := rl.Vector3{X: o.radius(worldAxes[0]), Y: o.radius(worldAxes[1]), Z: o.radius(worldAxes[2])}
	return AABB{
		Min: rl.Vector3Subtract(o.Center, ext),
		Max: rl.Vector3Add(o.Center, ext),
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func clampf(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}
