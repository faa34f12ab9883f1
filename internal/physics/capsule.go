package physics

import (
	"consoleroom/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Capsule is a segment A-B swept by Radius.
type Capsule struct {
	A, B   rl.Vector3
	Radius float32
}

// CapsuleShape builds the world space capsule of a collider.
func CapsuleShape(c *components.CapsuleCollider) Capsule {
	a, b := c.Segment()
	return Capsule{A: a, B: b, Radius: c.Radius}
}

func (c Capsule) Center() rl.Vector3 {
	return rl.Vector3Lerp(c.A, c.B, 0.5)
}

func (c Capsule) Bounds() AABB {
	return NewAABBFromPoints(c.A, c.B).Expand(c.Radius)
}

// ClosestPointOnSegment returns the point of segment a-b nearest to p.
func ClosestPointOnSegment(a, b, p rl.Vector3) rl.Vector3 {
	ab := rl.Vector3Subtract(b, a)
	lenSq := rl.Vector3DotProduct(ab, ab)
	if lenSq < 1e-8 {
		return a
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(p, a), ab) / lenSq
	return rl.Vector3Add(a, rl.Vector3Scale(ab, clampf(t, 0, 1)))
}

// closestSegmentOBB alternates between the two closest-point queries. A few
// rounds converge for a convex box.
func closestSegmentOBB(a, b rl.Vector3, o OBB) (onSegment, onBox rl.Vector3) {
	onSegment = ClosestPointOnSegment(a, b, o.Center)
	for i := 0; i < 4; i++ {
		onBox = ClosestPointOnOBB(o, onSegment)
		next := ClosestPointOnSegment(a, b, onBox)
		if rl.Vector3DistanceSqr(next, onSegment) < 1e-10 {
			onSegment = next
			break
		}
		onSegment = next
	}
	onBox = ClosestPointOnOBB(o, onSegment)
	return onSegment, onBox
}

// ResolveOBB returns the minimum translation vector to push the capsule out
// of o. Returns zero vector if no overlap.
func (c Capsule) ResolveOBB(o OBB) rl.Vector3 {
	if !c.Bounds().Intersects(o.Bounds()) {
		return rl.Vector3Zero()
	}

	onSegment, onBox := closestSegmentOBB(c.A, c.B, o)
	d := rl.Vector3Subtract(onSegment, onBox)
	dist := rl.Vector3Length(d)
	if dist >= c.Radius {
		return rl.Vector3Zero()
	}
	if dist > 0.0001 {
		return rl.Vector3Scale(d, (c.Radius-dist)/dist)
	}

	// Core segment is inside the box, fall back to the capsule's bounding box
	size := rl.Vector3Subtract(c.Bounds().Max, c.Bounds().Min)
	return NewAABBasOBB(c.Center(), size).ResolveOBB(o)
}
