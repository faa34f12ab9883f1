package physics

import (
	"consoleroom/internal/components"
	"consoleroom/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// Raycast returns the closest box collider hit along the ray. Capsules are
// not hit, and ignore (usually the caster) is skipped.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, ignore *engine.GameObject) (RaycastHit, bool) {
	direction = rl.Vector3Normalize(direction)
	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	for _, list := range [][]*engine.GameObject{p.Objects, p.Statics} {
		for _, obj := range list {
			if obj == ignore || !obj.Active {
				continue
			}
			box := engine.GetComponent[*components.BoxCollider](obj)
			if box == nil {
				continue
			}
			if hitInfo, ok := RayOBB(origin, direction, BoxOBB(box), maxDistance); ok && hitInfo.Distance < closestHit.Distance {
				closestHit = hitInfo
				closestHit.GameObject = obj
				hit = true
			}
		}
	}

	return closestHit, hit
}

// RayOBB intersects a ray with unit direction against o using the slab test
// in the box's own frame. A ray starting inside reports the exit face.
func RayOBB(origin, direction rl.Vector3, o OBB, maxDistance float32) (RaycastHit, bool) {
	local := o.toLocal(origin)
	half := o.half()

	tmin, tmax := float32(-1e30), float32(1e30)
	minAxis, maxAxis := 0, 0
	var minSign, maxSign float32 = -1, 1

	for i := 0; i < 3; i++ {
		off := local[i]
		d := rl.Vector3DotProduct(direction, o.Axes[i])

		if absf(d) < 1e-8 {
			// parallel to this slab
			if off < -half[i] || off > half[i] {
				return RaycastHit{}, false
			}
			continue
		}

		t1 := (-half[i] - off) / d
		t2 := (half[i] - off) / d
		s1, s2 := float32(-1), float32(1)
		if t1 > t2 {
			t1, t2 = t2, t1
			s1, s2 = s2, s1
		}
		if t1 > tmin {
			tmin, minAxis, minSign = t1, i, s1
		}
		if t2 < tmax {
			tmax, maxAxis, maxSign = t2, i, s2
		}
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	t, axis, sign := tmin, minAxis, minSign
	if t < 0 {
		t, axis, sign = tmax, maxAxis, maxSign
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	return RaycastHit{
		Point:    rl.Vector3Add(origin, rl.Vector3Scale(direction, t)),
		Normal:   rl.Vector3Scale(o.Axes[axis], sign),
		Distance: t,
	}, true
}
