package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// plane holds n·p + d = 0 with n of unit length. Points with a positive
// distance lie on the inside.
type plane struct {
	n rl.Vector3
	d float32
}

func (p plane) distance(pt rl.Vector3) float32 {
	return rl.Vector3DotProduct(p.n, pt) + p.d
}

// Frustum is the view volume as six inward facing planes, paired per clip
// axis: left/right, bottom/top, near/far.
type Frustum [6]plane

// ExtractFrustum derives the culling planes for camera from its combined
// view-projection matrix.
func ExtractFrustum(camera rl.Camera3D, aspect, near, far float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraOrthographic {
		h := camera.Fovy / 2
		proj = rl.MatrixOrtho(-h*aspect, h*aspect, -h, h, near, far)
	} else {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, near, far)
	}
	m := rl.MatrixMultiply(view, proj)

	// Clip space rows; w is the last one
	rows := [4][4]float32{
		{m.M0, m.M4, m.M8, m.M12},
		{m.M1, m.M5, m.M9, m.M13},
		{m.M2, m.M6, m.M10, m.M14},
		{m.M3, m.M7, m.M11, m.M15},
	}
	w := rows[3]

	var f Frustum
	for axis := 0; axis < 3; axis++ {
		for side, sign := range [2]float32{1, -1} {
			r := rows[axis]
			f[axis*2+side] = newPlane(
				w[0]+sign*r[0],
				w[1]+sign*r[1],
				w[2]+sign*r[2],
				w[3]+sign*r[3],
			)
		}
	}
	return f
}

func newPlane(a, b, c, d float32) plane {
	n := rl.Vector3{X: a, Y: b, Z: c}
	l := rl.Vector3Length(n)
	if l == 0 {
		return plane{n: n, d: d}
	}
	return plane{n: rl.Vector3Scale(n, 1/l), d: d / l}
}

// ContainsSphere reports whether any part of the sphere is inside.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f {
		if p.distance(center) < -radius {
			return false
		}
	}
	return true
}

func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	return f.ContainsSphere(point, 0)
}
