package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Local axes. Forward is -Z, right is +X, up is +Y.
var (
	localForward = rl.Vector3{X: 0, Y: 0, Z: -1}
	localRight   = rl.Vector3{X: 1, Y: 0, Z: 0}
	localUp      = rl.Vector3{X: 0, Y: 1, Z: 0}
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Quaternion
	Scale    rl.Vector3
}

func NewTransform(x, y, z float32) Transform {
	return Transform{
		Position: rl.Vector3{X: x, Y: y, Z: z},
		Rotation: rl.QuaternionIdentity(),
		Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
	}
}

// LookingAt returns a copy of t rotated so that Forward points at target.
func (t Transform) LookingAt(target, up rl.Vector3) Transform {
	dir := rl.Vector3Subtract(target, t.Position)
	if rl.Vector3Length(dir) < 0.0001 {
		return t
	}
	back := rl.Vector3Normalize(rl.Vector3Negate(dir))
	right := rl.Vector3CrossProduct(up, back)
	if rl.Vector3Length(right) < 0.0001 {
		// up is parallel to the view direction
		right = localRight
	}
	right = rl.Vector3Normalize(right)
	newUp := rl.Vector3CrossProduct(back, right)

	basis := rl.Matrix{
		M0: right.X, M4: newUp.X, M8: back.X,
		M1: right.Y, M5: newUp.Y, M9: back.Y,
		M2: right.Z, M6: newUp.Z, M10: back.Z,
		M15: 1,
	}
	t.Rotation = rl.QuaternionNormalize(rl.QuaternionFromMatrix(basis))
	return t
}

func (t Transform) Forward() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(localForward, t.Rotation)
}

func (t Transform) Right() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(localRight, t.Rotation)
}

func (t Transform) Up() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(localUp, t.Rotation)
}

// Compose places child, expressed in t's local space, into t's parent
// space. Scale is treated per axis, which is exact while rotations and
// non-uniform scales are not mixed down the chain.
func (t Transform) Compose(child Transform) Transform {
	return Transform{
		Position: t.TransformPoint(child.Position),
		Rotation: rl.QuaternionMultiply(t.Rotation, child.Rotation),
		Scale:    rl.Vector3Multiply(t.Scale, child.Scale),
	}
}

// TransformPoint maps a local point into parent space.
func (t Transform) TransformPoint(p rl.Vector3) rl.Vector3 {
	scaled := rl.Vector3Multiply(p, t.Scale)
	return rl.Vector3Add(t.Position, rl.Vector3RotateByQuaternion(scaled, t.Rotation))
}

// Matrix builds the scale -> rotate -> translate matrix.
func (t Transform) Matrix() rl.Matrix {
	scale := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	rot := rl.QuaternionToMatrix(t.Rotation)
	trans := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(scale, rot), trans)
}
