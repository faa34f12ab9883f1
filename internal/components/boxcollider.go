package components

import (
	"consoleroom/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider is a solid oriented box following its owner's world
// transform. Size is the full edge length in local units; Offset moves the
// box center in the owner's local space.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

// NewBoxColliderHalfExtents builds a collider from half extents.
func NewBoxColliderHalfExtents(hx, hy, hz float32) *BoxCollider {
	return NewBoxCollider(rl.Vector3Scale(rl.Vector3{X: hx, Y: hy, Z: hz}, 2))
}

func (b *BoxCollider) world() engine.Transform {
	return b.GetGameObject().WorldTransform()
}

// GetCenter is Offset carried into world space.
func (b *BoxCollider) GetCenter() rl.Vector3 {
	return b.world().TransformPoint(b.Offset)
}

func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	return rl.Vector3Multiply(b.Size, b.world().Scale)
}

func (b *BoxCollider) GetRotation() rl.Quaternion {
	return b.world().Rotation
}
