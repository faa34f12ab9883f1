package components

import (
	"consoleroom/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CapsuleCollider is a vertical capsule: a segment of length 2*HalfHeight
// along world up, swept by Radius. It ignores the owner's rotation, which
// suits bodies with locked rotation such as the player.
type CapsuleCollider struct {
	engine.BaseComponent
	HalfHeight float32
	Radius     float32
	Offset     rl.Vector3
}

func NewCapsuleCollider(halfHeight, radius float32) *CapsuleCollider {
	return &CapsuleCollider{
		HalfHeight: halfHeight,
		Radius:     radius,
	}
}

func (c *CapsuleCollider) GetCenter() rl.Vector3 {
	return rl.Vector3Add(c.GetGameObject().WorldPosition(), c.Offset)
}

// Segment returns the bottom and top points of the core segment.
func (c *CapsuleCollider) Segment() (rl.Vector3, rl.Vector3) {
	center := c.GetCenter()
	a := center
	b := center
	a.Y -= c.HalfHeight
	b.Y += c.HalfHeight
	return a, b
}

// Bounds returns the full size of the capsule's bounding box.
func (c *CapsuleCollider) Bounds() rl.Vector3 {
	d := c.Radius * 2
	return rl.Vector3{X: d, Y: c.HalfHeight*2 + d, Z: d}
}
