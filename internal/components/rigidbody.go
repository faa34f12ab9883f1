package components

import (
	"consoleroom/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rigidbody makes its owner a dynamic body in the physics world. Collisions
// only ever translate it; rotation belongs to whoever drives the transform.
type Rigidbody struct {
	engine.BaseComponent
	Velocity   rl.Vector3
	UseGravity bool
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{UseGravity: true}
}
