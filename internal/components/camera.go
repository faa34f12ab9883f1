package components

import (
	"consoleroom/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera renders the room from its owner's point of view. Only the one
// marked IsMain is used.
type Camera struct {
	engine.BaseComponent
	FOV        float32 // vertical, degrees
	Near, Far  float32
	Projection rl.CameraProjection
	IsMain     bool
	// EyeOffset is added to the owner's world position.
	EyeOffset rl.Vector3
}

func NewCamera() *Camera {
	return &Camera{FOV: 45, Near: 0.1, Far: 1000, Projection: rl.CameraPerspective}
}

// GetRaylibCamera looks along the owner's world forward, so yaw and pitch
// applied to the transform show up directly in the view. A detached camera
// yields the zero value.
func (c *Camera) GetRaylibCamera() rl.Camera3D {
	var cam rl.Camera3D
	if !c.Attached() {
		return cam
	}

	wt := c.GetGameObject().WorldTransform()
	cam.Position = rl.Vector3Add(wt.Position, c.EyeOffset)
	cam.Target = rl.Vector3Add(cam.Position, wt.Forward())
	cam.Up = wt.Up()
	cam.Fovy = c.FOV
	cam.Projection = c.Projection
	return cam
}
