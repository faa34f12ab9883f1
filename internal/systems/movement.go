package systems

import (
	"consoleroom/internal/components"
	"consoleroom/internal/engine"
	"consoleroom/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var worldUp = rl.Vector3{X: 0, Y: 1, Z: 0}

// MovePlayer steers the player while the cursor is locked. Held WASD keys
// set a horizontal velocity of MoveSpeed relative to the player's facing,
// and the tick's mouse motion yaws about world up, then pitches about the
// player's own right axis. With the cursor free the player is held in place
// horizontally; gravity still applies. Without a player it does nothing.
func MovePlayer(scene *engine.Scene, in *input.State, cursor *input.CursorLock, s Settings, dt float32) {
	player, _, err := engine.Single[*components.Player](scene)
	if err != nil {
		return
	}
	rb := engine.GetComponent[*components.Rigidbody](player)

	if !cursor.Locked() {
		if rb != nil {
			rb.Velocity.X, rb.Velocity.Z = 0, 0
		}
		return
	}

	if rb != nil {
		rb.Velocity = rl.Vector3Scale(moveDirection(player.Transform, in), s.MoveSpeed)
	}

	delta := in.MouseDelta()
	player.Transform.Rotation = look(player.Transform.Rotation, delta, s.LookSensitivity*dt)
}

// moveDirection returns the unit horizontal direction of the held keys, or
// zero when nothing is held or the keys cancel out.
func moveDirection(t engine.Transform, in *input.State) rl.Vector3 {
	forward := t.Forward()
	right := t.Right()

	var dir rl.Vector3
	if in.KeyDown(rl.KeyW) {
		dir = rl.Vector3Add(dir, forward)
	}
	if in.KeyDown(rl.KeyS) {
		dir = rl.Vector3Subtract(dir, forward)
	}
	if in.KeyDown(rl.KeyA) {
		dir = rl.Vector3Subtract(dir, right)
	}
	if in.KeyDown(rl.KeyD) {
		dir = rl.Vector3Add(dir, right)
	}
	dir.Y = 0
	return normalizeOrZero(dir)
}

func normalizeOrZero(v rl.Vector3) rl.Vector3 {
	if rl.Vector3Length(v) < 1e-6 {
		return rl.Vector3Zero()
	}
	return rl.Vector3Normalize(v)
}

// look applies yaw in world space and pitch in local space. scale is the
// sensitivity already multiplied by the frame time.
func look(rot rl.Quaternion, delta rl.Vector2, scale float32) rl.Quaternion {
	if delta.X == 0 && delta.Y == 0 {
		return rot
	}
	yaw := rl.QuaternionFromAxisAngle(worldUp, -delta.X*scale)
	pitch := rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, -delta.Y*scale)
	rot = rl.QuaternionMultiply(yaw, rot)
	rot = rl.QuaternionMultiply(rot, pitch)
	return rl.QuaternionNormalize(rot)
}
