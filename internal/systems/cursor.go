package systems

import (
	"consoleroom/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// GrabCursor locks the cursor on a left click and releases it on Escape.
// Both edges in one tick end unlocked.
func GrabCursor(in *input.State, cursor *input.CursorLock) {
	if in.MousePressed(rl.MouseButtonLeft) {
		cursor.Lock()
	}
	if in.KeyPressed(rl.KeyEscape) {
		cursor.Unlock()
	}
}
