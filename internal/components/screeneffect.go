package components

import (
	"consoleroom/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ScreenEffect drives a pulsing emissive colour on the material of the
// MeshRenderer next to it.
type ScreenEffect struct {
	engine.BaseComponent
	InitialEmissive rl.Vector3
	// TimeElapsed is the accumulated phase. It never decreases.
	TimeElapsed float32
}

func NewScreenEffect(initial rl.Vector3) *ScreenEffect {
	return &ScreenEffect{InitialEmissive: initial}
}
