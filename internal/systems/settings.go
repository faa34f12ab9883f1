package systems

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Settings are the tuning constants of the interaction loop.
type Settings struct {
	MoveSpeed       float32 // units per second
	LookSensitivity float32 // radians per mouse unit per second
	InteractRange   float32
	InteractKey     int32
	PhaseRate       float32 // screen pulse phase advance per second
	PulseGain       float32
	Highlight       rl.Color
}

func DefaultSettings() Settings {
	return Settings{
		MoveSpeed:       5.0,
		LookSensitivity: 0.1,
		InteractRange:   2.0,
		InteractKey:     rl.KeyE,
		PhaseRate:       2.0,
		PulseGain:       2.0,
		Highlight:       rl.Color{R: 255, G: 0, B: 0, A: 255},
	}
}
