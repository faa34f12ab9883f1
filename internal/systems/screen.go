package systems

import (
	"math"

	"consoleroom/internal/assets"
	"consoleroom/internal/components"
	"consoleroom/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UpdateScreenEffects advances every screen's phase and sets its material's
// emissive colour to InitialEmissive * (sin(phase)/2 + 1/2) * PulseGain.
// A screen whose material is gone from the table panics.
func UpdateScreenEffects(scene *engine.Scene, materials *assets.Manager, s Settings, dt float32) {
	if dt < 0 {
		dt = 0
	}
	engine.Each(scene, func(g *engine.GameObject, effect *components.ScreenEffect) {
		mr := engine.GetComponent[*components.MeshRenderer](g)
		if mr == nil {
			return
		}
		mat := materials.MustMaterial(mr.Material)

		phase := effect.TimeElapsed + dt*s.PhaseRate
		effect.TimeElapsed = phase
		mat.Emissive = rl.Vector3Scale(effect.InitialEmissive, PulseLevel(phase)*s.PulseGain)
	})
}

// PulseLevel maps a phase to [0, 1].
func PulseLevel(phase float32) float32 {
	return float32(math.Sin(float64(phase)))*0.5 + 0.5
}
