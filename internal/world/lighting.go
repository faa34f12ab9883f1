package world

import (
	"consoleroom/internal/assets"
	"consoleroom/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// Ambient is the light level of a surface no lamp reaches.
	Ambient = float32(0.2)
	// EmissiveScale maps material emissive values onto the tint.
	EmissiveScale = float32(0.5)
)

// Shade computes the tint for a surface at pos. Lights are summed and
// compressed so the result stays within [Ambient, 1). Unlit materials skip
// the lights. Emissive is added on top and the result is clamped.
func Shade(mat *assets.Material, pos rl.Vector3, lights []*components.PointLight) rl.Color {
	base := rl.ColorNormalize(mat.BaseColor)

	lit := rl.Vector3{X: 1, Y: 1, Z: 1}
	if !mat.Unlit {
		var sum rl.Vector3
		for _, l := range lights {
			a := l.Attenuation(rl.Vector3Distance(pos, l.GetPosition()))
			sum = rl.Vector3Add(sum, rl.Vector3Scale(l.GetColorFloat(), a))
		}
		// smoother surfaces catch a little more light, metals a little less
		gain := 1 + (1-mat.Roughness)*0.15 - mat.Metallic*0.5
		lit = rl.Vector3{
			X: compress(sum.X * gain),
			Y: compress(sum.Y * gain),
			Z: compress(sum.Z * gain),
		}
	}

	out := rl.Vector4{
		X: clamp01(base.X*lit.X + mat.Emissive.X*EmissiveScale),
		Y: clamp01(base.Y*lit.Y + mat.Emissive.Y*EmissiveScale),
		Z: clamp01(base.Z*lit.Z + mat.Emissive.Z*EmissiveScale),
		W: base.W,
	}
	return rl.ColorFromNormalized(out)
}

func compress(v float32) float32 {
	if v < 0 {
		v = 0
	}
	return Ambient + (1-Ambient)*v/(1+v)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
