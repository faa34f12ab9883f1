package components

import (
	"math"

	"consoleroom/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PointLight radiates from its owner's world position. Intensity is in
// the same loose units as the room layout (lumens-ish); Range is where the
// falloff reaches zero.
type PointLight struct {
	engine.BaseComponent
	Color     rl.Color
	Intensity float32
	Range     float32
}

func NewPointLight(intensity float32) *PointLight {
	return &PointLight{Color: rl.White, Intensity: intensity, Range: 20}
}

func (p *PointLight) GetPosition() rl.Vector3 {
	if !p.Attached() {
		return rl.Vector3Zero()
	}
	return p.GetGameObject().WorldPosition()
}

// GetColorFloat is Color in 0..1 with alpha dropped.
func (p *PointLight) GetColorFloat() rl.Vector3 {
	c := rl.ColorNormalize(p.Color)
	return rl.Vector3{X: c.X, Y: c.Y, Z: c.Z}
}

// Attenuation returns the light's strength at distance d: inverse square,
// faded smoothly to zero at Range.
func (p *PointLight) Attenuation(d float32) float32 {
	if d >= p.Range {
		return 0
	}
	fade := 1 - (d*d)/(p.Range*p.Range)
	return p.Intensity / (4 * math.Pi * (1 + d*d)) * fade * fade
}
