package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pattern returns the color of pixel (x, y) in a size by size tile. Every
// pattern wraps at the tile edge so textures repeat without seams.
type Pattern func(x, y, size int) rl.Color

var patterns = map[string]Pattern{
	"floor_plating.png":    floorPlating,
	"wall_paneling.png":    wallPaneling,
	"console_casing.png":   consoleCasing,
	"screen_interface.png": screenInterface,
	"space_view.png":       spaceView,
}

// PatternFor looks a pattern up by texture file name.
func PatternFor(name string) (Pattern, bool) {
	p, ok := patterns[filepath.Base(name)]
	return p, ok
}

// MinTextureSize is the smallest tile the patterns still read at.
const MinTextureSize = 16

// GenerateImage rasterizes p into a new raylib image. The caller unloads it.
func GenerateImage(p Pattern, size int) *rl.Image {
	img := rl.GenImageColor(size, size, rl.Black)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			rl.ImageDrawPixel(img, int32(x), int32(y), p(x, y, size))
		}
	}
	return img
}

// WriteTextures generates every named texture into dir. Existing files are
// skipped unless force is set.
func WriteTextures(dir string, names []string, size int, force bool) (written, skipped []string, err error) {
	if size < MinTextureSize {
		return nil, nil, fmt.Errorf("texture size %d below minimum %d", size, MinTextureSize)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", dir, err)
	}

	var errs []error
	for _, name := range names {
		p, ok := PatternFor(name)
		if !ok {
			errs = append(errs, fmt.Errorf("no pattern for %s", name))
			continue
		}
		path := filepath.Join(dir, filepath.Base(name))
		if _, statErr := os.Stat(path); statErr == nil && !force {
			skipped = append(skipped, path)
			continue
		}

		img := GenerateImage(p, size)
		ok = rl.ExportImage(*img, path)
		rl.UnloadImage(img)
		if !ok {
			errs = append(errs, fmt.Errorf("export %s failed", path))
			continue
		}
		written = append(written, path)
	}
	return written, skipped, errors.Join(errs...)
}

// hash2 is a small integer hash mapped to [0,1).
func hash2(x, y, seed int) float32 {
	h := uint32(x)*374761393 + uint32(y)*668265263 + uint32(seed)*2246822519
	h = (h ^ (h >> 13)) * 1274126177
	h ^= h >> 16
	return float32(h&0xFFFFFF) / float32(0x1000000)
}

// valueNoise is bilinear value noise over a grid of cells per side, wrapped
// so the tile repeats.
func valueNoise(x, y, size, cells, seed int) float32 {
	cell := float32(size) / float32(cells)
	fx, fy := float32(x)/cell, float32(y)/cell
	ix, iy := int(fx), int(fy)
	tx, ty := smooth(fx-float32(ix)), smooth(fy-float32(iy))

	x0, y0 := ix%cells, iy%cells
	x1, y1 := (ix+1)%cells, (iy+1)%cells

	top := lerp(hash2(x0, y0, seed), hash2(x1, y0, seed), tx)
	bottom := lerp(hash2(x0, y1, seed), hash2(x1, y1, seed), tx)
	return lerp(top, bottom, ty)
}

func smooth(t float32) float32 { return t * t * (3 - 2*t) }

func lerp(a, b, t float32) float32 { return a + (b-a)*t }

func shade(c rl.Color, k float32) rl.Color {
	ch := func(v uint8) uint8 {
		f := float32(v) * k
		if f > 255 {
			return 255
		}
		if f < 0 {
			return 0
		}
		return uint8(f)
	}
	return rl.Color{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: 255}
}

func mix(a, b rl.Color, t float32) rl.Color {
	return rl.Color{
		R: uint8(lerp(float32(a.R), float32(b.R), t)),
		G: uint8(lerp(float32(a.G), float32(b.G), t)),
		B: uint8(lerp(float32(a.B), float32(b.B), t)),
		A: 255,
	}
}

// Dark metal plates with thin cyan guide lines.
func floorPlating(x, y, size int) rl.Color {
	plate := size / 4
	px, py := x%plate, y%plate

	if px < 2 || py < 2 {
		return rl.Color{R: 18, G: 19, B: 23, A: 255}
	}
	if py == plate/2 && px > plate/4 && px < plate*3/4 {
		return rl.Color{R: 0, G: 170, B: 190, A: 255}
	}
	base := rl.Color{R: 40, G: 42, B: 48, A: 255}
	return shade(base, 0.85+0.3*valueNoise(x, y, size, 16, 1))
}

// Tall panels with seams, rivets near the corners and a faint light strip.
func wallPaneling(x, y, size int) rl.Color {
	panel := size / 2
	px, py := x%panel, y%panel

	if px < 2 || py < 2 {
		return rl.Color{R: 22, G: 24, B: 28, A: 255}
	}
	inset := panel / 10
	for _, cx := range []int{inset, panel - inset} {
		for _, cy := range []int{inset, panel - inset} {
			if abs(px-cx) <= 1 && abs(py-cy) <= 1 {
				return rl.Color{R: 110, G: 115, B: 125, A: 255}
			}
		}
	}
	if abs(px-panel/2) <= 1 {
		return rl.Color{R: 30, G: 80, B: 140, A: 255}
	}
	base := rl.Color{R: 52, G: 56, B: 64, A: 255}
	return shade(base, 0.9+0.2*valueNoise(x, y, size, 8, 2))
}

// Worn grey metal.
func consoleCasing(x, y, size int) rl.Color {
	base := rl.Color{R: 72, G: 72, B: 76, A: 255}
	n := 0.6*valueNoise(x, y, size, 32, 3) + 0.4*valueNoise(x, y, size, 8, 4)
	c := shade(base, 0.8+0.4*n)
	if hash2(x, y, 5) > 0.995 {
		c = shade(c, 1.4)
	}
	return c
}

// Blue grid with bars of glowing readout.
func screenInterface(x, y, size int) rl.Color {
	grid := max(size/16, 2)
	row := max(size/32, 1)

	if (y/row)%4 == 1 {
		length := int(hash2(y/row, 0, 6)*float32(size)*0.8) + size/10
		if x%(size/2) < length%(size/2) {
			return rl.Color{R: 60, G: 170, B: 255, A: 255}
		}
	}
	if x%grid == 0 || y%grid == 0 {
		return rl.Color{R: 12, G: 45, B: 95, A: 255}
	}
	return rl.Color{R: 4, G: 14, B: 38, A: 255}
}

// Star field over a purple nebula.
func spaceView(x, y, size int) rl.Color {
	if s := hash2(x, y, 7); s > 0.996 {
		return shade(rl.White, 0.6+(s-0.996)*100)
	}
	n := valueNoise(x, y, size, 6, 8)*0.7 + valueNoise(x, y, size, 24, 9)*0.3
	n = n * n
	space := rl.Color{R: 2, G: 2, B: 8, A: 255}
	nebula := rl.Color{R: 90, G: 40, B: 140, A: 255}
	return mix(space, nebula, n*0.8)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
