package assets

import (
	"fmt"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/kamstrup/intmap"
)

// Handle identifies a material in a Manager's table. Zero is never issued.
type Handle uint32

// Material defines surface properties for rendering
type Material struct {
	Name      string
	BaseColor rl.Color
	// Texture is relative to the asset root. Empty means untextured.
	Texture   string
	Emissive  rl.Vector3
	Roughness float32
	Metallic  float32
	Unlit     bool
}

// Color name mapping for config-driven colours
var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Pink":      rl.Pink,
	"Maroon":    rl.Maroon,
	"Lime":      rl.Lime,
	"SkyBlue":   rl.SkyBlue,
	"DarkBlue":  rl.DarkBlue,
}

// LookupColor returns a raylib color from a name string
func LookupColor(name string) (rl.Color, bool) {
	c, ok := colorByName[name]
	return c, ok
}

// Manager owns the texture cache and the material table. It is created once
// at startup and passed to whatever needs it.
type Manager struct {
	root      string
	load      func(path string) rl.Texture2D
	unload    func(tex rl.Texture2D)
	textures  map[string]rl.Texture2D
	materials *intmap.Map[Handle, *Material]
	next      Handle
}

type Option func(*Manager)

// WithTextureLoader replaces the raylib texture functions. Tests use it to run
// without a GL context.
func WithTextureLoader(load func(string) rl.Texture2D, unload func(rl.Texture2D)) Option {
	return func(m *Manager) {
		m.load = load
		m.unload = unload
	}
}

func NewManager(root string, opts ...Option) *Manager {
	m := &Manager{
		root:      root,
		load:      rl.LoadTexture,
		unload:    rl.UnloadTexture,
		textures:  make(map[string]rl.Texture2D),
		materials: intmap.New[Handle, *Material](32),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Root() string {
	return m.root
}

// Path resolves rel against the asset root.
func (m *Manager) Path(rel string) string {
	return filepath.Join(m.root, filepath.FromSlash(rel))
}

// Texture returns the cached texture for rel, loading it on first use. The
// bool is false when the file could not be loaded; the failure is cached too.
func (m *Manager) Texture(rel string) (rl.Texture2D, bool) {
	if tex, exists := m.textures[rel]; exists {
		return tex, tex.ID != 0
	}
	tex := m.load(m.Path(rel))
	m.textures[rel] = tex
	return tex, tex.ID != 0
}

// AddMaterial stores mat under a fresh handle.
func (m *Manager) AddMaterial(mat *Material) Handle {
	m.next++
	m.materials.Put(m.next, mat)
	return m.next
}

func (m *Manager) Material(h Handle) (*Material, bool) {
	return m.materials.Get(h)
}

// MustMaterial panics when h is not in the table. Materials are loaded once
// at startup and never freed, so a miss is a programming error.
func (m *Manager) MustMaterial(h Handle) *Material {
	mat, ok := m.materials.Get(h)
	if !ok {
		panic(fmt.Sprintf("assets: material %d not found", h))
	}
	return mat
}

// RemoveMaterial drops h from the table.
func (m *Manager) RemoveMaterial(h Handle) {
	m.materials.Del(h)
}

func (m *Manager) MaterialCount() int {
	return m.materials.Len()
}

func (m *Manager) Unload() {
	for _, tex := range m.textures {
		if tex.ID != 0 {
			m.unload(tex)
		}
	}
	m.textures = make(map[string]rl.Texture2D)
	m.materials.Clear()
}
