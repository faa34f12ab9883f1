package assets

import (
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTextures struct {
	loaded   []string
	unloaded int
}

func (f *fakeTextures) load(path string) rl.Texture2D {
	f.loaded = append(f.loaded, path)
	if filepath.Base(path) == "missing.png" {
		return rl.Texture2D{}
	}
	return rl.Texture2D{ID: uint32(len(f.loaded)), Width: 64, Height: 64}
}

func (f *fakeTextures) unload(rl.Texture2D) {
	f.unloaded++
}

func newTestManager() (*Manager, *fakeTextures) {
	f := &fakeTextures{}
	return NewManager("assets", WithTextureLoader(f.load, f.unload)), f
}

func TestTextureCached(t *testing.T) {
	m, f := newTestManager()

	tex, ok := m.Texture("textures/floor_plating.png")
	require.True(t, ok)
	again, _ := m.Texture("textures/floor_plating.png")

	assert.Equal(t, tex, again)
	assert.Equal(t, []string{filepath.Join("assets", "textures", "floor_plating.png")}, f.loaded)
}

func TestTextureMissing(t *testing.T) {
	m, f := newTestManager()

	_, ok := m.Texture("missing.png")
	assert.False(t, ok)
	_, ok = m.Texture("missing.png")
	assert.False(t, ok)
	assert.Len(t, f.loaded, 1, "failed loads are cached")
}

func TestMaterialTable(t *testing.T) {
	m, _ := newTestManager()

	a := m.AddMaterial(&Material{Name: "a"})
	b := m.AddMaterial(&Material{Name: "b"})

	assert.NotZero(t, a)
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, m.MaterialCount())

	mat, ok := m.Material(b)
	require.True(t, ok)
	assert.Equal(t, "b", mat.Name)

	m.RemoveMaterial(a)
	_, ok = m.Material(a)
	assert.False(t, ok)
	assert.Panics(t, func() { m.MustMaterial(a) })
	assert.NotPanics(t, func() { m.MustMaterial(b) })
}

func TestUnload(t *testing.T) {
	m, f := newTestManager()
	m.Texture("a.png")
	m.Texture("missing.png")
	m.AddMaterial(&Material{})

	m.Unload()

	assert.Equal(t, 1, f.unloaded, "only valid textures are released")
	assert.Zero(t, m.MaterialCount())
}

func TestLookupColor(t *testing.T) {
	c, ok := LookupColor("Red")
	assert.True(t, ok)
	assert.Equal(t, rl.Red, c)

	_, ok = LookupColor("Ultraviolet")
	assert.False(t, ok)
}
