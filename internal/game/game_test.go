package game

import (
	"bytes"
	"errors"
	"testing"

	"consoleroom/internal/components"
	"consoleroom/internal/config"
	"consoleroom/internal/engine"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct{ disabled, enabled int }

func (w *fakeWindow) DisableCursor() { w.disabled++ }
func (w *fakeWindow) EnableCursor()  { w.enabled++ }

func newTestGame(t *testing.T) (*Game, *fakeWindow, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	win := &fakeWindow{}
	g, err := New(config.Default(), logger, win)
	require.NoError(t, err)
	return g, win, &buf
}

const frame = float32(1.0 / 60.0)

func TestNewLogsRoom(t *testing.T) {
	_, _, buf := newTestGame(t)
	assert.Contains(t, buf.String(), "room built")
	assert.Contains(t, buf.String(), "consoles=3")
}

func TestNewRejectsBadKey(t *testing.T) {
	cfg := config.Default()
	cfg.Controls.InteractKey = "Nope"
	_, err := New(cfg, log.New(&bytes.Buffer{}), &fakeWindow{})
	assert.Error(t, err)
}

func TestClickLocksThenMoves(t *testing.T) {
	g, win, buf := newTestGame(t)

	g.Input.Reset()
	g.Input.PressMouse(rl.MouseButtonLeft)
	g.Input.SetKey(rl.KeyW, true)
	require.NoError(t, g.Tick(frame))

	assert.True(t, g.Cursor.Locked())
	assert.Equal(t, 1, win.disabled)
	assert.Contains(t, buf.String(), "mode=locked")

	rb := engine.GetComponent[*components.Rigidbody](g.World.Player)
	assert.InDelta(t, -5, rb.Velocity.Z, 0.05)
	assert.Less(t, g.World.Player.Transform.Position.Z, float32(4))

	g.Input.Reset()
	g.Input.SetKey(rl.KeyW, true)
	g.Input.SetKey(rl.KeyEscape, true)
	require.NoError(t, g.Tick(frame))
	assert.False(t, g.Cursor.Locked())
	assert.Equal(t, 1, win.enabled)
}

func TestEscapeStopsWalking(t *testing.T) {
	g, _, _ := newTestGame(t)

	g.Input.Reset()
	g.Input.PressMouse(rl.MouseButtonLeft)
	g.Input.SetKey(rl.KeyW, true)
	require.NoError(t, g.Tick(frame))

	g.Input.Reset()
	g.Input.SetKey(rl.KeyEscape, true)
	require.NoError(t, g.Tick(frame))
	require.False(t, g.Cursor.Locked())
	z := g.World.Player.Transform.Position.Z

	for i := 0; i < 30; i++ {
		g.Input.Reset()
		require.NoError(t, g.Tick(frame))
	}
	assert.InDelta(t, z, g.World.Player.Transform.Position.Z, 1e-5)
}

func TestLandingIsLogged(t *testing.T) {
	g, _, buf := newTestGame(t)

	for i := 0; i < 10; i++ {
		g.Input.Reset()
		require.NoError(t, g.Tick(frame))
	}
	assert.Contains(t, buf.String(), "bump")
	assert.Contains(t, buf.String(), "other=Floor")
	assert.True(t, g.World.Physics.Grounded(g.World.Player))
}

func TestMutedConfigKeepsVolume(t *testing.T) {
	cfg := config.Default()
	cfg.Audio.Enabled = false
	g, err := New(cfg, log.New(&bytes.Buffer{}), &fakeWindow{})
	require.NoError(t, err)

	assert.True(t, g.Audio.Muted())
	assert.Equal(t, cfg.Audio.Volume, g.Audio.Volume())

	g.Audio.SetMuted(false)
	assert.True(t, g.Audio.Enabled())
}

func TestUnlockedCursorHoldsStill(t *testing.T) {
	g, _, _ := newTestGame(t)

	g.Input.Reset()
	g.Input.SetKey(rl.KeyD, true)
	require.NoError(t, g.Tick(frame))

	rb := engine.GetComponent[*components.Rigidbody](g.World.Player)
	assert.Zero(t, rb.Velocity.X)
	assert.Zero(t, rb.Velocity.Z)
}

func TestInteractFiresActivation(t *testing.T) {
	g, _, buf := newTestGame(t)
	g.World.Player.Transform.Position = rl.Vector3{X: 0, Y: 1.21, Z: 3}

	var activated []string
	g.OnActivate.AddListener(func(c *engine.GameObject) { activated = append(activated, c.Name) })

	g.Input.Reset()
	require.NoError(t, g.Tick(frame))
	assert.Empty(t, activated)
	assert.Equal(t, "Press E to interact", g.prompt())

	before := g.Materials.MaterialCount()
	g.Input.Reset()
	g.Input.SetKey(rl.KeyE, true)
	require.NoError(t, g.Tick(frame))
	assert.Equal(t, []string{"Console_2"}, activated)
	// base, top and screen each get a fresh material
	assert.Equal(t, before+3, g.Materials.MaterialCount())
	assert.Contains(t, buf.String(), "console activated")

	// still held, no new edge
	g.Input.Reset()
	g.Input.SetKey(rl.KeyE, true)
	require.NoError(t, g.Tick(frame))
	assert.Len(t, activated, 1)
	assert.Equal(t, 1, g.activations)
}

func TestPromptHiddenAwayFromConsoles(t *testing.T) {
	g, _, _ := newTestGame(t)

	g.Input.Reset()
	require.NoError(t, g.Tick(frame))
	assert.Empty(t, g.prompt())
	assert.Equal(t, "Click to capture the mouse", g.hudLines()[0])
}

func TestTickWithoutPlayerFails(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.World.Player.Active = false

	g.Input.Reset()
	err := g.Tick(frame)
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrNoMatch))
}

func TestF1TogglesColliders(t *testing.T) {
	g, _, _ := newTestGame(t)

	g.Input.Reset()
	g.Input.SetKey(rl.KeyF1, true)
	require.NoError(t, g.Tick(frame))
	assert.True(t, g.DebugMode)
	assert.True(t, g.Renderer.DebugColliders)

	g.Input.Reset()
	g.Input.SetKey(rl.KeyF1, false)
	g.Input.SetKey(rl.KeyF1, true)
	require.NoError(t, g.Tick(frame))
	assert.False(t, g.DebugMode)
}

func TestLookingAtConsole(t *testing.T) {
	g, _, _ := newTestGame(t)

	assert.Nil(t, g.lookingAt(), "start position looks past the consoles")

	g.World.Player.Transform = engine.NewTransform(0, 1.21, 3).
		LookingAt(rl.Vector3{X: 0, Y: 0.3, Z: 2}, rl.Vector3{Y: 1})
	target := g.lookingAt()
	require.NotNil(t, target)
	assert.Equal(t, "Console_2", target.Name)
	assert.Equal(t, "Console_2", g.targetLabel())
}
