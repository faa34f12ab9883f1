package game

import (
	"fmt"
	"strings"
	"time"

	"consoleroom/internal/assets"
	"consoleroom/internal/audio"
	"consoleroom/internal/components"
	"consoleroom/internal/config"
	"consoleroom/internal/engine"
	"consoleroom/internal/input"
	"consoleroom/internal/physics"
	"consoleroom/internal/systems"
	"consoleroom/internal/world"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config    config.Config
	Settings  systems.Settings
	World     *world.World
	Materials *assets.Manager
	Renderer  *world.Renderer
	Input     *input.State
	Cursor    *input.CursorLock
	Audio     *audio.Player
	DebugMode bool

	// OnActivate fires once per console per interact press.
	OnActivate engine.Event[*engine.GameObject]

	logger      *log.Logger
	keys        []int32
	nearby      int
	activations int

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New builds the room and wires the systems. Nothing here needs a window, so
// the whole tick can run headless.
func New(cfg config.Config, logger *log.Logger, window input.Window) (*Game, error) {
	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}

	materials := assets.NewManager(cfg.Assets.Root)
	w, err := world.New(materials, cfg.WorldLayout(), cfg.Physics.Gravity)
	if err != nil {
		return nil, err
	}

	g := &Game{
		Config:    cfg,
		Settings:  settings,
		World:     w,
		Materials: materials,
		Renderer:  world.NewRenderer(materials),
		Input:     input.NewState(),
		Cursor:    input.NewCursorLock(window),
		Audio:     audio.NewPlayer(cfg.Audio.Volume),
		logger:    logger,
		keys:      []int32{rl.KeyW, rl.KeyA, rl.KeyS, rl.KeyD, rl.KeyEscape, rl.KeyF1, settings.InteractKey},
	}

	g.Audio.SetMuted(!cfg.Audio.Enabled)

	g.Cursor.OnChange.AddListener(func(m input.LockMode) {
		g.logger.Info("cursor", "mode", m)
	})
	g.OnActivate.AddListener(func(console *engine.GameObject) {
		g.activations++
		g.logger.Info("console activated", "name", console.Name, "materials", g.Materials.MaterialCount())
	})
	g.OnActivate.AddListener(func(console *engine.GameObject) {
		g.Audio.PlayBlip(console.WorldPosition())
	})
	w.Physics.OnCollisionEnter.AddListener(func(c physics.Contact) {
		g.logger.Debug("bump", "object", c.Object.Name, "other", c.Other.Name)
	})

	logger.Info("room built",
		"objects", len(w.Scene.GameObjects),
		"consoles", len(w.Scene.FindByTag("console")),
		"statics", len(w.Physics.Statics))
	return g, nil
}

func (g *Game) Run() error {
	flags := uint32(rl.FlagWindowHighdpi)
	if g.Config.Window.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(g.Config.Window.Width, g.Config.Window.Height, g.Config.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.Config.Window.FPS)
	// Escape releases the cursor instead of closing the window
	rl.SetExitKey(0)

	// opened even when muted so the settings panel can bring sound back
	if err := g.Audio.Init(); err != nil {
		g.logger.Warn("audio disabled", "error", err)
	}
	defer g.Audio.Close()

	g.loadTextures()
	defer g.Materials.Unload()
	defer g.Renderer.Unload()

	initHUDStyle()

	for !rl.WindowShouldClose() {
		if err := g.Update(); err != nil {
			return err
		}
		g.Draw()
	}
	g.logger.Info("shutting down", "activations", g.activations)
	return nil
}

// loadTextures warms the cache so missing files are reported once at startup.
func (g *Game) loadTextures() {
	for _, rel := range world.Textures {
		if tex, ok := g.Materials.Texture(rel); ok {
			g.logger.Debug("texture loaded", "path", rel, "size", fmt.Sprintf("%dx%d", tex.Width, tex.Height))
		} else {
			g.logger.Warn("texture missing, drawing untextured", "path", g.Materials.Path(rel))
		}
	}
}

func (g *Game) Update() error {
	updateStart := time.Now()
	g.Input.Poll(g.keys)

	err := g.Tick(rl.GetFrameTime())

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
	return err
}

// Tick runs one frame of game logic against the current input state.
func (g *Game) Tick(deltaTime float32) error {
	systems.GrabCursor(g.Input, g.Cursor)
	systems.MovePlayer(g.World.Scene, g.Input, g.Cursor, g.Settings, deltaTime)

	fired, err := systems.InteractWithConsoles(g.World.Scene, g.Input, g.Materials, g.Settings)
	if err != nil {
		return err
	}
	for _, console := range fired {
		g.OnActivate.Invoke(console)
	}

	systems.UpdateScreenEffects(g.World.Scene, g.Materials, g.Settings, deltaTime)
	g.World.Step(deltaTime)

	near, err := systems.InRange(g.World.Scene, g.Settings)
	if err != nil {
		return err
	}
	g.nearby = len(near)

	wt := g.World.Player.WorldTransform()
	g.Audio.SetListener(wt.Position, wt.Forward(), wt.Up())

	// Toggle debug mode
	if g.Input.KeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
		g.Renderer.DebugColliders = g.DebugMode
	}
	return nil
}

func (g *Game) Draw() {
	cam := g.World.MainCamera()
	if cam == nil {
		return
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(cam.GetRaylibCamera())
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	g.Renderer.Draw(g.World.Scene, cam, aspect)
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

// Activations counts console activations since New.
func (g *Game) Activations() int {
	return g.activations
}

// lookingAt returns the interactable under the crosshair within twice the
// interact range, or nil.
func (g *Game) lookingAt() *engine.GameObject {
	cam := g.World.MainCamera()
	if cam == nil {
		return nil
	}
	rc := cam.GetRaylibCamera()
	dir := rl.Vector3Subtract(rc.Target, rc.Position)
	hit, ok := g.World.Physics.Raycast(rc.Position, dir, g.Settings.InteractRange*2, g.World.Player)
	if !ok {
		return nil
	}
	for obj := hit.GameObject; obj != nil; obj = obj.Parent {
		if engine.HasComponent[*components.Interactable](obj) {
			return obj
		}
	}
	return nil
}

// interactKeyName is the configured key as shown to the player.
func (g *Game) interactKeyName() string {
	return strings.ToUpper(strings.TrimSpace(g.Config.Controls.InteractKey))
}
