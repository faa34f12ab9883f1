package world

import (
	"fmt"

	"consoleroom/internal/assets"
	"consoleroom/internal/components"
	"consoleroom/internal/engine"
	"consoleroom/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Texture paths, relative to the asset root.
const (
	TextureFloor   = "textures/floor_plating.png"
	TextureWall    = "textures/wall_paneling.png"
	TextureConsole = "textures/console_casing.png"
	TextureScreen  = "textures/screen_interface.png"
	TextureSpace   = "textures/space_view.png"
)

// Textures lists every texture the room loads.
var Textures = []string{TextureFloor, TextureWall, TextureConsole, TextureScreen, TextureSpace}

// Room dimensions
const (
	RoomSize   = 10.0
	RoomHeight = 5.0
	WallThick  = 0.1
)

// Layout is the part of the room that can be moved around without touching
// the geometry.
type Layout struct {
	PlayerStart rl.Vector3
	LookAt      rl.Vector3
	Consoles    []rl.Vector3
}

func DefaultLayout() Layout {
	return Layout{
		PlayerStart: rl.Vector3{X: 0, Y: 1.2, Z: 4},
		LookAt:      rl.Vector3{X: 0, Y: 1, Z: 0},
		Consoles: []rl.Vector3{
			{X: -3, Y: 0, Z: 2},
			{X: 0, Y: 0, Z: 2},
			{X: 3, Y: 0, Z: 2},
		},
	}
}

type World struct {
	Scene     *engine.Scene
	Player    *engine.GameObject
	Physics   *physics.PhysicsWorld
	Materials *assets.Manager
}

// New composes the room, checks its invariants and registers the colliders
// with a fresh physics world. Nothing here touches the GPU.
func New(materials *assets.Manager, layout Layout, gravity float32) (*World, error) {
	w := &World{
		Scene:     engine.NewScene("ConsoleRoom"),
		Physics:   physics.NewPhysicsWorld(gravity),
		Materials: materials,
	}

	w.spawnLights()
	w.spawnRoom()
	for i, pos := range layout.Consoles {
		w.spawnConsole(i, pos)
	}
	w.Player = w.spawnPlayer(layout)

	if err := Validate(w.Scene, materials); err != nil {
		return nil, fmt.Errorf("build room: %w", err)
	}

	w.Physics.AddScene(w.Scene)
	return w, nil
}

func (w *World) spawnLights() {
	lights := []struct {
		pos       rl.Vector3
		intensity float32
	}{
		{rl.Vector3{X: 4, Y: 8, Z: 4}, 1500},
		{rl.Vector3{X: -4, Y: 8, Z: -4}, 800},
		{rl.Vector3{X: 0, Y: 2, Z: 0}, 500},
	}
	for i, l := range lights {
		g := engine.NewGameObject(fmt.Sprintf("Light_%d", i+1))
		g.Transform.Position = l.pos
		light := components.NewPointLight(l.intensity)
		g.AddComponent(light)
		w.Scene.AddGameObject(g)
	}
}

// panel is the rough metal look shared by floor, walls and casings.
func (w *World) panel(name, texture string) assets.Handle {
	return w.Materials.AddMaterial(&assets.Material{
		Name:      name,
		BaseColor: rl.White,
		Texture:   texture,
		Roughness: 0.8,
		Metallic:  0.1,
	})
}

func (w *World) addStatic(name string, pos rl.Vector3, mesh *components.MeshRenderer, collider *components.BoxCollider) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(mesh)
	g.AddComponent(collider)
	w.Scene.AddGameObject(g)
	return g
}

func (w *World) spawnRoom() {
	half := float32(RoomSize / 2)

	w.addStatic("Floor", rl.Vector3{},
		components.NewMeshRenderer(components.MeshPlane, rl.Vector3{X: RoomSize, Z: RoomSize}, w.panel("floor", TextureFloor)),
		components.NewBoxColliderHalfExtents(half, 0.01, half))

	// The space view glows through its texture and ignores the lights
	screen := w.addStatic("MainScreen", rl.Vector3{X: 0, Y: 2, Z: -4.9},
		components.NewMeshRenderer(components.MeshRectangle, rl.Vector3{X: 6, Y: 3},
			w.Materials.AddMaterial(&assets.Material{
				Name:      "space_view",
				BaseColor: rl.White,
				Texture:   TextureSpace,
				Emissive:  rl.Vector3{X: 1, Y: 2, Z: 3},
				Roughness: 0.5,
				Unlit:     true,
			})),
		components.NewBoxColliderHalfExtents(3, 1.5, 0.01))
	screen.Tags = []string{"screen"}
	screen.AddComponent(components.NewScreenEffect(rl.Vector3{X: 0.1, Y: 0.2, Z: 0.3}))

	walls := []struct {
		name string
		pos  rl.Vector3
		size rl.Vector3
	}{
		{"Wall_Back", rl.Vector3{Y: RoomHeight / 2, Z: -half}, rl.Vector3{X: RoomSize, Y: RoomHeight, Z: WallThick}},
		{"Wall_Front", rl.Vector3{Y: RoomHeight / 2, Z: half}, rl.Vector3{X: RoomSize, Y: RoomHeight, Z: WallThick}},
		{"Wall_Left", rl.Vector3{X: -half, Y: RoomHeight / 2}, rl.Vector3{X: WallThick, Y: RoomHeight, Z: RoomSize}},
		{"Wall_Right", rl.Vector3{X: half, Y: RoomHeight / 2}, rl.Vector3{X: WallThick, Y: RoomHeight, Z: RoomSize}},
	}
	for _, wall := range walls {
		g := w.addStatic(wall.name, wall.pos,
			components.NewMeshRenderer(components.MeshCube, wall.size, w.panel("wall", TextureWall)),
			components.NewBoxCollider(wall.size))
		g.Tags = []string{"wall"}
	}

	ceiling := w.addStatic("Ceiling", rl.Vector3{Y: RoomHeight},
		components.NewMeshRenderer(components.MeshPlane, rl.Vector3{X: RoomSize, Z: RoomSize}, w.panel("ceiling", TextureWall)),
		components.NewBoxColliderHalfExtents(half, 0.01, half))
	// face down into the room
	ceiling.Transform.Rotation = rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, rl.Pi)
}

// spawnConsole builds an interactable root with three parts: casing, top
// plate and a glowing screen.
func (w *World) spawnConsole(i int, pos rl.Vector3) *engine.GameObject {
	root := engine.NewGameObject(fmt.Sprintf("Console_%d", i+1))
	root.Transform.Position = pos
	root.Tags = []string{"console"}
	root.AddComponent(components.NewInteractable())

	part := func(name string, local rl.Vector3, mesh *components.MeshRenderer, collider *components.BoxCollider) *engine.GameObject {
		g := engine.NewGameObject(name)
		g.Transform.Position = local
		g.AddComponent(mesh)
		g.AddComponent(collider)
		root.AddChild(g)
		return g
	}

	part("Base", rl.Vector3{Y: 0.3},
		components.NewMeshRenderer(components.MeshCube, rl.Vector3{X: 1.5, Y: 0.6, Z: 0.8}, w.panel("console_casing", TextureConsole)),
		components.NewBoxColliderHalfExtents(0.75, 0.3, 0.4))

	part("Top", rl.Vector3{Y: 0.65},
		components.NewMeshRenderer(components.MeshCube, rl.Vector3{X: 1.3, Y: 0.1, Z: 0.7},
			w.Materials.AddMaterial(&assets.Material{
				Name:      "console_top",
				BaseColor: rl.ColorFromNormalized(rl.Vector4{X: 0.3, Y: 0.3, Z: 0.3, W: 1}),
				Roughness: 0.5,
			})),
		components.NewBoxColliderHalfExtents(0.65, 0.05, 0.35))

	screen := part("Screen", rl.Vector3{Y: 0.7, Z: -0.35},
		components.NewMeshRenderer(components.MeshRectangle, rl.Vector3{X: 1, Y: 0.4},
			w.Materials.AddMaterial(&assets.Material{
				Name:      "console_screen",
				BaseColor: rl.White,
				Texture:   TextureScreen,
				Emissive:  rl.Vector3{Y: 4},
				Roughness: 0.1,
			})),
		components.NewBoxColliderHalfExtents(0.5, 0.2, 0.01))
	screen.Tags = []string{"screen"}
	screen.AddComponent(components.NewScreenEffect(rl.Vector3{Y: 0.8}))

	w.Scene.AddGameObject(root)
	return root
}

func (w *World) spawnPlayer(layout Layout) *engine.GameObject {
	g := engine.NewGameObject("Player")
	g.Transform = engine.NewTransform(layout.PlayerStart.X, layout.PlayerStart.Y, layout.PlayerStart.Z).
		LookingAt(layout.LookAt, rl.Vector3{Y: 1})

	g.AddComponent(components.NewPlayer())

	cam := components.NewCamera()
	cam.IsMain = true
	g.AddComponent(cam)

	g.AddComponent(components.NewRigidbody())
	g.AddComponent(components.NewCapsuleCollider(0.9, 0.3))

	// first person, the body is only drawn in the collider debug view
	body := components.NewMeshRenderer(components.MeshCapsule, rl.Vector3{X: 0.3, Y: 0.9},
		w.Materials.AddMaterial(&assets.Material{Name: "player", BaseColor: rl.SkyBlue, Roughness: 0.5}))
	body.Hidden = true
	g.AddComponent(body)

	w.Scene.AddGameObject(g)
	return g
}

// MainCamera returns the camera flagged IsMain, or nil.
func (w *World) MainCamera() *components.Camera {
	var main *components.Camera
	engine.Each(w.Scene, func(_ *engine.GameObject, c *components.Camera) {
		if main == nil && c.IsMain {
			main = c
		}
	})
	return main
}

// Step advances physics. Interaction systems run before it.
func (w *World) Step(deltaTime float32) {
	w.Physics.Step(deltaTime)
}
