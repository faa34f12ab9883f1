package world

import (
	"math"

	"consoleroom/internal/assets"
	"consoleroom/internal/components"
	"consoleroom/internal/engine"
	"consoleroom/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/kamstrup/intmap"
)

type meshModel struct {
	model      rl.Model
	defaultTex rl.Texture2D
	meshType   components.MeshType
	size       rl.Vector3
}

// Renderer draws every visible MeshRenderer with raylib's default shader.
// Lighting is folded into the per-object tint by Shade.
type Renderer struct {
	materials *assets.Manager
	models    *intmap.Map[uint64, *meshModel]

	// DebugColliders draws collider wireframes on top of the scene.
	DebugColliders bool

	Drawn  int
	Culled int
}

func NewRenderer(materials *assets.Manager) *Renderer {
	return &Renderer{
		materials: materials,
		models:    intmap.New[uint64, *meshModel](64),
	}
}

// Draw must be called between rl.BeginMode3D and rl.EndMode3D.
func (r *Renderer) Draw(scene *engine.Scene, camera *components.Camera, aspect float32) {
	cam := camera.GetRaylibCamera()
	frustum := ExtractFrustum(cam, aspect, camera.Near, camera.Far)

	var lights []*components.PointLight
	engine.Each(scene, func(_ *engine.GameObject, l *components.PointLight) {
		lights = append(lights, l)
	})

	r.Drawn, r.Culled = 0, 0
	engine.Each(scene, func(g *engine.GameObject, mr *components.MeshRenderer) {
		if mr.Hidden {
			return
		}
		wt := g.WorldTransform()
		if !frustum.ContainsSphere(wt.Position, boundingRadius(mr, wt.Scale)) {
			r.Culled++
			return
		}
		r.Drawn++

		mat := r.materials.MustMaterial(mr.Material)
		tint := Shade(mat, wt.Position, lights)

		if mr.MeshType == components.MeshCapsule {
			top := rl.Vector3Add(wt.Position, rl.Vector3{Y: mr.Size.Y})
			bottom := rl.Vector3Subtract(wt.Position, rl.Vector3{Y: mr.Size.Y})
			rl.DrawCapsule(bottom, top, mr.Size.X, 8, 8, tint)
			return
		}

		m := r.model(g.UID, mr)
		m.model.Materials.Maps.Texture = m.defaultTex
		if mat.Texture != "" {
			if tex, ok := r.materials.Texture(mat.Texture); ok {
				m.model.Materials.Maps.Texture = tex
			}
		}
		m.model.Transform = rl.MatrixMultiply(meshOrientation(mr.MeshType), wt.Matrix())
		rl.DrawModel(m.model, rl.Vector3{}, 1.0, tint)
	})

	if r.DebugColliders {
		r.drawColliders(scene)
	}
}

// model returns the cached GPU model for mr, rebuilding it when the shape
// changed since the last draw.
func (r *Renderer) model(uid uint64, mr *components.MeshRenderer) *meshModel {
	if m, ok := r.models.Get(uid); ok {
		if m.meshType == mr.MeshType && m.size == mr.Size {
			return m
		}
		rl.UnloadModel(m.model)
	}

	var mesh rl.Mesh
	switch mr.MeshType {
	case components.MeshPlane:
		mesh = rl.GenMeshPlane(mr.Size.X, mr.Size.Z, 1, 1)
	case components.MeshRectangle:
		mesh = rl.GenMeshPlane(mr.Size.X, mr.Size.Y, 1, 1)
	default:
		mesh = rl.GenMeshCube(mr.Size.X, mr.Size.Y, mr.Size.Z)
	}
	model := rl.LoadModelFromMesh(mesh)
	m := &meshModel{
		model:      model,
		defaultTex: model.Materials.Maps.Texture,
		meshType:   mr.MeshType,
		size:       mr.Size,
	}
	r.models.Put(uid, m)
	return m
}

// meshOrientation turns the generated mesh into the shape's local frame.
// Rectangles are built as planes and stood up to face +Z.
func meshOrientation(t components.MeshType) rl.Matrix {
	if t == components.MeshRectangle {
		return rl.MatrixRotateX(math.Pi / 2)
	}
	return rl.MatrixIdentity()
}

// boundingRadius is a sphere around the scaled shape, used for culling.
func boundingRadius(mr *components.MeshRenderer, scale rl.Vector3) float32 {
	size := mr.Size
	if mr.MeshType == components.MeshCapsule {
		size = rl.Vector3{X: mr.Size.X * 2, Y: (mr.Size.Y + mr.Size.X) * 2, Z: mr.Size.X * 2}
	}
	return rl.Vector3Length(rl.Vector3Multiply(size, scale)) / 2
}

func (r *Renderer) drawColliders(scene *engine.Scene) {
	engine.Each(scene, func(_ *engine.GameObject, b *components.BoxCollider) {
		bounds := physics.BoxOBB(b).Bounds()
		rl.DrawBoundingBox(rl.BoundingBox{Min: bounds.Min, Max: bounds.Max}, rl.Green)
	})
	engine.Each(scene, func(_ *engine.GameObject, c *components.CapsuleCollider) {
		shape := physics.CapsuleShape(c)
		rl.DrawCapsuleWires(shape.A, shape.B, shape.Radius, 8, 4, rl.Yellow)
	})
}

func (r *Renderer) Unload() {
	r.models.ForEach(func(_ uint64, m *meshModel) bool {
		rl.UnloadModel(m.model)
		return true
	})
	r.models.Clear()
}
