package components

import (
	"consoleroom/internal/assets"
	"consoleroom/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	// MeshPlane lies in XZ facing +Y. Size uses X and Z.
	MeshPlane
	// MeshRectangle stands in XY facing +Z. Size uses X and Y.
	MeshRectangle
	// MeshCapsule is vertical. Size.X is the radius, Size.Y the half height.
	MeshCapsule
)

func (t MeshType) String() string {
	switch t {
	case MeshCube:
		return "cube"
	case MeshPlane:
		return "plane"
	case MeshRectangle:
		return "rectangle"
	case MeshCapsule:
		return "capsule"
	}
	return "unknown"
}

// MeshRenderer draws a primitive shape with a material from the asset
// table. The GPU model is built by the renderer on first draw.
type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Size     rl.Vector3
	Material assets.Handle
	Hidden   bool
}

func NewMeshRenderer(meshType MeshType, size rl.Vector3, material assets.Handle) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Size:     size,
		Material: material,
	}
}
