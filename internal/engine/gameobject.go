package engine

import (
	"slices"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

// GameObject is a node in the room hierarchy. Its Transform is relative to
// Parent; the World* methods resolve the whole chain.
type GameObject struct {
	UID       uint64
	Name      string
	Tags      []string
	Transform Transform
	Active    bool
	Scene     *Scene
	Parent    *GameObject
	Children  []*GameObject

	components []Component
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:       nextUID.Add(1),
		Name:      name,
		Active:    true,
		Transform: NewTransform(0, 0, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

func (g *GameObject) Components() []Component {
	return g.components
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	c, _ := findComponent[T](g)
	return c
}

func HasComponent[T Component](g *GameObject) bool {
	_, ok := findComponent[T](g)
	return ok
}

func findComponent[T Component](g *GameObject) (T, bool) {
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

func (g *GameObject) HasTag(tag string) bool {
	return slices.Contains(g.Tags, tag)
}

// AddChild parents child under g. The child keeps its local transform.
func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	i := slices.Index(g.Children, child)
	if i < 0 {
		return
	}
	g.Children = slices.Delete(g.Children, i, i+1)
	child.Parent = nil
}

// Descendants returns every object below g, depth first.
func (g *GameObject) Descendants() []*GameObject {
	var out []*GameObject
	var walk func(*GameObject)
	walk = func(n *GameObject) {
		for _, c := range n.Children {
			out = append(out, c)
			walk(c)
		}
	}
	walk(g)
	return out
}

// WorldTransform flattens the parent chain into a single transform.
func (g *GameObject) WorldTransform() Transform {
	t := g.Transform
	for p := g.Parent; p != nil; p = p.Parent {
		t = p.Transform.Compose(t)
	}
	return t
}

func (g *GameObject) WorldPosition() rl.Vector3    { return g.WorldTransform().Position }
func (g *GameObject) WorldRotation() rl.Quaternion { return g.WorldTransform().Rotation }
func (g *GameObject) WorldScale() rl.Vector3       { return g.WorldTransform().Scale }
