package engine

// Component is data attached to a GameObject. Behaviour lives in the
// systems that query for it, so a component only needs to know its owner.
type Component interface {
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// BaseComponent is embedded by every component to satisfy the interface.
type BaseComponent struct {
	owner *GameObject
}

func (c *BaseComponent) SetGameObject(g *GameObject) { c.owner = g }
func (c *BaseComponent) GetGameObject() *GameObject  { return c.owner }

// Attached reports whether the component has been added to an object.
func (c *BaseComponent) Attached() bool { return c.owner != nil }
