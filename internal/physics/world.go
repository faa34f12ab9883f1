package physics

import (
	"consoleroom/internal/components"
	"consoleroom/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxSubstep bounds the integration step so a slow frame can't tunnel the
// player through the thin floor and wall colliders.
const MaxSubstep = float32(1.0 / 120.0)

// maxSubsteps caps the work done for a single very long frame.
const maxSubsteps = 8

// Contact describes one body touching another during a step.
type Contact struct {
	Object *engine.GameObject
	Other  *engine.GameObject
	Normal rl.Vector3 // points away from Other
}

// CollisionPair represents two objects that are colliding
type CollisionPair struct {
	A, B uint64
}

func makePair(a, b *engine.GameObject) CollisionPair {
	if a.UID > b.UID {
		return CollisionPair{A: b.UID, B: a.UID}
	}
	return CollisionPair{A: a.UID, B: b.UID}
}

type PhysicsWorld struct {
	Gravity    rl.Vector3
	Objects []*engine.GameObject // rigidbodies
	Statics []*engine.GameObject // no rigidbody (walls, floor)

	// OnCollisionEnter fires once when a pair starts touching.
	OnCollisionEnter engine.Event[Contact]

	activeCollisions  map[CollisionPair]bool // collisions from last step
	currentCollisions map[CollisionPair]bool // collisions this step
	pendingEnter      []Contact
}

func NewPhysicsWorld(gravity float32) *PhysicsWorld {
	return &PhysicsWorld{
		Gravity:           rl.Vector3{X: 0, Y: gravity, Z: 0},
		Objects:           make([]*engine.GameObject, 0),
		Statics:           make([]*engine.GameObject, 0),
		activeCollisions:  make(map[CollisionPair]bool),
		currentCollisions: make(map[CollisionPair]bool),
	}
}

// AddScene registers every object in s that has a collider or rigidbody.
func (p *PhysicsWorld) AddScene(s *engine.Scene) {
	for _, g := range s.GameObjects {
		if hasCollider(g) || engine.HasComponent[*components.Rigidbody](g) {
			p.AddObject(g)
		}
	}
}

func hasCollider(g *engine.GameObject) bool {
	return engine.HasComponent[*components.BoxCollider](g) ||
		engine.HasComponent[*components.CapsuleCollider](g)
}

func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	if engine.HasComponent[*components.Rigidbody](g) {
		p.Objects = append(p.Objects, g)
	} else {
		p.Statics = append(p.Statics, g)
	}
}

// Step advances the simulation by deltaTime, split into substeps no longer
// than MaxSubstep.
func (p *PhysicsWorld) Step(deltaTime float32) {
	if deltaTime <= 0 {
		return
	}
	p.currentCollisions = make(map[CollisionPair]bool)

	n := int(deltaTime/MaxSubstep) + 1
	if n > maxSubsteps {
		n = maxSubsteps
	}
	dt := deltaTime / float32(n)
	for i := 0; i < n; i++ {
		p.substep(dt)
	}

	p.dispatchCollisionCallbacks()
}

func (p *PhysicsWorld) substep(dt float32) {
	// 1. Apply gravity and integrate
	for _, obj := range p.Objects {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil || !obj.Active {
			continue
		}
		if rb.UseGravity {
			rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(p.Gravity, dt))
		}
		obj.Transform.Position = rl.Vector3Add(
			obj.Transform.Position,
			rl.Vector3Scale(rb.Velocity, dt),
		)
	}

	// 2. Dynamic vs static obstacles
	for _, obj := range p.Objects {
		if !obj.Active {
			continue
		}
		for _, other := range p.Statics {
			p.resolveAgainstFixed(obj, other)
		}
	}
}

// resolveAgainstFixed pushes obj out of an object that doesn't move in
// response, and removes the velocity component pointing into it.
func (p *PhysicsWorld) resolveAgainstFixed(obj, fixed *engine.GameObject) {
	if obj == fixed || !fixed.Active {
		return
	}
	box := engine.GetComponent[*components.BoxCollider](fixed)
	if box == nil {
		return
	}
	obstacle := BoxOBB(box)

	var pushOut rl.Vector3
	if capsule := engine.GetComponent[*components.CapsuleCollider](obj); capsule != nil {
		pushOut = CapsuleShape(capsule).ResolveOBB(obstacle)
	} else if own := engine.GetComponent[*components.BoxCollider](obj); own != nil {
		pushOut = BoxOBB(own).ResolveOBB(obstacle)
	} else {
		return
	}

	pushLen := rl.Vector3Length(pushOut)
	if pushLen < 0.00001 {
		return
	}

	p.currentCollisions[makePair(obj, fixed)] = true

	// Push fully out (fixed side doesn't move)
	obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, pushOut)

	rb := engine.GetComponent[*components.Rigidbody](obj)
	if rb == nil {
		return
	}
	normal := rl.Vector3Scale(pushOut, 1/pushLen)
	velAlongNormal := rl.Vector3DotProduct(rb.Velocity, normal)
	if velAlongNormal < 0 {
		rb.Velocity = rl.Vector3Subtract(rb.Velocity, rl.Vector3Scale(normal, velAlongNormal))
	}
	if p.OnCollisionEnter.ListenerCount() > 0 && !p.activeCollisions[makePair(obj, fixed)] {
		p.pendingEnter = append(p.pendingEnter, Contact{Object: obj, Other: fixed, Normal: normal})
	}
}

// dispatchCollisionCallbacks fires OnCollisionEnter for pairs that were not
// touching during the previous step.
func (p *PhysicsWorld) dispatchCollisionCallbacks() {
	seen := make(map[CollisionPair]bool, len(p.pendingEnter))
	for _, c := range p.pendingEnter {
		pair := makePair(c.Object, c.Other)
		if seen[pair] {
			continue
		}
		seen[pair] = true
		p.OnCollisionEnter.Invoke(c)
	}
	p.pendingEnter = p.pendingEnter[:0]

	// Swap buffers
	p.activeCollisions = p.currentCollisions
}

// Touching reports whether g was in contact with other during the last step.
func (p *PhysicsWorld) Touching(g, other *engine.GameObject) bool {
	return p.activeCollisions[makePair(g, other)]
}

// Grounded reports whether g rests on something below it. It checks the last
// step's contacts for an obstacle whose top is under g's center.
func (p *PhysicsWorld) Grounded(g *engine.GameObject) bool {
	pos := g.WorldPosition()
	for _, other := range p.Statics {
		if !p.Touching(g, other) {
			continue
		}
		if box := engine.GetComponent[*components.BoxCollider](other); box != nil {
			if BoxOBB(box).Bounds().Max.Y <= pos.Y {
				return true
			}
		}
	}
	return false
}
