package physics

import (
	"math"
	"testing"

	"consoleroom/internal/components"
	"consoleroom/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAABBIntersects(t *testing.T) {
	a := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})
	b := NewAABBFromCenter(rl.Vector3{X: 1.5}, rl.Vector3{X: 2, Y: 2, Z: 2})
	c := NewAABBFromCenter(rl.Vector3{X: 5}, rl.Vector3{X: 2, Y: 2, Z: 2})

	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(c))
	assert.True(t, a.Expand(2).Intersects(c))
}

func TestNewAABBFromPoints(t *testing.T) {
	box := NewAABBFromPoints(rl.Vector3{X: 1, Y: -2}, rl.Vector3{X: -1, Y: 3, Z: 4})
	assert.Equal(t, rl.Vector3{X: -1, Y: -2}, box.Min)
	assert.Equal(t, rl.Vector3{X: 1, Y: 3, Z: 4}, box.Max)
}

func TestOBBAxesFollowRotation(t *testing.T) {
	o := NewOBB(rl.Vector3{}, rl.Vector3{X: 4, Y: 2, Z: 2}, rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, math.Pi/2))

	// local X turned a quarter about +Y points along -Z
	assert.InDelta(t, 0, o.Axes[0].X, 1e-5)
	assert.InDelta(t, -1, o.Axes[0].Z, 1e-5)

	b := o.Bounds()
	assert.InDelta(t, 1, b.Max.X, 1e-5)
	assert.InDelta(t, 2, b.Max.Z, 1e-5)
}

func TestOBBResolvePushesOut(t *testing.T) {
	floor := NewAABBasOBB(rl.Vector3{}, rl.Vector3{X: 10, Y: 0.02, Z: 10})
	box := NewAABBasOBB(rl.Vector3{Y: 0.4}, rl.Vector3{X: 1, Y: 1, Z: 1})

	push := box.ResolveOBB(floor)
	assert.InDelta(t, 0.11, push.Y, 1e-5)
	assert.InDelta(t, 0, push.X, 1e-5)

	far := NewAABBasOBB(rl.Vector3{Y: 3}, rl.Vector3{X: 1, Y: 1, Z: 1})
	assert.Equal(t, rl.Vector3Zero(), far.ResolveOBB(floor))
}

func TestOBBIntersectsRotated(t *testing.T) {
	a := NewAABBasOBB(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})
	turned := rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, math.Pi/4)

	// the diamond reaches about 0.707 towards a
	assert.True(t, a.IntersectsOBB(NewOBB(rl.Vector3{X: 1.1}, rl.Vector3{X: 1, Y: 1, Z: 1}, turned)))
	assert.False(t, a.IntersectsOBB(NewOBB(rl.Vector3{X: 1.3}, rl.Vector3{X: 1, Y: 1, Z: 1}, turned)))
}

func TestClosestPointOnOBB(t *testing.T) {
	o := NewOBB(rl.Vector3{}, rl.Vector3{X: 2, Y: 1, Z: 1}, rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, math.Pi/2))

	p := ClosestPointOnOBB(o, rl.Vector3{X: 3, Z: 3})
	assert.InDelta(t, 0.5, p.X, 1e-5)
	assert.InDelta(t, 1, p.Z, 1e-5)

	inside := rl.Vector3{X: 0.1, Y: 0.2, Z: -0.3}
	p = ClosestPointOnOBB(o, inside)
	assert.InDelta(t, inside.X, p.X, 1e-5)
	assert.InDelta(t, inside.Z, p.Z, 1e-5)
}

func TestClosestPointOnSegment(t *testing.T) {
	a := rl.Vector3{Y: 0}
	b := rl.Vector3{Y: 2}

	assert.Equal(t, rl.Vector3{Y: 1}, ClosestPointOnSegment(a, b, rl.Vector3{X: 5, Y: 1}))
	assert.Equal(t, a, ClosestPointOnSegment(a, b, rl.Vector3{Y: -3}))
	assert.Equal(t, b, ClosestPointOnSegment(a, b, rl.Vector3{Y: 9}))
	assert.Equal(t, a, ClosestPointOnSegment(a, a, rl.Vector3{X: 1}))
}

func TestCapsuleRestingOnFloor(t *testing.T) {
	floor := NewAABBasOBB(rl.Vector3{}, rl.Vector3{X: 10, Y: 0.02, Z: 10})
	// bottom of the capsule sits 0.05 below the floor top
	c := Capsule{A: rl.Vector3{Y: 0.26}, B: rl.Vector3{Y: 2.06}, Radius: 0.3}

	push := c.ResolveOBB(floor)
	assert.InDelta(t, 0, push.X, 1e-5)
	assert.InDelta(t, 0.05, push.Y, 1e-4)
	assert.InDelta(t, 0, push.Z, 1e-5)
}

func TestCapsuleAgainstWall(t *testing.T) {
	wall := NewAABBasOBB(rl.Vector3{Y: 2.5, Z: -5}, rl.Vector3{X: 10, Y: 5, Z: 0.1})
	c := Capsule{A: rl.Vector3{Y: 0.3, Z: -4.7}, B: rl.Vector3{Y: 2.1, Z: -4.7}, Radius: 0.3}

	push := c.ResolveOBB(wall)
	// wall face at z = -4.95, capsule reaches -5.0
	assert.InDelta(t, 0.05, push.Z, 1e-4)
	assert.InDelta(t, 0, push.Y, 1e-5)
}

func TestCapsuleSeparated(t *testing.T) {
	wall := NewAABBasOBB(rl.Vector3{Y: 2.5, Z: -5}, rl.Vector3{X: 10, Y: 5, Z: 0.1})
	c := Capsule{A: rl.Vector3{Y: 0.3}, B: rl.Vector3{Y: 2.1}, Radius: 0.3}

	assert.Equal(t, rl.Vector3Zero(), c.ResolveOBB(wall))
}

func TestCapsuleCoreInsideBox(t *testing.T) {
	block := NewAABBasOBB(rl.Vector3{Y: 1}, rl.Vector3{X: 4, Y: 4, Z: 4})
	c := Capsule{A: rl.Vector3{X: 1.5, Y: 0.5}, B: rl.Vector3{X: 1.5, Y: 1.5}, Radius: 0.3}

	push := c.ResolveOBB(block)
	assert.Greater(t, rl.Vector3Length(push), float32(0))
	assert.Greater(t, push.X, float32(0), "shortest way out is through +X")
}

func newStatic(name string, pos, size rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(components.NewBoxCollider(size))
	return g
}

func newPlayerBody(pos rl.Vector3) (*engine.GameObject, *components.Rigidbody) {
	g := engine.NewGameObject("Player")
	g.Transform.Position = pos
	rb := components.NewRigidbody()
	g.AddComponent(rb)
	g.AddComponent(components.NewCapsuleCollider(0.9, 0.3))
	return g, rb
}

func TestAddObjectSorting(t *testing.T) {
	w := NewPhysicsWorld(-9.81)
	scene := engine.NewScene("test")

	floor := newStatic("Floor", rl.Vector3{}, rl.Vector3{X: 10, Y: 0.02, Z: 10})
	player, _ := newPlayerBody(rl.Vector3{Y: 1.2})
	decoration := engine.NewGameObject("Decoration")

	for _, g := range []*engine.GameObject{floor, player, decoration} {
		scene.AddGameObject(g)
	}
	w.AddScene(scene)

	assert.Equal(t, []*engine.GameObject{player}, w.Objects)
	assert.Equal(t, []*engine.GameObject{floor}, w.Statics)
}

func TestGravityIntegration(t *testing.T) {
	w := NewPhysicsWorld(-9.81)
	g, rb := newPlayerBody(rl.Vector3{Y: 10})
	w.AddObject(g)

	w.Step(0.5)

	assert.InDelta(t, -4.905, rb.Velocity.Y, 1e-3)
	assert.Less(t, g.Transform.Position.Y, float32(10))
}

func TestZeroStepIsNoop(t *testing.T) {
	w := NewPhysicsWorld(-9.81)
	g, rb := newPlayerBody(rl.Vector3{Y: 10})
	w.AddObject(g)

	w.Step(0)

	assert.Equal(t, rl.Vector3{}, rb.Velocity)
	assert.Equal(t, float32(10), g.Transform.Position.Y)
}

func TestPlayerLandsOnFloor(t *testing.T) {
	w := NewPhysicsWorld(-9.81)
	floor := newStatic("Floor", rl.Vector3{}, rl.Vector3{X: 10, Y: 0.02, Z: 10})
	player, rb := newPlayerBody(rl.Vector3{Y: 1.5})
	w.AddObject(floor)
	w.AddObject(player)

	var entered []Contact
	w.OnCollisionEnter.AddListener(func(c Contact) { entered = append(entered, c) })

	for i := 0; i < 120; i++ {
		w.Step(1.0 / 60.0)
	}

	// capsule bottom = center - 0.9 - 0.3 rests on the floor top at 0.01
	assert.InDelta(t, 1.21, player.Transform.Position.Y, 0.01)
	assert.InDelta(t, 0, rb.Velocity.Y, 0.2)
	assert.True(t, w.Grounded(player))
	require.Len(t, entered, 1, "enter fires once while contact persists")
	assert.Same(t, floor, entered[0].Other)
	assert.Greater(t, entered[0].Normal.Y, float32(0.9))
}

func TestWallStopsHorizontalMotion(t *testing.T) {
	w := NewPhysicsWorld(0)
	wall := newStatic("Wall", rl.Vector3{Y: 2.5, Z: -5}, rl.Vector3{X: 10, Y: 5, Z: 0.1})
	player, rb := newPlayerBody(rl.Vector3{Y: 1.2, Z: -4})
	rb.UseGravity = false
	w.AddObject(wall)
	w.AddObject(player)

	for i := 0; i < 60; i++ {
		rb.Velocity = rl.Vector3{Z: -5}
		w.Step(1.0 / 60.0)
	}

	// wall face at -4.95 plus capsule radius
	assert.InDelta(t, -4.65, player.Transform.Position.Z, 0.01)
	assert.True(t, w.Touching(player, wall))
	assert.False(t, w.Grounded(player))
}

func TestInactiveObstacleIgnored(t *testing.T) {
	w := NewPhysicsWorld(-9.81)
	floor := newStatic("Floor", rl.Vector3{}, rl.Vector3{X: 10, Y: 0.02, Z: 10})
	floor.Active = false
	player, _ := newPlayerBody(rl.Vector3{Y: 1.21})
	w.AddObject(floor)
	w.AddObject(player)

	for i := 0; i < 30; i++ {
		w.Step(1.0 / 60.0)
	}

	assert.Less(t, player.Transform.Position.Y, float32(1.0))
}

func TestRayOBBFrontFace(t *testing.T) {
	box := NewAABBasOBB(rl.Vector3{Z: -5}, rl.Vector3{X: 2, Y: 2, Z: 2})

	hit, ok := RayOBB(rl.Vector3{}, rl.Vector3{Z: -1}, box, 10)
	require.True(t, ok)
	assert.InDelta(t, 4, hit.Distance, 1e-5)
	assert.InDelta(t, 1, hit.Normal.Z, 1e-5)
	assert.InDelta(t, -4, hit.Point.Z, 1e-5)

	_, ok = RayOBB(rl.Vector3{}, rl.Vector3{Z: -1}, box, 3)
	assert.False(t, ok, "beyond max distance")
	_, ok = RayOBB(rl.Vector3{}, rl.Vector3{Z: 1}, box, 10)
	assert.False(t, ok, "pointing away")
	_, ok = RayOBB(rl.Vector3{X: 3}, rl.Vector3{Z: -1}, box, 10)
	assert.False(t, ok, "parallel and outside the x slab")
}

func TestRayOBBRotated(t *testing.T) {
	// a long thin box turned 45 degrees about +Y
	box := NewOBB(rl.Vector3{Z: -5}, rl.Vector3{X: 4, Y: 1, Z: 0.2}, rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, math.Pi/4))

	hit, ok := RayOBB(rl.Vector3{}, rl.Vector3{Z: -1}, box, 10)
	require.True(t, ok)
	// half thickness 0.1 measured along the diagonal
	assert.InDelta(t, 5-0.1*math.Sqrt2, hit.Distance, 1e-4)
	assert.InDelta(t, 1, rl.Vector3Length(hit.Normal), 1e-5)
	assert.Greater(t, hit.Normal.Z, float32(0))
}

func TestRayOBBFromInside(t *testing.T) {
	box := NewAABBasOBB(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})

	hit, ok := RayOBB(rl.Vector3{}, rl.Vector3{X: 1}, box, 10)
	require.True(t, ok)
	assert.InDelta(t, 1, hit.Distance, 1e-5)
	assert.InDelta(t, 1, hit.Normal.X, 1e-5)
}

func TestWorldRaycastClosestAndIgnore(t *testing.T) {
	w := NewPhysicsWorld(0)
	near := newStatic("Near", rl.Vector3{Z: -3}, rl.Vector3{X: 1, Y: 1, Z: 1})
	far := newStatic("Far", rl.Vector3{Z: -6}, rl.Vector3{X: 1, Y: 1, Z: 1})
	w.AddObject(far)
	w.AddObject(near)

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Z: -2}, 20, nil)
	require.True(t, ok)
	assert.Same(t, near, hit.GameObject)
	assert.InDelta(t, 2.5, hit.Distance, 1e-5)

	hit, ok = w.Raycast(rl.Vector3{}, rl.Vector3{Z: -1}, 20, near)
	require.True(t, ok)
	assert.Same(t, far, hit.GameObject)

	near.Active = false
	far.Active = false
	_, ok = w.Raycast(rl.Vector3{}, rl.Vector3{Z: -1}, 20, nil)
	assert.False(t, ok)
}
