package systems

import (
	"math"
	"testing"
	"time"

	"github.com/solvane/stardrift/component"
	"github.com/solvane/stardrift/core"
	"github.com/solvane/stardrift/engine"
	"github.com/solvane/stardrift/vmath"
)

func addMover(w *engine.World, pos, vel vmath.Vec3F, phys component.PhysicsComponent) core.Entity {
	e := w.CreateEntity()
	w.Components.Transforms.Add(e, component.TransformComponent{Position: pos})
	w.Components.Velocities.Add(e, component.VelocityComponent{Linear: vel})
	w.Components.Physics.Add(e, phys)
	return e
}

func TestPhysicsSystemMovesEntities(t *testing.T) {
	w := engine.NewWorld()
	e := addMover(w, vmath.Vec3F{X: 0}, vmath.Vec3F{X: 100},
		component.PhysicsComponent{LinearDamping: 1, AngularDamping: 1})

	NewPhysicsSystem(400, 240, 50).Update(w, time.Second)

	transform, _ := w.Components.Transforms.Get(e)
	if math.Abs(transform.Position.X-100) > 1e-9 {
		t.Errorf("expected x=100 after one second at v=100, got %v", transform.Position.X)
	}
}

func TestPhysicsSystemDampsVelocity(t *testing.T) {
	w := engine.NewWorld()
	e := addMover(w, vmath.Vec3F{}, vmath.Vec3F{X: 100},
		component.PhysicsComponent{LinearDamping: 0.5, AngularDamping: 0.5})

	NewPhysicsSystem(400, 240, 50).Update(w, time.Second)

	velocity, _ := w.Components.Velocities.Get(e)
	if math.Abs(velocity.Linear.X-50) > 1e-9 {
		t.Errorf("expected v=50 after one second at k=0.5, got %v", velocity.Linear.X)
	}
}

func TestPhysicsSystemWraps(t *testing.T) {
	w := engine.NewWorld()
	e := addMover(w, vmath.Vec3F{X: 395}, vmath.Vec3F{X: 100},
		component.PhysicsComponent{LinearDamping: 1, AngularDamping: 1, WrapScreen: true})

	NewPhysicsSystem(400, 240, 50).Update(w, time.Second)

	transform, _ := w.Components.Transforms.Get(e)
	if transform.Position.X != -400 {
		t.Errorf("crossing the right edge must wrap to the left, got %v", transform.Position.X)
	}
}

func TestPhysicsSystemNoWrapWithoutFlag(t *testing.T) {
	w := engine.NewWorld()
	e := addMover(w, vmath.Vec3F{X: 395}, vmath.Vec3F{X: 100},
		component.PhysicsComponent{LinearDamping: 1, AngularDamping: 1})

	NewPhysicsSystem(400, 240, 50).Update(w, time.Second)

	transform, _ := w.Components.Transforms.Get(e)
	if math.Abs(transform.Position.X-495) > 1e-9 {
		t.Errorf("non-wrapping entity must leave the field freely, got %v", transform.Position.X)
	}
}

func TestPhysicsSystemSkipsZeroDt(t *testing.T) {
	w := engine.NewWorld()
	e := addMover(w, vmath.Vec3F{X: 10}, vmath.Vec3F{X: 100},
		component.PhysicsComponent{LinearDamping: 0.5, AngularDamping: 0.5})

	NewPhysicsSystem(400, 240, 50).Update(w, 0)

	transform, _ := w.Components.Transforms.Get(e)
	velocity, _ := w.Components.Velocities.Get(e)
	if transform.Position.X != 10 || velocity.Linear.X != 100 {
		t.Error("zero dt must leave all state untouched")
	}
}
