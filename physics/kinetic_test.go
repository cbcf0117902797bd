package physics

import (
	"math"
	"testing"

	"github.com/solvane/stardrift/component"
	"github.com/solvane/stardrift/vmath"
)

func TestIntegrate(t *testing.T) {
	tr := component.TransformComponent{Position: vmath.Vec3F{X: 10, Y: 20}}
	v := component.VelocityComponent{
		Linear:  vmath.Vec3F{X: 4, Y: -2},
		Angular: vmath.Vec3F{Z: 1},
	}

	Integrate(&tr, v, 0.5)

	if tr.Position.X != 12 || tr.Position.Y != 19 {
		t.Errorf("unexpected position after integration: %+v", tr.Position)
	}
	if tr.Rotation.Z != 0.5 {
		t.Errorf("unexpected rotation after integration: %v", tr.Rotation.Z)
	}
}

func TestDampExponentialLaw(t *testing.T) {
	// Per-second retention 0.99 over one second multiplies speed by exactly 0.99
	v := component.VelocityComponent{Linear: vmath.Vec3F{X: 100}}
	Damp(&v, 0.99, 0.99, 1.0)
	if math.Abs(v.Linear.X-99) > 1e-9 {
		t.Errorf("expected 99 after one second at k=0.99, got %v", v.Linear.X)
	}
}

func TestDampFrameRateIndependent(t *testing.T) {
	// Sixty 1/60s steps must land where a single 1s step lands
	stepped := component.VelocityComponent{Linear: vmath.Vec3F{X: 100}}
	for i := 0; i < 60; i++ {
		Damp(&stepped, 0.5, 0.5, 1.0/60.0)
	}
	whole := component.VelocityComponent{Linear: vmath.Vec3F{X: 100}}
	Damp(&whole, 0.5, 0.5, 1.0)

	if math.Abs(stepped.Linear.X-whole.Linear.X) > 1e-6 {
		t.Errorf("damping depends on step size: %v vs %v", stepped.Linear.X, whole.Linear.X)
	}
}

func TestDampIndependentComponents(t *testing.T) {
	v := component.VelocityComponent{
		Linear:  vmath.Vec3F{X: 10},
		Angular: vmath.Vec3F{Z: 10},
	}
	Damp(&v, 0.5, 1.0, 1.0)
	if math.Abs(v.Linear.X-5) > 1e-9 {
		t.Errorf("linear damping not applied: %v", v.Linear.X)
	}
	if v.Angular.Z != 10 {
		t.Errorf("angular velocity must be untouched at k=1: %v", v.Angular.Z)
	}
}

func TestCapSpeed(t *testing.T) {
	v := component.VelocityComponent{Linear: vmath.Vec3F{X: 30, Y: 40}}
	CapSpeed(&v, 25)

	if mag := vmath.V3FMag(v.Linear); math.Abs(mag-25) > 1e-9 {
		t.Errorf("expected magnitude 25, got %v", mag)
	}
	// Direction preserved: 3-4-5 triangle scaled down
	if math.Abs(v.Linear.X-15) > 1e-9 || math.Abs(v.Linear.Y-20) > 1e-9 {
		t.Errorf("cap changed direction: %+v", v.Linear)
	}
}

func TestCapSpeedDisabled(t *testing.T) {
	v := component.VelocityComponent{Linear: vmath.Vec3F{X: 1000}}
	CapSpeed(&v, 0)
	if v.Linear.X != 1000 {
		t.Errorf("zero max speed must disable the cap: %v", v.Linear.X)
	}
}

func TestWrapAxis(t *testing.T) {
	if got := WrapAxis(401, 400); got != -400 {
		t.Errorf("crossing +half must land at -half, got %v", got)
	}
	if got := WrapAxis(-401, 400); got != 400 {
		t.Errorf("crossing -half must land at +half, got %v", got)
	}
	if got := WrapAxis(400, 400); got != 400 {
		t.Errorf("sitting exactly on the edge must not wrap, got %v", got)
	}
	if got := WrapAxis(123, 400); got != 123 {
		t.Errorf("interior position must pass through, got %v", got)
	}
	if got := WrapAxis(999, 0); got != 999 {
		t.Errorf("non-positive extent must disable wrapping, got %v", got)
	}
}

func TestWrapPerAxis(t *testing.T) {
	pos := Wrap(vmath.Vec3F{X: 500, Y: -300, Z: 10}, 400, 240, 50)
	if pos.X != -400 {
		t.Errorf("X must wrap, got %v", pos.X)
	}
	if pos.Y != 240 {
		t.Errorf("Y crossed -half and must wrap to +half, got %v", pos.Y)
	}
	if pos.Z != 10 {
		t.Errorf("interior Z must pass through, got %v", pos.Z)
	}
}
