package physics

import (
	"math"
	"testing"

	"github.com/solvane/stardrift/component"
	"github.com/solvane/stardrift/vmath"
)

func TestSpheresCollideStrictInequality(t *testing.T) {
	a := vmath.Vec3F{X: 0, Y: 0}

	// r1=20, r2=20: touching at d=40 is not a collision, d=39 is
	if _, hit := SpheresCollide(a, vmath.Vec3F{X: 40, Y: 0}, 20, 20); hit {
		t.Error("exactly touching spheres must not collide")
	}
	dist, hit := SpheresCollide(a, vmath.Vec3F{X: 39, Y: 0}, 20, 20)
	if !hit {
		t.Error("overlapping spheres must collide")
	}
	if math.Abs(dist-39) > 1e-9 {
		t.Errorf("expected distance 39, got %v", dist)
	}
}

func TestSpheresCollideIgnoresZ(t *testing.T) {
	a := vmath.Vec3F{X: 0, Y: 0, Z: 0}
	b := vmath.Vec3F{X: 10, Y: 0, Z: 500}

	if _, hit := SpheresCollide(a, b, 10, 10); !hit {
		t.Error("Z separation must not prevent a planar collision")
	}
}

func TestCircleBoxCollide(t *testing.T) {
	box := vmath.Vec3F{X: 0, Y: 0}
	ext := vmath.Vec3F{X: 10, Y: 10}

	// Circle center 12 units right of a box edge at x=10, radius 3: gap of 2
	if _, hit := CircleBoxCollide(vmath.Vec3F{X: 15, Y: 0}, 3, box, ext); hit {
		t.Error("separated circle and box must not collide")
	}

	// Radius 6 closes the gap
	if _, hit := CircleBoxCollide(vmath.Vec3F{X: 15, Y: 0}, 6, box, ext); !hit {
		t.Error("overlapping circle and box must collide")
	}

	// Touching exactly: gap == radius, strict test says no
	if _, hit := CircleBoxCollide(vmath.Vec3F{X: 15, Y: 0}, 5, box, ext); hit {
		t.Error("circle exactly touching box edge must not collide")
	}

	// Circle center inside the box always collides
	if _, hit := CircleBoxCollide(vmath.Vec3F{X: 2, Y: 3}, 1, box, ext); !hit {
		t.Error("circle inside box must collide")
	}
}

func TestBoxesCollide(t *testing.T) {
	extA := vmath.Vec3F{X: 5, Y: 5}
	extB := vmath.Vec3F{X: 5, Y: 5}

	if _, hit := BoxesCollide(vmath.Vec3F{X: 0, Y: 0}, extA, vmath.Vec3F{X: 10, Y: 0}, extB); hit {
		t.Error("edge-touching boxes must not collide")
	}
	if _, hit := BoxesCollide(vmath.Vec3F{X: 0, Y: 0}, extA, vmath.Vec3F{X: 9, Y: 0}, extB); !hit {
		t.Error("overlapping boxes must collide")
	}
	if _, hit := BoxesCollide(vmath.Vec3F{X: 0, Y: 0}, extA, vmath.Vec3F{X: 9, Y: 20}, extB); hit {
		t.Error("boxes separated on Y must not collide")
	}
}

func TestCollideDispatch(t *testing.T) {
	sphere := component.ColliderComponent{Shape: component.ShapeSphere, Radius: 5}
	box := component.ColliderComponent{Shape: component.ShapeBox, Extents: vmath.Vec3F{X: 5, Y: 5}}

	origin := vmath.Vec3F{}
	near := vmath.Vec3F{X: 7, Y: 0}

	if _, hit := Collide(origin, sphere, near, sphere); !hit {
		t.Error("sphere/sphere dispatch failed")
	}
	if _, hit := Collide(origin, sphere, near, box); !hit {
		t.Error("sphere/box dispatch failed")
	}
	if _, hit := Collide(origin, box, near, sphere); !hit {
		t.Error("box/sphere dispatch failed")
	}
	if _, hit := Collide(origin, box, near, box); !hit {
		t.Error("box/box dispatch failed")
	}
}
