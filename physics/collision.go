package physics

import (
	"math"

	"github.com/solvane/stardrift/component"
	"github.com/solvane/stardrift/vmath"
)

// Narrow-phase geometric tests. All tests are planar: Z never participates.
// Overlap is strict everywhere: entities exactly touching do not collide

// SpheresCollide reports whether two circles overlap
// Colliding iff center distance is strictly less than r1+r2
func SpheresCollide(posA, posB vmath.Vec3F, r1, r2 float64) (float64, bool) {
	distSq := vmath.DistSqXY(posA, posB)
	sum := r1 + r2
	if distSq >= sum*sum {
		return 0, false
	}
	return math.Sqrt(distSq), true
}

// CircleBoxCollide tests a circle against an axis-aligned box by clamping
// the circle center to the box and comparing the residual distance to the
// circle radius
func CircleBoxCollide(circlePos vmath.Vec3F, radius float64, boxPos vmath.Vec3F, extents vmath.Vec3F) (float64, bool) {
	cx := clamp(circlePos.X, boxPos.X-extents.X, boxPos.X+extents.X)
	cy := clamp(circlePos.Y, boxPos.Y-extents.Y, boxPos.Y+extents.Y)

	dx := circlePos.X - cx
	dy := circlePos.Y - cy
	distSq := dx*dx + dy*dy
	if distSq >= radius*radius {
		return 0, false
	}
	return math.Sqrt(vmath.DistSqXY(circlePos, boxPos)), true
}

// BoxesCollide tests two axis-aligned boxes for strict overlap
func BoxesCollide(posA, extA, posB, extB vmath.Vec3F) (float64, bool) {
	if math.Abs(posA.X-posB.X) >= extA.X+extB.X {
		return 0, false
	}
	if math.Abs(posA.Y-posB.Y) >= extA.Y+extB.Y {
		return 0, false
	}
	return math.Sqrt(vmath.DistSqXY(posA, posB)), true
}

// Collide dispatches the exact test for the two collider shapes
// The returned distance is between entity centers on the gameplay plane
func Collide(posA vmath.Vec3F, colA component.ColliderComponent, posB vmath.Vec3F, colB component.ColliderComponent) (float64, bool) {
	switch {
	case colA.Shape == component.ShapeSphere && colB.Shape == component.ShapeSphere:
		return SpheresCollide(posA, posB, colA.Radius, colB.Radius)
	case colA.Shape == component.ShapeSphere && colB.Shape == component.ShapeBox:
		return CircleBoxCollide(posA, colA.Radius, posB, colB.Extents)
	case colA.Shape == component.ShapeBox && colB.Shape == component.ShapeSphere:
		return CircleBoxCollide(posB, colB.Radius, posA, colA.Extents)
	default:
		return BoxesCollide(posA, colA.Extents, posB, colB.Extents)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
