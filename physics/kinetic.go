package physics

import (
	"math"

	"github.com/solvane/stardrift/component"
	"github.com/solvane/stardrift/vmath"
)

// Integrate advances position and rotation by velocity over dtSec seconds:
// p = p + v*dt on both the linear and angular components
func Integrate(t *component.TransformComponent, v component.VelocityComponent, dtSec float64) {
	t.Position = vmath.V3FAdd(t.Position, vmath.V3FScale(v.Linear, dtSec))
	t.Rotation = vmath.V3FAdd(t.Rotation, vmath.V3FScale(v.Angular, dtSec))
}

// Damp applies the exponential decay law v *= damping^dt to the linear
// and angular components independently. The power form keeps the decay
// frame-rate independent: per-second retention k over elapsed seconds t
// always yields a k^t multiplier
func Damp(v *component.VelocityComponent, linearDamping, angularDamping, dtSec float64) {
	v.Linear = vmath.V3FScale(v.Linear, math.Pow(linearDamping, dtSec))
	v.Angular = vmath.V3FScale(v.Angular, math.Pow(angularDamping, dtSec))
}

// CapSpeed limits linear and angular magnitude independently,
// preserving direction. A maxSpeed of 0 disables the cap
func CapSpeed(v *component.VelocityComponent, maxSpeed float64) {
	if maxSpeed <= 0 {
		return
	}
	v.Linear = vmath.V3FClampMag(v.Linear, maxSpeed)
	v.Angular = vmath.V3FClampMag(v.Angular, maxSpeed)
}

// WrapAxis wraps one coordinate toroidally at its half-extent: crossing
// an edge teleports to the opposite edge, velocity untouched
// A non-positive half-extent leaves the coordinate alone
func WrapAxis(pos, halfExtent float64) float64 {
	if halfExtent <= 0 {
		return pos
	}
	if pos > halfExtent {
		return -halfExtent
	}
	if pos < -halfExtent {
		return halfExtent
	}
	return pos
}

// Wrap applies WrapAxis to each position axis independently
func Wrap(pos vmath.Vec3F, halfW, halfH, halfD float64) vmath.Vec3F {
	return vmath.Vec3F{
		X: WrapAxis(pos.X, halfW),
		Y: WrapAxis(pos.Y, halfH),
		Z: WrapAxis(pos.Z, halfD),
	}
}
