package component

import (
	"github.com/solvane/stardrift/vmath"
)

// VelocityComponent holds linear and angular rates in units per second
type VelocityComponent struct {
	Linear  vmath.Vec3F
	Angular vmath.Vec3F
}
