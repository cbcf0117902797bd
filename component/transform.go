package component

import (
	"github.com/solvane/stardrift/vmath"
)

// TransformComponent places an entity in the world
// X/Y drive gameplay; Z is a secondary wrap axis
type TransformComponent struct {
	Position vmath.Vec3F
	Rotation vmath.Vec3F
	Scale    vmath.Vec3F
}
