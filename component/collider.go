package component

import (
	"math"

	"github.com/solvane/stardrift/vmath"
)

// ColliderShape selects the narrow-phase test for a collider
type ColliderShape uint8

const (
	ShapeSphere ColliderShape = iota
	ShapeBox
)

// Layer is a collision category an entity belongs to
type Layer uint8

const (
	LayerPlayer Layer = iota
	LayerAsteroid
	LayerBoss
	LayerProjectile
	LayerBossProjectile
	LayerPowerUp
)

// LayerMask is a bitset of layers a collider is willing to test against
type LayerMask uint32

// MaskOf builds a mask from the given layers
func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m |= 1 << l
	}
	return m
}

// Has reports whether layer l is part of the mask
func (m LayerMask) Has(l Layer) bool {
	return m&(1<<l) != 0
}

// ColliderComponent describes an entity's collision volume and filtering.
// A pair is only eligible when layer/mask agreement is mutual:
// mask(A) must contain layer(B) and mask(B) must contain layer(A)
type ColliderComponent struct {
	Shape   ColliderShape
	Radius  float64     // sphere radius
	Extents vmath.Vec3F // box half-extents, X/Y used
	Layer   Layer
	Mask    LayerMask
	Enabled bool
}

// BoundingRadius returns the broad-phase radius enclosing the collider,
// regardless of shape. Boxes use the half-diagonal of their X/Y extents
func (c ColliderComponent) BoundingRadius() float64 {
	if c.Shape == ShapeBox {
		return math.Sqrt(c.Extents.X*c.Extents.X + c.Extents.Y*c.Extents.Y)
	}
	return c.Radius
}
