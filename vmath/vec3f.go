package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector for physics-heavy calculations
// Gameplay runs on X/Y; Z is a secondary axis used mostly for wrap
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FClampMag rescales v to maxMag if its magnitude exceeds it,
// preserving direction. Returns v unchanged otherwise
func V3FClampMag(v Vec3F, maxMag float64) Vec3F {
	magSq := V3FMagSq(v)
	if magSq <= maxMag*maxMag {
		return v
	}
	mag := math.Sqrt(magSq)
	if mag == 0 {
		return v
	}
	return V3FScale(v, maxMag/mag)
}

// DistSqXY returns squared distance between a and b on the gameplay plane
// Z is intentionally excluded; collision is a planar test
func DistSqXY(a, b Vec3F) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// FromAngle returns a unit vector on the X/Y plane for the given heading in radians
func FromAngle(rad float64) Vec3F {
	return Vec3F{X: math.Cos(rad), Y: math.Sin(rad)}
}
