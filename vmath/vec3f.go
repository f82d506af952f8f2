package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector used for world-space positions and directions
type Vec3F struct {
	X, Y, Z float64
}

// Axis constants in the right-handed, Y-up world frame
var (
	UnitX = Vec3F{1, 0, 0}
	UnitY = Vec3F{0, 1, 0}
	UnitZ = Vec3F{0, 0, 1}
)

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

// V3FAddScaled returns a + b*s without an intermediate allocation
func V3FAddScaled(a, b Vec3F, s float64) Vec3F {
	return Vec3F{a.X + b.X*s, a.Y + b.Y*s, a.Z + b.Z*s}
}

func V3FNeg(v Vec3F) Vec3F {
	return Vec3F{-v.X, -v.Y, -v.Z}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FCross(a, b Vec3F) Vec3F {
	return Vec3F{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
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

// V3FFinite reports whether every component is a finite number
func V3FFinite(v Vec3F) bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

// V3FApproxEqual compares component-wise within eps
func V3FApproxEqual(a, b Vec3F, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
