package vmath

import "math"

// Basis is an orthonormal frame; Forward is the local +Z axis an object points along
type Basis struct {
	Right, Up, Forward Vec3F
}

// IdentityBasis has Forward on world +Z
var IdentityBasis = Basis{Right: UnitX, Up: UnitY, Forward: UnitZ}

// Transform is a world-space pose: position plus orientation
type Transform struct {
	Position Vec3F
	Basis    Basis
}

// Identity returns a transform at the origin with identity orientation
func Identity() Transform {
	return Transform{Basis: IdentityBasis}
}

// LookRotation builds a basis whose Forward points along dir
// Falls back to world Z as the reference up when dir is parallel to up
// Returns false for a zero or non-finite dir
func LookRotation(dir, up Vec3F) (Basis, bool) {
	if !V3FFinite(dir) || V3FMagSq(dir) == 0 {
		return Basis{}, false
	}
	f := V3FNormalize(dir)

	r := V3FCross(up, f)
	if V3FMagSq(r) < 1e-12 {
		r = V3FCross(UnitZ, f)
		if V3FMagSq(r) < 1e-12 {
			r = V3FCross(UnitX, f)
		}
	}
	r = V3FNormalize(r)
	u := V3FCross(f, r)

	return Basis{Right: r, Up: u, Forward: f}, true
}

// LookAt orients t so its Forward faces target, keeping its position
func (t *Transform) LookAt(target, up Vec3F) bool {
	b, ok := LookRotation(V3FSub(target, t.Position), up)
	if !ok {
		return false
	}
	t.Basis = b
	return true
}

// ToWorld maps a local-space offset (right, up, forward) into world space
func (b Basis) ToWorld(local Vec3F) Vec3F {
	w := V3FScale(b.Right, local.X)
	w = V3FAddScaled(w, b.Up, local.Y)
	return V3FAddScaled(w, b.Forward, local.Z)
}

// TranslateLocal moves t along its own axes by a local offset
func (t *Transform) TranslateLocal(local Vec3F) {
	t.Position = V3FAdd(t.Position, t.Basis.ToWorld(local))
}

// TranslateForward moves t along its own Forward axis
func (t *Transform) TranslateForward(dist float64) {
	t.Position = V3FAddScaled(t.Position, t.Basis.Forward, dist)
}

// Compose returns the world transform of a child posed at local relative to t
func (t Transform) Compose(local Transform) Transform {
	return Transform{
		Position: V3FAdd(t.Position, t.Basis.ToWorld(local.Position)),
		Basis: Basis{
			Right:   t.Basis.ToWorld(local.Basis.Right),
			Up:      t.Basis.ToWorld(local.Basis.Up),
			Forward: t.Basis.ToWorld(local.Basis.Forward),
		},
	}
}

// Valid reports whether the transform has finite values and a non-degenerate basis
func (t Transform) Valid() bool {
	if !V3FFinite(t.Position) {
		return false
	}
	f := V3FMagSq(t.Basis.Forward)
	return V3FFinite(t.Basis.Forward) && math.Abs(f-1) < 1e-6
}

// YawBasis returns the rotation of angle yaw (radians) about world Y
// Yaw 0 faces world +Z
func YawBasis(yaw float64) Basis {
	s, c := math.Sincos(yaw)
	return Basis{
		Right:   Vec3F{c, 0, -s},
		Up:      UnitY,
		Forward: Vec3F{s, 0, c},
	}
}

// YawPitchBasis applies pitch (radians, positive looks up) after yaw
func YawPitchBasis(yaw, pitch float64) Basis {
	sy, cy := math.Sincos(yaw)
	sp, cp := math.Sincos(pitch)
	right := Vec3F{cy, 0, -sy}
	forward := Vec3F{sy * cp, sp, cy * cp}
	return Basis{
		Right:   right,
		Up:      V3FCross(forward, right),
		Forward: forward,
	}
}
