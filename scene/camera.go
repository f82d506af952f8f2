package scene

import (
	"math"

	"github.com/lixenwraith/longbow/parameter"
	"github.com/lixenwraith/longbow/vmath"
)

// Camera is the first-person rig; the bow hangs off it at a fixed socket
// Translation follows yaw only so looking up never lifts the player
type Camera struct {
	Position vmath.Vec3F
	Yaw      float64
	Pitch    float64

	pitchLimit float64
	socket     vmath.Transform
}

// NewCamera places the rig at pos facing world +Z
func NewCamera(pos vmath.Vec3F) *Camera {
	return &Camera{
		Position:   pos,
		pitchLimit: parameter.CameraPitchLimit,
		socket: vmath.Transform{
			Position: vmath.Vec3F{
				X: parameter.BowSocketRight,
				Y: parameter.BowSocketUp,
				Z: parameter.BowSocketForward,
			},
			Basis: vmath.YawBasis(parameter.BowSocketYaw),
		},
	}
}

// TranslateLocal moves along the rig's yaw-only right and forward axes
func (c *Camera) TranslateLocal(right, forward float64) {
	b := vmath.YawBasis(c.Yaw)
	c.Position = vmath.V3FAddScaled(c.Position, b.Right, right)
	c.Position = vmath.V3FAddScaled(c.Position, b.Forward, forward)
}

// Turn adds yaw and pitch; yaw wraps, pitch is clamped short of vertical
func (c *Camera) Turn(yaw, pitch float64) {
	c.Yaw = wrapAngle(c.Yaw + yaw)
	c.Pitch = math.Max(-c.pitchLimit, math.Min(c.Pitch+pitch, c.pitchLimit))
}

// Transform returns the rig's world pose
func (c *Camera) Transform() vmath.Transform {
	return vmath.Transform{
		Position: c.Position,
		Basis:    vmath.YawPitchBasis(c.Yaw, c.Pitch),
	}
}

// Aim returns the unit look direction
func (c *Camera) Aim() (vmath.Vec3F, bool) {
	t := c.Transform()
	if !t.Valid() {
		return vmath.Vec3F{}, false
	}
	return t.Basis.Forward, true
}

// Socket returns the bow muzzle's world transform
func (c *Camera) Socket() (vmath.Transform, bool) {
	t := c.Transform().Compose(c.socket)
	return t, t.Valid()
}

// wrapAngle maps a to (-pi, pi]
func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
