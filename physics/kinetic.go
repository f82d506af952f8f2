package physics

import "github.com/lixenwraith/longbow/vmath"

// Translator is anything that can move along its own yaw-only axes
type Translator interface {
	TranslateLocal(right, forward float64)
}

// Translate moves the rig by velocity*dt along its own right and forward axes
func Translate(rig Translator, v Velocity, dt float64) {
	if !(dt > 0) {
		return
	}
	rig.TranslateLocal(v.X*dt, v.Z*dt)
}

// Integrate returns position advanced along dir at speed for dt
func Integrate(pos, dir vmath.Vec3F, speed, dt float64) vmath.Vec3F {
	return vmath.V3FAddScaled(pos, dir, speed*dt)
}
