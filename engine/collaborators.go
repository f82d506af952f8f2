package engine

import (
	"github.com/lixenwraith/longbow/bow"
	"github.com/lixenwraith/longbow/physics"
	"github.com/lixenwraith/longbow/projectile"
	"github.com/lixenwraith/longbow/vmath"
)

// AimProvider reports the current look direction, sampled only at release
type AimProvider interface {
	Aim() (vmath.Vec3F, bool)
}

// SocketProvider reports the bow muzzle's world transform, sampled only at release
type SocketProvider interface {
	Socket() (vmath.Transform, bool)
}

// CameraRig is moved by the integrated velocity and turned by look intents
type CameraRig interface {
	physics.Translator
	Turn(yaw, pitch float64)
}

// AudioTrigger plays the release sound; must not block the tick
type AudioTrigger interface {
	PlayShot()
}

// Ambient is scene animation advanced with the simulation dt
type Ambient interface {
	Update(dt float64)
}

// Shot describes one successful release
type Shot struct {
	Frame      uint64
	SimTime    float64
	Power      float64
	Projectile projectile.Projectile
}

// Observer receives lifecycle notifications on the tick goroutine
// Implementations must return quickly; anything slow belongs on its own goroutine
type Observer interface {
	OnFire(shot Shot)
	OnFalseStart(power float64)
	OnCancel(power float64)
	OnEvict(ev projectile.Eviction)
}

// Observers fans notifications out in order
type Observers []Observer

func (o Observers) OnFire(shot Shot) {
	for _, ob := range o {
		ob.OnFire(shot)
	}
}

func (o Observers) OnFalseStart(power float64) {
	for _, ob := range o {
		ob.OnFalseStart(power)
	}
}

func (o Observers) OnCancel(power float64) {
	for _, ob := range o {
		ob.OnCancel(power)
	}
}

func (o Observers) OnEvict(ev projectile.Eviction) {
	for _, ob := range o {
		ob.OnEvict(ev)
	}
}

// Collaborators are the external parts a Simulation drives
// Skeleton is required; nil optional members are replaced with no-ops
type Collaborators struct {
	Rig      CameraRig
	Aim      AimProvider
	Socket   SocketProvider
	Skeleton bow.Skeleton
	Audio    AudioTrigger
	Ambient  Ambient
	Observer Observer
}

type nopRig struct{}

func (nopRig) TranslateLocal(float64, float64) {}
func (nopRig) Turn(float64, float64) {}

type nopAudio struct{}

func (nopAudio) PlayShot() {}

type nopAmbient struct{}

func (nopAmbient) Update(float64) {}

type nopObserver struct{}

func (nopObserver) OnFire(Shot) {}
func (nopObserver) OnFalseStart(float64) {}
func (nopObserver) OnCancel(float64) {}
func (nopObserver) OnEvict(projectile.Eviction) {}

type missingAim struct{}

func (missingAim) Aim() (vmath.Vec3F, bool) { return vmath.Vec3F{}, false }

type missingSocket struct{}

func (missingSocket) Socket() (vmath.Transform, bool) { return vmath.Transform{}, false }
