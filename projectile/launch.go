package projectile

import (
	"errors"
	"sync/atomic"

	"github.com/lixenwraith/longbow/parameter"
	"github.com/lixenwraith/longbow/vmath"
)

var (
	// ErrNoAim is returned for a missing, zero or non-finite aim direction
	ErrNoAim = errors.New("aim direction unavailable")
	// ErrNoSocket is returned for a missing or degenerate weapon socket transform
	ErrNoSocket = errors.New("weapon socket unavailable")
)

// LaunchTuning holds composer settings
type LaunchTuning struct {
	TTL         float64
	SpawnOffset float64
}

// DefaultLaunchTuning returns the stock launch settings
func DefaultLaunchTuning() LaunchTuning {
	return LaunchTuning{
		TTL:         parameter.ProjectileTTL,
		SpawnOffset: parameter.ProjectileSpawnOffset,
	}
}

// Composer builds projectiles from the aim and socket sampled at release
// It keeps no per-shot state; the handle counter only makes visuals unique
type Composer struct {
	tuning  LaunchTuning
	handles atomic.Uint64
}

// NewComposer creates a composer
func NewComposer(tuning LaunchTuning) *Composer {
	return &Composer{tuning: tuning}
}

// Compose returns a fully formed projectile or an error, never a partial one
func (c *Composer) Compose(aim vmath.Vec3F, socket vmath.Transform) (Projectile, error) {
	if !vmath.V3FFinite(aim) || vmath.V3FMagSq(aim) == 0 {
		return Projectile{}, ErrNoAim
	}
	if !socket.Valid() {
		return Projectile{}, ErrNoSocket
	}

	dir := vmath.V3FNormalize(aim)

	// Spawn at the socket, oriented so Forward faces position+dir, then pushed
	// along that Forward to clear the bow mesh
	t := vmath.Transform{Position: socket.Position}
	if !t.LookAt(vmath.V3FAdd(t.Position, dir), vmath.UnitY) {
		return Projectile{}, ErrNoAim
	}
	t.TranslateForward(c.tuning.SpawnOffset)

	return Projectile{
		Visual:    Handle(c.handles.Add(1)),
		Direction: dir,
		TTL:       c.tuning.TTL,
		Spawn:     t,
		Transform: t,
	}, nil
}
