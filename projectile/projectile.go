// Package projectile composes arrows at release and manages them in flight
package projectile

import "github.com/lixenwraith/longbow/vmath"

// Handle identifies a projectile's visual in the renderer
type Handle uint64

// Projectile is an arrow in flight
// Direction is fixed at spawn; there is no gravity or drag
type Projectile struct {
	Visual    Handle
	Direction vmath.Vec3F
	TTL       float64

	// Spawn is the launch pose captured at release
	Spawn vmath.Transform
	// Transform is the current pose, advanced every frame
	Transform vmath.Transform
}

// Position returns the current world position
func (p *Projectile) Position() vmath.Vec3F {
	return p.Transform.Position
}

// Expired reports whether the time-to-live has run out
func (p *Projectile) Expired() bool {
	return p.TTL <= 0
}

// EvictReason says why a projectile left the pool
type EvictReason uint8

const (
	// EvictCapacity removes the oldest projectile when the pool is over capacity
	EvictCapacity EvictReason = iota + 1
	// EvictExpired removes a projectile whose TTL reached zero
	EvictExpired
	// EvictCleared removes everything on reset
	EvictCleared
)

func (r EvictReason) String() string {
	switch r {
	case EvictCapacity:
		return "capacity"
	case EvictExpired:
		return "expired"
	case EvictCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Eviction pairs a removed projectile with its reason
type Eviction struct {
	Projectile *Projectile
	Reason     EvictReason
}
