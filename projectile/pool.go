package projectile

import (
	"iter"

	"github.com/lixenwraith/longbow/parameter"
	"github.com/lixenwraith/longbow/physics"
)

// PoolTuning holds pool limits and flight constants
type PoolTuning struct {
	Capacity  int
	Speed     float64
	DecayRate float64
}

// DefaultPoolTuning returns the stock pool settings
func DefaultPoolTuning() PoolTuning {
	return PoolTuning{
		Capacity:  parameter.MaxProjectiles,
		Speed:     parameter.ProjectileSpeed,
		DecayRate: parameter.ProjectileDecayRate,
	}
}

// Pool is an insertion-ordered set of in-flight projectiles, newest first
// Capacity eviction always removes from the tail (oldest)
type Pool struct {
	tuning PoolTuning
	items  []*Projectile
}

// NewPool creates an empty pool; capacity below 1 is raised to 1
func NewPool(tuning PoolTuning) *Pool {
	if tuning.Capacity < 1 {
		tuning.Capacity = 1
	}
	return &Pool{
		tuning: tuning,
		items:  make([]*Projectile, 0, tuning.Capacity+1),
	}
}

// Len returns the number of in-flight projectiles
func (p *Pool) Len() int { return len(p.items) }

// Capacity returns the configured maximum
func (p *Pool) Capacity() int { return p.tuning.Capacity }

// SetCapacity changes the maximum; excess is evicted on the next Append or Advance
func (p *Pool) SetCapacity(n int) {
	if n < 1 {
		n = 1
	}
	p.tuning.Capacity = n
}

// At returns the i-th projectile, 0 being the newest
func (p *Pool) At(i int) *Projectile { return p.items[i] }

// All yields projectiles newest first
func (p *Pool) All() iter.Seq[*Projectile] {
	return func(yield func(*Projectile) bool) {
		for _, it := range p.items {
			if !yield(it) {
				return
			}
		}
	}
}

// Append inserts proj at the head and enforces capacity
func (p *Pool) Append(proj Projectile) []Eviction {
	it := &proj
	p.items = append(p.items, nil)
	copy(p.items[1:], p.items)
	p.items[0] = it
	return p.enforceCapacity(nil)
}

// enforceCapacity drops from the tail until the pool fits, however far over it is
func (p *Pool) enforceCapacity(out []Eviction) []Eviction {
	for len(p.items) > p.tuning.Capacity {
		last := len(p.items) - 1
		out = append(out, Eviction{Projectile: p.items[last], Reason: EvictCapacity})
		p.items[last] = nil
		p.items = p.items[:last]
	}
	return out
}

// Advance enforces capacity, then moves every projectile along its fixed
// direction and ages it by DecayRate*dt
func (p *Pool) Advance(dt float64) []Eviction {
	out := p.enforceCapacity(nil)
	if !(dt > 0) {
		return out
	}

	decay := p.tuning.DecayRate * dt
	for _, it := range p.items {
		it.Transform.Position = physics.Integrate(it.Transform.Position, it.Direction, p.tuning.Speed, dt)
		it.TTL -= decay
	}
	return out
}

// EvictExpired removes every projectile with TTL <= 0, preserving survivor order
func (p *Pool) EvictExpired() []Eviction {
	var out []Eviction

	// Collect first, compact second
	for _, it := range p.items {
		if it.Expired() {
			out = append(out, Eviction{Projectile: it, Reason: EvictExpired})
		}
	}
	if len(out) == 0 {
		return nil
	}

	kept := p.items[:0]
	for _, it := range p.items {
		if !it.Expired() {
			kept = append(kept, it)
		}
	}
	clear(p.items[len(kept):])
	p.items = kept

	return out
}

// Clear removes everything
func (p *Pool) Clear() []Eviction {
	out := make([]Eviction, 0, len(p.items))
	for _, it := range p.items {
		out = append(out, Eviction{Projectile: it, Reason: EvictCleared})
	}
	clear(p.items)
	p.items = p.items[:0]
	return out
}
