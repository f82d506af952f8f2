package projectile

import (
	"math"
	"testing"

	"github.com/lixenwraith/longbow/vmath"
)

func testShot(t *testing.T, c *Composer) Projectile {
	t.Helper()
	p, err := c.Compose(vmath.UnitZ, vmath.Identity())
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	return p
}

// TestPoolBurstEvictsOldest verifies a sixth shot with capacity 5 evicts the first
func TestPoolBurstEvictsOldest(t *testing.T) {
	c := NewComposer(DefaultLaunchTuning())
	pool := NewPool(DefaultPoolTuning())

	var first Handle
	var evicted []Eviction
	for i := 0; i < 6; i++ {
		shot := testShot(t, c)
		if i == 0 {
			first = shot.Visual
		}
		evicted = append(evicted, pool.Append(shot)...)
	}

	if pool.Len() != 5 {
		t.Fatalf("Expected 5 projectiles, got %d", pool.Len())
	}
	if len(evicted) != 1 {
		t.Fatalf("Expected exactly one eviction, got %d", len(evicted))
	}
	if evicted[0].Projectile.Visual != first || evicted[0].Reason != EvictCapacity {
		t.Errorf("Expected first shot evicted for capacity, got %d (%v)",
			evicted[0].Projectile.Visual, evicted[0].Reason)
	}

	// Newest first, strictly descending handles
	prev := Handle(math.MaxUint64)
	for p := range pool.All() {
		if p.Visual >= prev {
			t.Fatalf("Expected newest-first order, %d after %d", p.Visual, prev)
		}
		prev = p.Visual
	}
	if pool.At(0).Visual != first+5 {
		t.Errorf("Expected newest at head, got %d", pool.At(0).Visual)
	}
}

// TestPoolTTLExpiry verifies ttl 500 at decay 100 survives 19 quarter-second ticks and expires on the 20th
func TestPoolTTLExpiry(t *testing.T) {
	c := NewComposer(DefaultLaunchTuning())
	pool := NewPool(DefaultPoolTuning())
	pool.Append(testShot(t, c))

	for tick := 1; tick <= 19; tick++ {
		pool.Advance(0.25)
		if ev := pool.EvictExpired(); len(ev) != 0 {
			t.Fatalf("Unexpected expiry on tick %d", tick)
		}
	}
	if pool.Len() != 1 {
		t.Fatalf("Expected projectile alive after 19 ticks, got %d", pool.Len())
	}
	if ttl := pool.At(0).TTL; ttl != 25 {
		t.Errorf("Expected ttl 25, got %f", ttl)
	}

	pool.Advance(0.25)
	ev := pool.EvictExpired()
	if len(ev) != 1 || ev[0].Reason != EvictExpired {
		t.Fatalf("Expected one expiry on tick 20, got %v", ev)
	}
	if pool.Len() != 0 {
		t.Errorf("Expected empty pool, got %d", pool.Len())
	}
}

// TestPoolAdvanceMovesAlongDirection verifies linear flight at the configured speed
func TestPoolAdvanceMovesAlongDirection(t *testing.T) {
	c := NewComposer(DefaultLaunchTuning())
	pool := NewPool(DefaultPoolTuning())
	pool.Append(testShot(t, c))

	start := pool.At(0).Position()
	pool.Advance(0.5)
	got := pool.At(0).Position()

	want := vmath.V3FAdd(start, vmath.Vec3F{Z: 50})
	if !vmath.V3FApproxEqual(got, want, 1e-9) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if pool.At(0).Spawn.Position != start {
		t.Error("Expected spawn pose to stay fixed")
	}
}

// TestPoolAdvanceEnforcesCapacity verifies a lowered capacity is applied before movement
func TestPoolAdvanceEnforcesCapacity(t *testing.T) {
	c := NewComposer(DefaultLaunchTuning())
	pool := NewPool(DefaultPoolTuning())
	for i := 0; i < 5; i++ {
		pool.Append(testShot(t, c))
	}
	newest := pool.At(0).Visual

	pool.SetCapacity(2)
	ev := pool.Advance(0.016)
	if len(ev) != 3 {
		t.Fatalf("Expected 3 capacity evictions, got %d", len(ev))
	}
	for _, e := range ev {
		if e.Reason != EvictCapacity {
			t.Errorf("Expected capacity reason, got %v", e.Reason)
		}
	}
	if pool.Len() != 2 || pool.At(0).Visual != newest {
		t.Errorf("Expected the 2 newest to survive, got len %d head %d", pool.Len(), pool.At(0).Visual)
	}
}

// TestPoolEvictExpiredPreservesOrder verifies survivors keep relative order
func TestPoolEvictExpiredPreservesOrder(t *testing.T) {
	c := NewComposer(DefaultLaunchTuning())
	pool := NewPool(DefaultPoolTuning())
	for i := 0; i < 5; i++ {
		pool.Append(testShot(t, c))
	}
	pool.At(1).TTL = 0
	pool.At(3).TTL = -4
	want := []Handle{pool.At(0).Visual, pool.At(2).Visual, pool.At(4).Visual}

	ev := pool.EvictExpired()
	if len(ev) != 2 {
		t.Fatalf("Expected 2 expiries, got %d", len(ev))
	}

	var got []Handle
	for p := range pool.All() {
		got = append(got, p.Visual)
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, got)
			break
		}
	}
}

func TestPoolAdvanceIgnoresNonPositiveDt(t *testing.T) {
	c := NewComposer(DefaultLaunchTuning())
	pool := NewPool(DefaultPoolTuning())
	pool.Append(testShot(t, c))
	before := *pool.At(0)

	pool.Advance(0)
	pool.Advance(-1)
	pool.Advance(math.NaN())

	if pool.At(0).TTL != before.TTL || pool.At(0).Position() != before.Position() {
		t.Error("Expected no change for non-positive dt")
	}
}

func TestPoolClear(t *testing.T) {
	c := NewComposer(DefaultLaunchTuning())
	pool := NewPool(DefaultPoolTuning())
	pool.Append(testShot(t, c))
	pool.Append(testShot(t, c))

	ev := pool.Clear()
	if len(ev) != 2 || ev[0].Reason != EvictCleared {
		t.Errorf("Expected 2 cleared evictions, got %v", ev)
	}
	if pool.Len() != 0 {
		t.Errorf("Expected empty pool, got %d", pool.Len())
	}
}
