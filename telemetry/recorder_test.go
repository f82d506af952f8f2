package telemetry

import (
	"testing"

	"go.opentelemetry.io/otel/metric/noop"

	"github.com/lixenwraith/longbow/engine"
	"github.com/lixenwraith/longbow/projectile"
)

func TestRecorderCountsLifecycle(t *testing.T) {
	r, err := NewWithMeter(noop.Meter{}, func() int { return 3 })
	if err != nil {
		t.Fatalf("NewWithMeter failed: %v", err)
	}

	r.OnFire(engine.Shot{Power: 96})
	r.OnFire(engine.Shot{Power: 72})
	r.OnFalseStart(40)
	r.OnCancel(88)
	r.OnEvict(projectile.Eviction{Reason: projectile.EvictExpired})
	r.OnEvict(projectile.Eviction{Reason: projectile.EvictCapacity})
	r.OnEvict(projectile.Eviction{Reason: projectile.EvictCleared})

	s := r.Stats()
	if s.Shots != 2 {
		t.Errorf("Expected 2 shots, got %d", s.Shots)
	}
	if s.FalseStarts != 1 || s.Cancels != 1 {
		t.Errorf("Expected 1 false start and 1 cancel, got %d and %d", s.FalseStarts, s.Cancels)
	}
	if s.Expired != 1 || s.Displaced != 1 {
		t.Errorf("Expected 1 expired and 1 displaced, got %d and %d", s.Expired, s.Displaced)
	}
	if s.LastPower != 40 {
		t.Errorf("Expected last power 40, got %f", s.LastPower)
	}
}

// TestRecorderGlobalMeter verifies the default provider works without an SDK installed
func TestRecorderGlobalMeter(t *testing.T) {
	r, err := New(nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	r.OnFire(engine.Shot{Power: 60})
	if r.Stats().Shots != 1 {
		t.Errorf("Expected 1 shot, got %d", r.Stats().Shots)
	}
}
