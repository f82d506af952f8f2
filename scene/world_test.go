package scene

import (
	"math"
	"reflect"
	"testing"

	"github.com/lixenwraith/longbow/vmath"
)

// TestPopulateRing verifies trees sit evenly on the ring with an orb above each
func TestPopulateRing(t *testing.T) {
	layout := DefaultLayout()
	w := Populate(layout, 42)

	if len(w.Trees) != 6 || len(w.Orbs) != 6 {
		t.Fatalf("Expected 6 trees and orbs, got %d and %d", len(w.Trees), len(w.Orbs))
	}
	for i, tr := range w.Trees {
		r := math.Hypot(tr.Position.X, tr.Position.Z)
		if math.Abs(r-100) > 1e-9 {
			t.Errorf("Tree %d: expected radius 100, got %f", i, r)
		}
		if tr.Yaw < 0 || tr.Yaw >= 2*math.Pi {
			t.Errorf("Tree %d: yaw out of range: %f", i, tr.Yaw)
		}

		o := w.Orbs[i]
		if !vmath.V3FApproxEqual(o.Position, vmath.Vec3F{X: tr.Position.X, Y: 60, Z: tr.Position.Z}, 1e-12) {
			t.Errorf("Orb %d: expected above tree, got %v", i, o.Position)
		}
		for _, s := range []float64{o.Spin.X, o.Spin.Y, o.Spin.Z} {
			if s < 0 || s >= 5 {
				t.Errorf("Orb %d: spin out of range: %f", i, s)
			}
		}
	}

	// Adjacent trees are 60 degrees apart
	a := math.Atan2(w.Trees[1].Position.Z, w.Trees[1].Position.X)
	if math.Abs(a-math.Pi/3) > 1e-9 {
		t.Errorf("Expected second tree at pi/3, got %f", a)
	}
}

func TestPopulateDeterministic(t *testing.T) {
	a := Populate(DefaultLayout(), 7)
	b := Populate(DefaultLayout(), 7)
	if !reflect.DeepEqual(a, b) {
		t.Error("Expected identical worlds for the same seed")
	}
}

func TestWorldUpdate(t *testing.T) {
	w := Populate(DefaultLayout(), 1)

	w.Update(0.1)
	if math.Abs(w.Marker.Yaw-1) > 1e-12 {
		t.Errorf("Expected marker yaw 1 after 0.1s at 10 rad/s, got %f", w.Marker.Yaw)
	}

	for i := 0; i < 1000; i++ {
		w.Update(0.1)
	}
	if w.Marker.Yaw < 0 || w.Marker.Yaw >= 2*math.Pi {
		t.Errorf("Expected wrapped marker yaw, got %f", w.Marker.Yaw)
	}
	for i, o := range w.Orbs {
		for _, r := range []float64{o.Rotation.X, o.Rotation.Y, o.Rotation.Z} {
			if r < 0 || r >= 2*math.Pi {
				t.Errorf("Orb %d: rotation not wrapped: %f", i, r)
			}
		}
	}

	before := w.Marker.Yaw
	w.Update(0)
	w.Update(-1)
	if w.Marker.Yaw != before {
		t.Error("Expected no animation for non-positive dt")
	}
}

func TestWorldInBounds(t *testing.T) {
	w := Populate(DefaultLayout(), 1)
	if !w.InBounds(vmath.Vec3F{X: 149, Z: -149}) {
		t.Error("Expected point inside the floor")
	}
	if w.InBounds(vmath.Vec3F{X: 151}) {
		t.Error("Expected point outside the floor")
	}
}
