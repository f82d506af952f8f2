package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/longbow/input"
	"github.com/lixenwraith/longbow/vmath"
)

const eps = 1e-9

// TestMoverDampsBeforeIntent verifies damping uses last frame's velocity
func TestMoverDampsBeforeIntent(t *testing.T) {
	m := NewMover(MoveTuning{Speed: 200, Sprint: 2, Reduction: 10})

	v := m.Tick(input.Intent{Forward: true}, 0.01)
	if math.Abs(v.Z-2) > eps {
		t.Fatalf("Expected Z=2 after first tick, got %f", v.Z)
	}

	// 2 - 2*10*0.01 + 200*0.01 = 3.8
	v = m.Tick(input.Intent{Forward: true}, 0.01)
	if math.Abs(v.Z-3.8) > eps {
		t.Errorf("Expected Z=3.8 after second tick, got %f", v.Z)
	}
}

// TestMoverSprint verifies sprint doubles the applied speed
func TestMoverSprint(t *testing.T) {
	walk := NewMover(DefaultMoveTuning())
	run := NewMover(DefaultMoveTuning())

	vw := walk.Tick(input.Intent{Right: true}, 0.016)
	vr := run.Tick(input.Intent{Right: true, Sprint: true}, 0.016)

	if math.Abs(vr.X-2*vw.X) > eps {
		t.Errorf("Expected sprint velocity %f, got %f", 2*vw.X, vr.X)
	}
}

// TestMoverOpposingCancel verifies opposing intents cancel on the same axis
// TestMoverSprintAloneOnlyDamps verifies sprint without a direction adds no velocity
func TestMoverSprintAloneOnlyDamps(t *testing.T) {
	m := NewMover(MoveTuning{Speed: 200, Sprint: 2, Reduction: 10})
	m.Tick(input.Intent{Forward: true}, 0.01)

	v := m.Tick(input.Intent{Sprint: true, Draw: true}, 0.01)
	// 2 - 2*10*0.01 = 1.8
	if math.Abs(v.Z-1.8) > eps || v.X != 0 {
		t.Errorf("Expected damped (0, 1.8), got (%f, %f)", v.X, v.Z)
	}
}

func TestMoverOpposingCancel(t *testing.T) {
	m := NewMover(DefaultMoveTuning())

	v := m.Tick(input.Intent{Forward: true, Backward: true, Left: true, Right: true}, 0.016)
	if v.X != 0 || v.Z != 0 {
		t.Errorf("Expected zero velocity, got %+v", v)
	}
}

// TestMoverDecaysToRest verifies velocity decays without input
func TestMoverDecaysToRest(t *testing.T) {
	m := NewMover(DefaultMoveTuning())
	m.Tick(input.Intent{Backward: true}, 0.016)

	for i := 0; i < 300; i++ {
		m.Tick(input.Intent{}, 0.016)
	}
	if v := m.Velocity(); math.Abs(v.Z) > 1e-6 {
		t.Errorf("Expected velocity near rest, got %f", v.Z)
	}
}

// TestMoverIgnoresNonPositiveDt verifies zero and negative dt leave state unchanged
func TestMoverIgnoresNonPositiveDt(t *testing.T) {
	m := NewMover(DefaultMoveTuning())
	m.Tick(input.Intent{Forward: true}, 0.016)
	before := m.Velocity()

	m.Tick(input.Intent{Forward: true}, 0)
	m.Tick(input.Intent{Forward: true}, -1)
	m.Tick(input.Intent{Forward: true}, math.NaN())

	if m.Velocity() != before {
		t.Errorf("Expected %+v, got %+v", before, m.Velocity())
	}
}

type recordingRig struct{ right, forward float64 }

func (r *recordingRig) TranslateLocal(right, forward float64) {
	r.right += right
	r.forward += forward
}

func TestTranslate(t *testing.T) {
	rig := &recordingRig{}
	Translate(rig, Velocity{X: 10, Z: -5}, 0.5)

	if rig.right != 5 || rig.forward != -2.5 {
		t.Errorf("Expected (5, -2.5), got (%f, %f)", rig.right, rig.forward)
	}
}

func TestIntegrate(t *testing.T) {
	got := Integrate(vmath.Vec3F{X: 1}, vmath.UnitZ, 100, 0.25)
	want := vmath.Vec3F{X: 1, Z: 25}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}
