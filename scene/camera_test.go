package scene

import (
	"math"
	"testing"

	"github.com/lixenwraith/longbow/parameter"
	"github.com/lixenwraith/longbow/vmath"
)

func TestCameraTranslateFollowsYaw(t *testing.T) {
	c := NewCamera(vmath.Vec3F{})

	c.TranslateLocal(0, 10)
	if !vmath.V3FApproxEqual(c.Position, vmath.Vec3F{Z: 10}, 1e-12) {
		t.Errorf("Expected forward along +Z, got %v", c.Position)
	}

	// Quarter turn right: forward becomes +X
	c.Turn(math.Pi/2, 0)
	c.TranslateLocal(0, 5)
	if !vmath.V3FApproxEqual(c.Position, vmath.Vec3F{X: 5, Z: 10}, 1e-9) {
		t.Errorf("Expected forward along +X after turn, got %v", c.Position)
	}

	// Pitch does not lift the rig
	c.Turn(0, 1)
	c.TranslateLocal(2, 0)
	if c.Position.Y != 0 {
		t.Errorf("Expected level movement, got Y=%f", c.Position.Y)
	}
}

func TestCameraPitchClamped(t *testing.T) {
	c := NewCamera(vmath.Vec3F{})

	c.Turn(0, 10)
	if c.Pitch != parameter.CameraPitchLimit {
		t.Errorf("Expected pitch clamp %f, got %f", parameter.CameraPitchLimit, c.Pitch)
	}
	c.Turn(0, -20)
	if c.Pitch != -parameter.CameraPitchLimit {
		t.Errorf("Expected pitch clamp %f, got %f", -parameter.CameraPitchLimit, c.Pitch)
	}
}

func TestCameraYawWraps(t *testing.T) {
	c := NewCamera(vmath.Vec3F{})
	for i := 0; i < 100; i++ {
		c.Turn(0.5, 0)
	}
	if c.Yaw <= -math.Pi || c.Yaw > math.Pi {
		t.Errorf("Expected yaw in (-pi, pi], got %f", c.Yaw)
	}
}

func TestCameraAimIsUnitForward(t *testing.T) {
	c := NewCamera(vmath.Vec3F{})
	c.Turn(0.7, 0.3)

	aim, ok := c.Aim()
	if !ok {
		t.Fatal("Expected aim available")
	}
	if math.Abs(vmath.V3FMag(aim)-1) > 1e-12 {
		t.Errorf("Expected unit aim, got %v", aim)
	}
	if !(aim.Y > 0) {
		t.Errorf("Expected upward aim with positive pitch, got %v", aim)
	}
}

// TestCameraSocketOffset verifies the bow sits right of and ahead of the eye
func TestCameraSocketOffset(t *testing.T) {
	c := NewCamera(vmath.Vec3F{X: 10, Y: 2, Z: -5})

	s, ok := c.Socket()
	if !ok {
		t.Fatal("Expected socket available")
	}
	want := vmath.Vec3F{X: 11, Y: 2, Z: -1}
	if !vmath.V3FApproxEqual(s.Position, want, 1e-12) {
		t.Errorf("Expected socket at %v, got %v", want, s.Position)
	}
	if !vmath.V3FApproxEqual(s.Basis.Forward, vmath.YawBasis(parameter.BowSocketYaw).Forward, 1e-12) {
		t.Errorf("Expected tilted bow forward, got %v", s.Basis.Forward)
	}
}
