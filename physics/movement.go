package physics

import (
	"github.com/lixenwraith/longbow/input"
	"github.com/lixenwraith/longbow/parameter"
)

// Velocity is planar rig-local velocity
// X is strafe (right positive), Z is longitudinal (forward positive)
type Velocity struct {
	X, Z float64
}

// MoveTuning holds the integrator constants
type MoveTuning struct {
	Speed     float64
	Sprint    float64
	Reduction float64
}

// DefaultMoveTuning returns the stock tuning
func DefaultMoveTuning() MoveTuning {
	return MoveTuning{
		Speed:     parameter.MoveSpeed,
		Sprint:    parameter.SprintModifier,
		Reduction: parameter.MoveReduction,
	}
}

// Mover owns the kinematic state of the player rig
type Mover struct {
	tuning   MoveTuning
	velocity Velocity
}

// NewMover creates a mover at rest
func NewMover(tuning MoveTuning) *Mover {
	return &Mover{tuning: tuning}
}

// Velocity returns the current velocity
func (m *Mover) Velocity() Velocity {
	return m.velocity
}

// Stop zeroes velocity
func (m *Mover) Stop() {
	m.velocity = Velocity{}
}

// Tick damps the previous frame's velocity, then applies held direction intents
// Damping runs first so it is computed from last frame's velocity
func (m *Mover) Tick(in input.Intent, dt float64) Velocity {
	if !(dt > 0) {
		return m.velocity
	}

	m.velocity.X -= m.velocity.X * m.tuning.Reduction * dt
	m.velocity.Z -= m.velocity.Z * m.tuning.Reduction * dt

	// Sprint alone is not movement
	if !in.Moving() {
		return m.velocity
	}

	speed := m.tuning.Speed
	if in.Sprint {
		speed *= m.tuning.Sprint
	}

	if in.Forward {
		m.velocity.Z += speed * dt
	}
	if in.Backward {
		m.velocity.Z -= speed * dt
	}
	if in.Left {
		m.velocity.X -= speed * dt
	}
	if in.Right {
		m.velocity.X += speed * dt
	}

	return m.velocity
}
