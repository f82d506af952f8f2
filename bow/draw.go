// Package bow models the bow's draw power and its visual pose
package bow

import (
	"math"

	"github.com/lixenwraith/longbow/parameter"
)

// Phase is the draw state machine's state after a tick
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseDrawing
	// PhaseFired marks the tick a release above threshold shot an arrow
	PhaseFired
	// PhaseFalseStart marks a release at or below threshold, discarded silently
	PhaseFalseStart
	// PhaseCancelled marks an explicit cancel; drawing stays suppressed until release
	PhaseCancelled
	// PhaseDeferred marks an armed release waiting for launch collaborators
	PhaseDeferred
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDrawing:
		return "drawing"
	case PhaseFired:
		return "fired"
	case PhaseFalseStart:
		return "false_start"
	case PhaseCancelled:
		return "cancelled"
	case PhaseDeferred:
		return "deferred"
	default:
		return "unknown"
	}
}

// DrawTuning holds the draw constants
type DrawTuning struct {
	Rate     float64
	MaxPower float64
	MinFire  float64
}

// DefaultDrawTuning returns the stock tuning: full draw in 1s, fire above 50
func DefaultDrawTuning() DrawTuning {
	return DrawTuning{
		Rate:     parameter.DrawRate,
		MaxPower: parameter.MaxDrawPower,
		MinFire:  parameter.MinFirePower,
	}
}

// Draw tracks bow power; power is kept in [0, MaxPower] at all times
type Draw struct {
	tuning DrawTuning

	power      float64
	phase      Phase
	suppressed bool // set by Cancel, cleared once the button is seen released

	// Power at the most recent release, fired or not
	lastRelease float64
}

// NewDraw creates an idle draw
func NewDraw(tuning DrawTuning) *Draw {
	return &Draw{tuning: tuning}
}

// Power returns current draw power
func (d *Draw) Power() float64 { return d.power }

// Phase returns the phase produced by the last tick or cancel
func (d *Draw) Phase() Phase { return d.phase }

// LastReleasePower returns the power of the most recent release
func (d *Draw) LastReleasePower() float64 { return d.lastRelease }

// Armed reports whether releasing now would fire
func (d *Draw) Armed() bool { return d.power > d.tuning.MinFire }

// Tick advances one frame assuming launch collaborators are ready
func (d *Draw) Tick(held bool, dt float64) (power float64, fired bool) {
	return d.Step(held, dt, true)
}

// Step advances one frame
// launchable=false defers an armed release: power is kept and the release retried next tick
func (d *Draw) Step(held bool, dt float64, launchable bool) (power float64, fired bool) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		dt = 0
	}

	if d.suppressed {
		if held {
			d.power = 0
			d.phase = PhaseCancelled
			return d.power, false
		}
		d.suppressed = false
	}

	switch {
	case held:
		d.power = clamp(d.power+d.tuning.Rate*dt, 0, d.tuning.MaxPower)
		d.phase = PhaseDrawing

	case d.power > d.tuning.MinFire:
		if !launchable {
			d.phase = PhaseDeferred
			return d.power, false
		}
		d.lastRelease = d.power
		d.power = 0
		d.phase = PhaseFired
		return d.power, true

	case d.power > 0:
		d.lastRelease = d.power
		d.power = 0
		d.phase = PhaseFalseStart

	default:
		d.power = 0
		d.phase = PhaseIdle
	}

	return d.power, false
}

// Cancel drops power to zero and suppresses drawing until the button is released
// Reports whether there was a draw in progress
func (d *Draw) Cancel() bool {
	had := d.power > 0
	d.power = 0
	d.phase = PhaseCancelled
	d.suppressed = true
	return had
}

// Reset returns to idle without suppression
func (d *Draw) Reset() {
	d.power = 0
	d.phase = PhaseIdle
	d.suppressed = false
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}
