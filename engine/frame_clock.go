package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/longbow/parameter"
)

// FrameClock turns wall-clock timestamps into simulation dt
// The first tick yields 0; after Resume the next tick measures from the resume,
// so the paused gap is discarded. Every dt is clamped to maxDelta
type FrameClock struct {
	mu sync.Mutex

	provider TimeProvider
	maxDelta float64

	last    time.Time
	started bool

	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration

	// Simulated seconds handed out so far
	elapsed float64
}

// NewFrameClock creates a clock over provider; maxDelta <= 0 uses the engine default
func NewFrameClock(provider TimeProvider, maxDelta float64) *FrameClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	if !(maxDelta > 0) {
		maxDelta = parameter.MaxFrameDelta
	}
	return &FrameClock{
		provider: provider,
		maxDelta: maxDelta,
	}
}

// Tick returns seconds since the previous tick, 0 while paused
func (fc *FrameClock) Tick() float64 {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if fc.paused {
		return 0
	}

	now := fc.provider.Now()
	if !fc.started {
		fc.started = true
		fc.last = now
		return 0
	}

	dt := now.Sub(fc.last).Seconds()
	fc.last = now

	// Clock going backwards is treated as no time passing
	if dt < 0 {
		dt = 0
	}
	if dt > fc.maxDelta {
		dt = fc.maxDelta
	}
	fc.elapsed += dt
	return dt
}

// Pause freezes the clock; ticks return 0 until Resume
func (fc *FrameClock) Pause() {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if fc.paused {
		return
	}
	fc.paused = true
	fc.pauseStart = fc.provider.Now()
}

// Resume restarts the clock, discarding the paused gap
func (fc *FrameClock) Resume() {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if !fc.paused {
		return
	}
	now := fc.provider.Now()
	fc.paused = false
	fc.totalPaused += now.Sub(fc.pauseStart)
	fc.pauseStart = time.Time{}

	// Rebase so the next tick measures from here
	fc.last = now
}

// Toggle flips the pause state and reports whether the clock is now paused
func (fc *FrameClock) Toggle() bool {
	if fc.IsPaused() {
		fc.Resume()
		return false
	}
	fc.Pause()
	return true
}

// IsPaused returns current pause state
func (fc *FrameClock) IsPaused() bool {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.paused
}

// Elapsed returns total simulated seconds
func (fc *FrameClock) Elapsed() float64 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.elapsed
}

// TotalPauseDuration returns cumulative wall time spent paused, including a pause in progress
func (fc *FrameClock) TotalPauseDuration() time.Duration {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	total := fc.totalPaused
	if fc.paused {
		total += fc.provider.Now().Sub(fc.pauseStart)
	}
	return total
}
