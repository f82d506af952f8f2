package engine

import (
	"math"
	"testing"
	"time"
)

func newTestClock() (*FrameClock, *MockTimeProvider) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewFrameClock(mock, 0.1), mock
}

// TestFrameClockFirstTickIsZero verifies the clock needs one tick to establish a baseline
func TestFrameClockFirstTickIsZero(t *testing.T) {
	fc, mock := newTestClock()
	mock.Advance(time.Hour)

	if dt := fc.Tick(); dt != 0 {
		t.Errorf("Expected first dt 0, got %f", dt)
	}

	mock.Advance(16 * time.Millisecond)
	if dt := fc.Tick(); math.Abs(dt-0.016) > 1e-9 {
		t.Errorf("Expected dt 0.016, got %f", dt)
	}
}

// TestFrameClockClampsLargeDelta verifies a stalled frame is capped at maxDelta
func TestFrameClockClampsLargeDelta(t *testing.T) {
	fc, mock := newTestClock()
	fc.Tick()

	mock.Advance(3 * time.Second)
	if dt := fc.Tick(); dt != 0.1 {
		t.Errorf("Expected dt clamped to 0.1, got %f", dt)
	}
}

// TestFrameClockResumeDiscardsGap verifies the paused wall time never reaches the simulation
func TestFrameClockResumeDiscardsGap(t *testing.T) {
	fc, mock := newTestClock()
	fc.Tick()
	mock.Advance(16 * time.Millisecond)
	fc.Tick()

	fc.Pause()
	if !fc.IsPaused() {
		t.Fatal("Expected paused clock")
	}
	mock.Advance(30 * time.Second)
	if dt := fc.Tick(); dt != 0 {
		t.Errorf("Expected dt 0 while paused, got %f", dt)
	}
	if d := fc.TotalPauseDuration(); d != 30*time.Second {
		t.Errorf("Expected 30s paused so far, got %v", d)
	}

	fc.Resume()
	mock.Advance(5 * time.Millisecond)
	if dt := fc.Tick(); math.Abs(dt-0.005) > 1e-9 {
		t.Errorf("Expected dt measured from resume (0.005), got %f", dt)
	}

	mock.Advance(16 * time.Millisecond)
	if dt := fc.Tick(); math.Abs(dt-0.016) > 1e-9 {
		t.Errorf("Expected normal dt after resume, got %f", dt)
	}

	if e := fc.Elapsed(); math.Abs(e-0.037) > 1e-9 {
		t.Errorf("Expected 0.037s simulated, got %f", e)
	}
}

func TestFrameClockToggle(t *testing.T) {
	fc, _ := newTestClock()

	if !fc.Toggle() {
		t.Error("Expected first toggle to pause")
	}
	if fc.Toggle() {
		t.Error("Expected second toggle to resume")
	}
	if fc.IsPaused() {
		t.Error("Expected running clock")
	}
}

func TestFrameClockBackwardsTime(t *testing.T) {
	fc, mock := newTestClock()
	fc.Tick()
	mock.Advance(-time.Second)

	if dt := fc.Tick(); dt != 0 {
		t.Errorf("Expected dt 0 for backwards time, got %f", dt)
	}
}
