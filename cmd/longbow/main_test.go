package main

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/longbow/bow"
	"github.com/lixenwraith/longbow/engine"
	"github.com/lixenwraith/longbow/input"
)

func newTestLoop(t *testing.T) (*engine.Simulation, *engine.FrameClock, *engine.MockTimeProvider, *input.Tracker) {
	t.Helper()
	jt, err := bow.DefaultJointTable()
	if err != nil {
		t.Fatalf("DefaultJointTable failed: %v", err)
	}
	sim, err := engine.New(jt, engine.Collaborators{Skeleton: bow.NewMemorySkeleton(jt.Count())},
		engine.DefaultSettings(), zerolog.Nop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	clock := engine.NewFrameClock(mock, 0.1)
	return sim, clock, mock, input.NewTracker(nil, 700*time.Millisecond, 150*time.Millisecond)
}

func TestHandleEdgesQuit(t *testing.T) {
	sim, clock, _, tracker := newTestLoop(t)
	if !handleEdges([]input.Action{input.ActionQuit}, sim, clock, tracker, zerolog.Nop()) {
		t.Error("Expected quit")
	}
	if handleEdges(nil, sim, clock, tracker, zerolog.Nop()) {
		t.Error("Expected no quit without edges")
	}
}

// TestHandleEdgesFocus verifies focus loss pauses and focus gain resumes
func TestHandleEdgesFocus(t *testing.T) {
	sim, clock, _, tracker := newTestLoop(t)

	handleEdges([]input.Action{input.ActionFocusLost}, sim, clock, tracker, zerolog.Nop())
	if !clock.IsPaused() {
		t.Fatal("Expected pause on focus loss")
	}
	handleEdges([]input.Action{input.ActionFocusGained}, sim, clock, tracker, zerolog.Nop())
	if clock.IsPaused() {
		t.Error("Expected resume on focus gain")
	}
}

func TestHandleEdgesPauseToggles(t *testing.T) {
	sim, clock, _, tracker := newTestLoop(t)

	handleEdges([]input.Action{input.ActionPause}, sim, clock, tracker, zerolog.Nop())
	if !clock.IsPaused() {
		t.Fatal("Expected paused")
	}
	handleEdges([]input.Action{input.ActionPause}, sim, clock, tracker, zerolog.Nop())
	if clock.IsPaused() {
		t.Error("Expected running")
	}
}

func TestHandleEdgesCancel(t *testing.T) {
	sim, clock, _, tracker := newTestLoop(t)
	sim.Tick(input.Intent{Draw: true}, 0.5)

	handleEdges([]input.Action{input.ActionCancel}, sim, clock, tracker, zerolog.Nop())
	if sim.Power() != 0 {
		t.Errorf("Expected power 0 after cancel, got %f", sim.Power())
	}
}

func TestNewRecorderDisabled(t *testing.T) {
	rec, err := newRecorder(false, nil)
	if err != nil {
		t.Fatalf("newRecorder failed: %v", err)
	}
	if s := rec.Stats(); s.Shots != 0 {
		t.Errorf("Expected empty stats, got %+v", s)
	}
}
