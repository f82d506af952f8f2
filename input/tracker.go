package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Tracker turns terminal events into held intents and discrete edge actions
// Terminals report key presses and auto-repeats but no releases, so keyboard-held
// actions stay latched after their last press: initialHold until the first
// auto-repeat arrives, holdTimeout between repeats after that
// Mouse buttons report real press/release and are tracked exactly
type Tracker struct {
	table       *KeyTable
	initialHold time.Duration
	holdTimeout time.Duration

	lastPress [actionCount]time.Time
	repeating [actionCount]bool

	mouseDraw   bool
	mouseCancel bool

	edges []Action
}

// NewTracker creates a tracker over the given bindings
// initialHold shorter than holdTimeout is raised to it
func NewTracker(table *KeyTable, initialHold, holdTimeout time.Duration) *Tracker {
	if table == nil {
		table = DefaultKeyTable()
	}
	if initialHold < holdTimeout {
		initialHold = holdTimeout
	}
	return &Tracker{
		table:       table,
		initialHold: initialHold,
		holdTimeout: holdTimeout,
		edges:       make([]Action, 0, 8),
	}
}

// HandleEvent records one terminal event observed at now
func (t *Tracker) HandleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a, shifted := t.table.Lookup(ev)
		if a == ActionNone {
			return
		}
		if a.Held() {
			t.press(a, now)
			if shifted && a != ActionSprint {
				t.press(ActionSprint, now)
			}
			return
		}
		t.pushEdge(a)

	case *tcell.EventMouse:
		btn := ev.Buttons()
		t.mouseDraw = btn&tcell.Button1 != 0

		// Right button reports cancel once per press
		right := btn&tcell.Button2 != 0
		if right && !t.mouseCancel {
			t.pushEdge(ActionCancel)
		}
		t.mouseCancel = right

	case *tcell.EventFocus:
		if ev.Focused {
			t.pushEdge(ActionFocusGained)
		} else {
			t.pushEdge(ActionFocusLost)
		}
	}
}

// press latches a held action; a press landing inside a live latch is an auto-repeat
func (t *Tracker) press(a Action, now time.Time) {
	t.repeating[a] = t.latched(a, now)
	t.lastPress[a] = now
}

func (t *Tracker) pushEdge(a Action) {
	if a == ActionCancel {
		// Drop the keyboard draw latch so a cancelled draw doesn't resume from repeats
		t.lastPress[ActionDraw] = time.Time{}
		t.repeating[ActionDraw] = false
	}
	t.edges = append(t.edges, a)
}

// Intent returns the held-action snapshot at now
func (t *Tracker) Intent(now time.Time) Intent {
	var in Intent
	for a := ActionForward; a <= ActionLookDown; a++ {
		if t.latched(a, now) {
			in.set(a)
		}
	}
	if t.mouseDraw {
		in.Draw = true
	}
	return in
}

func (t *Tracker) latched(a Action, now time.Time) bool {
	last := t.lastPress[a]
	if last.IsZero() {
		return false
	}
	hold := t.initialHold
	if t.repeating[a] {
		hold = t.holdTimeout
	}
	return now.Sub(last) <= hold
}

// DrainEdges returns and clears edge actions observed since the last drain
func (t *Tracker) DrainEdges() []Action {
	if len(t.edges) == 0 {
		return nil
	}
	out := make([]Action, len(t.edges))
	copy(out, t.edges)
	t.edges = t.edges[:0]
	return out
}

// Reset releases every held action, used when input capture is lost
func (t *Tracker) Reset() {
	t.lastPress = [actionCount]time.Time{}
	t.repeating = [actionCount]bool{}
	t.mouseDraw = false
	t.mouseCancel = false
}
