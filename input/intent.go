package input

// Action discriminates semantic player actions
type Action uint8

const (
	ActionNone Action = iota

	// Held actions, latched while their key repeats or button stays down
	ActionForward
	ActionBackward
	ActionLeft
	ActionRight
	ActionSprint
	ActionDraw
	ActionTurnLeft
	ActionTurnRight
	ActionLookUp
	ActionLookDown

	// Edge actions, reported once per press
	ActionCancel
	ActionPause
	ActionQuit
	ActionFocusLost
	ActionFocusGained

	actionCount
)

// Held reports whether a is a continuous action rather than a discrete edge
func (a Action) Held() bool {
	return a >= ActionForward && a <= ActionLookDown
}

// Intent is the per-frame boolean snapshot the simulation reads
// Pure data, recomputed every frame
type Intent struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Sprint   bool

	// Draw is true while the fire button is held
	Draw bool

	TurnLeft  bool
	TurnRight bool
	LookUp    bool
	LookDown  bool
}

// Moving reports whether any planar direction is held
func (i Intent) Moving() bool {
	return i.Forward || i.Backward || i.Left || i.Right
}

func (i *Intent) set(a Action) {
	switch a {
	case ActionForward:
		i.Forward = true
	case ActionBackward:
		i.Backward = true
	case ActionLeft:
		i.Left = true
	case ActionRight:
		i.Right = true
	case ActionSprint:
		i.Sprint = true
	case ActionDraw:
		i.Draw = true
	case ActionTurnLeft:
		i.TurnLeft = true
	case ActionTurnRight:
		i.TurnRight = true
	case ActionLookUp:
		i.LookUp = true
	case ActionLookDown:
		i.LookDown = true
	}
}
