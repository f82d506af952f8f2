package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps runes and special keys to actions
type KeyTable struct {
	Runes map[rune]Action
	Keys  map[tcell.Key]Action
}

// DefaultKeyTable returns the default bindings
// Uppercase letters resolve through their lowercase binding plus sprint
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Action{
			'w': ActionForward,
			's': ActionBackward,
			'a': ActionLeft,
			'd': ActionRight,
			' ': ActionDraw,
			'q': ActionTurnLeft,
			'e': ActionTurnRight,
			'r': ActionLookUp,
			'f': ActionLookDown,
			'x': ActionCancel,
			'p': ActionPause,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionForward,
			tcell.KeyDown:   ActionBackward,
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	out := &KeyTable{
		Runes: make(map[rune]Action, len(kt.Runes)),
		Keys:  make(map[tcell.Key]Action, len(kt.Keys)),
	}
	for k, v := range kt.Runes {
		out.Runes[k] = v
	}
	for k, v := range kt.Keys {
		out.Keys[k] = v
	}
	return out
}

// Lookup resolves an event key to an action
// shifted is true when the binding was reached through an uppercase rune or Shift
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (a Action, shifted bool) {
	shifted = ev.Modifiers()&tcell.ModShift != 0

	if ev.Key() != tcell.KeyRune {
		return kt.Keys[ev.Key()], shifted
	}

	r := ev.Rune()
	if a, ok := kt.Runes[r]; ok {
		return a, shifted
	}
	if r >= 'A' && r <= 'Z' {
		if a, ok := kt.Runes[r+('a'-'A')]; ok {
			return a, true
		}
	}
	return ActionNone, false
}
