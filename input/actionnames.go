package input

import "sort"

// actionRegistry maps canonical action names used in key binding config
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"forward":    ActionForward,
	"backward":   ActionBackward,
	"left":       ActionLeft,
	"right":      ActionRight,
	"sprint":     ActionSprint,
	"draw":       ActionDraw,
	"turn_left":  ActionTurnLeft,
	"turn_right": ActionTurnRight,
	"look_up":    ActionLookUp,
	"look_down":  ActionLookDown,

	"cancel": ActionCancel,
	"pause":  ActionPause,
	"quit":   ActionQuit,
}

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// ActionName returns the canonical name of a, or "" for focus events
func ActionName(a Action) string {
	for name, v := range actionRegistry {
		if v == a && name != "none" {
			return name
		}
	}
	if a == ActionNone {
		return "none"
	}
	return ""
}

// ActionNames lists bindable action names in sorted order
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
