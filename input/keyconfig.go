package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be written as a bare single character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

var keyByName = buildKeyNames()

func buildKeyNames() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}

// LoadKeyConfig parses key → action name bindings into a sparse override table
// Keys are single characters, rune aliases, or tcell key names ("Up", "Esc", "Ctrl-C")
// Returns error on unknown action or key names
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		Runes: make(map[rune]Action),
		Keys:  make(map[tcell.Key]Action),
	}

	for keyStr, actionName := range bindings {
		a, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = a
			continue
		}
		k, ok := keyByName[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("unknown key name: %q", keyStr)
		}
		kt.Keys[k] = a
	}

	return kt, nil
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

// resolveAction converts an action name string to an Action
func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, v := range override.Runes {
		if v == ActionNone {
			delete(result.Runes, k)
		} else {
			result.Runes[k] = v
		}
	}
	for k, v := range override.Keys {
		if v == ActionNone {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = v
		}
	}

	return result
}
