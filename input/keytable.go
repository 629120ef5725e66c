package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Action

	// Rune bindings, matched case-insensitively for letters
	Runes map[rune]Action
}

// DefaultKeyTable returns the default bindings: arrows and WASD move, Space starts, R restarts
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyUp:     ActionUp,
			tcell.KeyDown:   ActionDown,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlR:  ActionRestart,
		},
		Runes: map[rune]Action{
			'a': ActionLeft,
			'd': ActionRight,
			'w': ActionUp,
			's': ActionDown,
			' ': ActionStart,
			'r': ActionRestart,
			'm': ActionMute,
			'q': ActionQuit,
		},
	}
}

// Lookup resolves a key event to an action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Action, bool) {
	return kt.LookupKey(ev.Key(), ev.Rune())
}

// LookupKey resolves a key code and rune; r is only used for tcell.KeyRune
func (kt *KeyTable) LookupKey(key tcell.Key, r rune) (Action, bool) {
	if key == tcell.KeyRune {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		a, ok := kt.Runes[r]
		return a, ok
	}
	a, ok := kt.SpecialKeys[key]
	return a, ok
}
