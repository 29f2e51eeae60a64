package input

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (arrows, Enter, Ctrl+*)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings, matched case-insensitively
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyUp:     IntentUp,
			tcell.KeyDown:   IntentDown,
			tcell.KeyLeft:   IntentLeft,
			tcell.KeyRight:  IntentRight,
			tcell.KeyEnter:  IntentDestroy,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyCtrlS:  IntentToggleMute,
		},
		Runes: map[rune]Intent{
			// WASD
			'w': IntentUp,
			'a': IntentLeft,
			's': IntentDown,
			'd': IntentRight,

			// vi
			'k': IntentUp,
			'h': IntentLeft,
			'j': IntentDown,
			'l': IntentRight,

			'x': IntentDestroy,
			'p': IntentPause,
			' ': IntentPause,
			'm': IntentToggleMute,
			'q': IntentQuit,
		},
	}
}

// LookupKey resolves a key code and rune; r is only consulted for tcell.KeyRune
func (kt *KeyTable) LookupKey(key tcell.Key, r rune) Intent {
	if key == tcell.KeyRune {
		if intent, ok := kt.Runes[unicode.ToLower(r)]; ok {
			return intent
		}
		return IntentNone
	}
	if intent, ok := kt.SpecialKeys[key]; ok {
		return intent
	}
	return IntentNone
}

// Translate decodes a tcell event
func (kt *KeyTable) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return kt.LookupKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}

// Bind overrides rune bindings from action names, e.g. {"u": "up"}
// Returns error on multi-rune keys or unknown action names
func (kt *KeyTable) Bind(bindings map[string]string) error {
	for keyStr, action := range bindings {
		runes := []rune(keyStr)
		if len(runes) != 1 {
			return fmt.Errorf("key %q: expected single character", keyStr)
		}
		intent, ok := IntentByName(action)
		if !ok {
			return fmt.Errorf("key %q: unknown action %q", keyStr, action)
		}
		kt.Runes[unicode.ToLower(runes[0])] = intent
	}
	return nil
}
