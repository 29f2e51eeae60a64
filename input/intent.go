package input

import "github.com/lixenwraith/tilefade/grid"

// Intent is a semantic action decoded from a key
type Intent uint8

const (
	IntentNone Intent = iota

	// Navigation
	IntentUp    // Up arrow, w, k
	IntentDown  // Down arrow, s, j
	IntentLeft  // Left arrow, a, h
	IntentRight // Right arrow, d, l

	// Tile actions
	IntentDestroy // Enter, x

	// System
	IntentPause      // p, Space
	IntentToggleMute // m, Ctrl+S
	IntentQuit       // q, Esc, Ctrl+C, Ctrl+Q
	IntentResize     // Terminal resize event
)

var intentNames = [...]string{
	IntentNone:       "none",
	IntentUp:         "up",
	IntentDown:       "down",
	IntentLeft:       "left",
	IntentRight:      "right",
	IntentDestroy:    "destroy",
	IntentPause:      "pause",
	IntentToggleMute: "toggle_mute",
	IntentQuit:       "quit",
	IntentResize:     "resize",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// Direction returns the grid direction for navigation intents
func (i Intent) Direction() (grid.Direction, bool) {
	switch i {
	case IntentUp:
		return grid.Up, true
	case IntentDown:
		return grid.Down, true
	case IntentLeft:
		return grid.Left, true
	case IntentRight:
		return grid.Right, true
	}
	return 0, false
}

// IntentByName resolves an action name as written in key overrides
func IntentByName(name string) (Intent, bool) {
	for i, n := range intentNames {
		if n == name && Intent(i) != IntentNone {
			return Intent(i), true
		}
	}
	return IntentNone, false
}
