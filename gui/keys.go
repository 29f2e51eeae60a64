package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/tilefade/input"
)

type keyBinding struct {
	key    ebiten.Key
	intent input.Intent
}

// defaultBindings mirrors the terminal key table
var defaultBindings = []keyBinding{
	{ebiten.KeyArrowUp, input.IntentUp},
	{ebiten.KeyArrowDown, input.IntentDown},
	{ebiten.KeyArrowLeft, input.IntentLeft},
	{ebiten.KeyArrowRight, input.IntentRight},
	{ebiten.KeyW, input.IntentUp},
	{ebiten.KeyS, input.IntentDown},
	{ebiten.KeyA, input.IntentLeft},
	{ebiten.KeyD, input.IntentRight},
	{ebiten.KeyK, input.IntentUp},
	{ebiten.KeyJ, input.IntentDown},
	{ebiten.KeyH, input.IntentLeft},
	{ebiten.KeyL, input.IntentRight},
	{ebiten.KeyEnter, input.IntentDestroy},
	{ebiten.KeyX, input.IntentDestroy},
	{ebiten.KeyP, input.IntentPause},
	{ebiten.KeySpace, input.IntentPause},
	{ebiten.KeyM, input.IntentToggleMute},
	{ebiten.KeyQ, input.IntentQuit},
	{ebiten.KeyEscape, input.IntentQuit},
}

// pressedIntents returns intents for keys reported pressed, in binding order
func pressedIntents(bindings []keyBinding, pressed func(ebiten.Key) bool) []input.Intent {
	var out []input.Intent
	for _, b := range bindings {
		if pressed(b.key) {
			out = append(out, b.intent)
		}
	}
	return out
}
