package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground  = tcell.NewRGBColor(250, 250, 250)
	RgbTile        = tcell.NewRGBColor(52, 101, 164)
	RgbSelector    = tcell.NewRGBColor(239, 41, 41)
	RgbStatusBg    = tcell.NewRGBColor(46, 52, 54)
	RgbStatusText  = tcell.NewRGBColor(211, 215, 207)
	RgbStatusAlert = tcell.NewRGBColor(252, 175, 62)
)
